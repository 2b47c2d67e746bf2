// Package errors provides structured, actionable error messages for soda.
//
// Every error the renderer and the CLI report carries a registered code
// that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A suggestion on how to fix it
//
// # Error Categories
//
//   - hooks: hook order and hook context violations
//   - runtime: mount, root and lifecycle errors
//   - host: rejected host document mutations
//   - config: configuration loading
//   - cli: command line usage
//
// # Usage
//
//	err := errors.Errorf("E001", "instance %d: extra %s hook at index %d", id, kind, i).
//	    Wrap(soda.ErrHookOrder)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Hook order changed: instance 1: extra state hook at index 2
//	//
//	//   A component called its hooks in a different order, kind or count
//	//   ...
//	//
//	//   Hint: Call State, Effect and Ref unconditionally at the top level ...
package errors
