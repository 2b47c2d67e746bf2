package soda

import "errors"

// Sentinel errors. Errors returned by the renderer wrap one of these in a
// coded internal error, so errors.Is works on every returned error.
var (
	// ErrHookOrder is returned when a component calls its hooks in a
	// different order, kind or count than on its previous render.
	ErrHookOrder = errors.New("soda: hook order changed")

	// ErrHookOutsideRender is returned when a hook is called with a context
	// that is not the instance currently being rendered.
	ErrHookOutsideRender = errors.New("soda: hook called outside render")

	// ErrHostMount is returned when Render is given a host element instead of
	// a component element.
	ErrHostMount = errors.New("soda: cannot mount a host element")

	// ErrInvalidRoot is returned when a component returns something other
	// than a single host element.
	ErrInvalidRoot = errors.New("soda: component must return a host element")

	// ErrDisposed is returned when updating an instance that was unmounted.
	ErrDisposed = errors.New("soda: instance disposed")

	// ErrUnknownInstance is returned for ids the renderer does not know.
	ErrUnknownInstance = errors.New("soda: unknown instance")

	// ErrRenderLoop is returned when an instance keeps invalidating itself
	// while rendering.
	ErrRenderLoop = errors.New("soda: render loop")
)
