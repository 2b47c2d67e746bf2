package vdom

import "fmt"

// Text creates a scalar child.
func Text(content string) *Element {
	return &Element{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted scalar child.
func Textf(format string, args ...any) *Element {
	return Text(fmt.Sprintf(format, args...))
}

// List groups items into a keyed sequence. Items should carry a key
// attribute; nil items are dropped.
func List(items ...*Element) *Element {
	node := &Element{
		Kind:     KindList,
		Children: make([]*Element, 0, len(items)),
	}
	for _, item := range items {
		if item != nil {
			node.Children = append(node.Children, item)
		}
	}
	return node
}

// If returns the element if condition is true, nil otherwise.
func If(condition bool, el *Element) *Element {
	if condition {
		return el
	}
	return nil
}

// IfElse returns the first element if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Element) *Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, el *Element) *Element {
	if !condition {
		return el
	}
	return nil
}

// Range maps a slice to elements. The result is a keyed sequence when passed
// as a child.
func Range[T any](items []T, fn func(item T, index int) *Element) []*Element {
	result := make([]*Element, 0, len(items))
	for i, item := range items {
		el := fn(item, i)
		if el != nil {
			result = append(result, el)
		}
	}
	return result
}

// Repeat creates n elements using the given function.
func Repeat(n int, fn func(i int) *Element) []*Element {
	if n <= 0 {
		return nil
	}
	result := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		el := fn(i)
		if el != nil {
			result = append(result, el)
		}
	}
	return result
}

// Key creates a key attribute for reconciliation.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second *Element) *Element {
	if first != nil {
		return first
	}
	return second
}
