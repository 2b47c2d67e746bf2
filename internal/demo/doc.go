// Package demo contains sample applications driven by the soda CLI: a
// click counter, a todo list and the animated circles benchmark.
package demo
