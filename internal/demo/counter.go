package demo

import (
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/soda"
	"github.com/soda-dev/soda/pkg/vdom"
)

// Counter renders "Count: N" in a div and increments N on every click.
func Counter(c vdom.Ctx) *vdom.Element {
	count, setCount := soda.State(c, 0)
	return vdom.Div(
		vdom.OnClick(func() { setCount(count + 1) }),
		vdom.Textf("Count: %d", count),
	)
}

func newCounter() (*vdom.Element, StepFunc) {
	step := func(body *dom.Node, i int) (string, error) {
		div, err := first(body, "<div>", byTag("div"))
		if err != nil {
			return "", err
		}
		div.Click()
		return "click <div>", nil
	}
	return vdom.H(Counter, nil), step
}
