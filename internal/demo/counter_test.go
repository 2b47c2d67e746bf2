package demo

import (
	"testing"

	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
	"github.com/soda-dev/soda/pkg/vtest"
)

func TestCounter(t *testing.T) {
	h := vtest.Mount(t, vdom.H(Counter, nil))
	h.ExpectHTML("<div>Count: 0</div>")

	div := h.Find("div")
	for i := 0; i < 3; i++ {
		h.Click(div)
	}

	h.ExpectHTML("<div>Count: 3</div>")
	if h.Find("div") != div {
		t.Error("counter root was replaced")
	}
	if n := h.Mutations().Count(dom.MutationCharacterData); n != 3 {
		t.Errorf("characterData mutations = %d, want 3", n)
	}
	if n := h.Mutations().Len(); n != 3 {
		t.Errorf("mutations = %d, want 3", n)
	}
}
