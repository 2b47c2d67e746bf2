package demo

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/soda"
	"github.com/soda-dev/soda/pkg/vdom"
)

// Box is the style of one animated box.
type Box struct {
	Top        string
	Left       string
	Background string
}

// Circles is the model of the circles benchmark: every box moves on a
// circle and changes color on each frame.
type Circles struct {
	boxes []Box
	frame int
	ctx   vdom.Ctx
}

// NewCircles returns a model with n boxes at frame 1.
func NewCircles(n int) *Circles {
	m := &Circles{boxes: make([]Box, n)}
	m.step()
	return m
}

// Frame returns the current frame number.
func (m *Circles) Frame() int { return m.frame }

// Boxes returns the current box styles.
func (m *Circles) Boxes() []Box { return append([]Box(nil), m.boxes...) }

func (m *Circles) step() {
	m.frame++
	n := float64(m.frame)
	top := formatPx(10 * math.Sin(n/10))
	left := formatPx(10 * math.Cos(n/10))
	bg := fmt.Sprintf("rgb(0,0,%d)", m.frame%255)
	for i := range m.boxes {
		m.boxes[i] = Box{Top: top, Left: left, Background: bg}
	}
}

// Advance moves to the next frame and re-renders the mounted component.
func (m *Circles) Advance() error {
	m.step()
	if m.ctx == nil {
		return nil
	}
	return m.ctx.Update()
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// CirclesApp renders the boxes of the *Circles in its "model" attribute.
func CirclesApp(c vdom.Ctx) *vdom.Element {
	m, _ := c.Attrs()["model"].(*Circles)
	if m == nil {
		panic("demo: CirclesApp rendered without a model")
	}
	m.ctx = c

	label := m.frame % 100
	return vdom.Div(vdom.Class("grid"),
		vdom.Range(m.boxes, func(b Box, i int) *vdom.Element {
			return vdom.Div(vdom.Key(i), vdom.Class("box-view"),
				vdom.Div(
					vdom.Class("box"),
					vdom.ID(strconv.Itoa(i)),
					vdom.StyleAttr(vdom.Style{"top": b.Top, "left": b.Left, "background": b.Background}),
					label,
				),
			)
		}),
	)
}

// BenchResult summarizes a circles benchmark run.
type BenchResult struct {
	Items     int
	Frames    int
	Elapsed   time.Duration
	Mutations map[dom.MutationType]int
	Instances int
}

// FPS returns the frames rendered per second.
func (b BenchResult) FPS() float64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return float64(b.Frames) / b.Elapsed.Seconds()
}

// RunBench mounts the circles benchmark with items boxes and renders frames
// updates. It stops early with ctx's error when ctx is done.
func RunBench(ctx context.Context, items, frames int, opts ...soda.Option) (BenchResult, error) {
	res := BenchResult{Items: items, Mutations: make(map[dom.MutationType]int)}

	doc := dom.NewDocument()
	r := soda.New(doc, opts...)
	model := NewCircles(items)
	if _, err := r.Render(vdom.H(CirclesApp, vdom.Attrs{"model": model}), doc.Body()); err != nil {
		return res, err
	}

	cancel := doc.Observe(func(m dom.MutationRecord) { res.Mutations[m.Type]++ })
	defer cancel()

	start := time.Now()
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(start)
			return res, err
		}
		if err := model.Advance(); err != nil {
			res.Elapsed = time.Since(start)
			return res, err
		}
		res.Frames++
	}
	res.Elapsed = time.Since(start)
	res.Instances = r.Len()
	return res, nil
}
