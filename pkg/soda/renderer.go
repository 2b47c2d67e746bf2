package soda

import (
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel/trace"

	errs "github.com/soda-dev/soda/internal/errors"
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

// InstanceID identifies a mounted component instance.
type InstanceID = vdom.InstanceID

// Renderer mounts component trees onto a host document and keeps their
// instances. Renderers are independent of each other; a Renderer is not
// safe for concurrent use.
type Renderer struct {
	doc       *dom.Document
	instances map[InstanceID]*Instance
	nextID    InstanceID

	// current is the instance whose body is running.
	current *Instance

	// building counts nested fresh builds. Deferred effects are only
	// flushed once every subtree under construction is attached.
	building    int
	uncommitted []*Instance

	// patching counts instances whose tree is being patched. Deferred
	// effects wait until it drops to zero.
	patching int

	// roots maps the root node of every live instance to the instance.
	roots map[*dom.Node]*Instance

	// listeners maps a host node to the listener bound for each event name.
	listeners map[*dom.Node]map[string]*dom.Listener

	logger       *slog.Logger
	metrics      *metrics
	tracer       trace.Tracer
	errorHandler func(error)
	debug        bool
	maxRerenders int
}

// New returns a renderer that creates nodes with doc.
func New(doc *dom.Document, opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Renderer{
		doc:          doc,
		instances:    make(map[InstanceID]*Instance),
		roots:        make(map[*dom.Node]*Instance),
		listeners:    make(map[*dom.Node]map[string]*dom.Listener),
		logger:       cfg.logger,
		metrics:      newMetrics(cfg.registerer, cfg.namespace),
		tracer:       cfg.tracer,
		errorHandler: cfg.errorHandler,
		debug:        cfg.debug,
		maxRerenders: cfg.maxRerenders,
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With("component", "soda")
	if r.tracer == nil {
		r.tracer = defaultTracer()
	}
	if r.errorHandler == nil {
		r.errorHandler = func(err error) { panic(err) }
	}
	return r
}

// Document returns the host document.
func (r *Renderer) Document() *dom.Document {
	return r.doc
}

// Render mounts the component element el and appends its root node to
// host. el must be a component element.
func (r *Renderer) Render(el *vdom.Element, host *dom.Node) (id InstanceID, err error) {
	if el == nil || !el.IsComponent() {
		return 0, errs.Errorf("E020", "got %s", describe(el)).Wrap(ErrHostMount)
	}
	if host == nil || !host.IsElement() {
		return 0, errs.Errorf("E040", "render target is not an element").Wrap(dom.ErrHierarchy)
	}

	span := r.startSpan("soda.render", r.nextID+1)
	defer func() { endSpan(span, err) }()

	inst, err := r.mount(el, nil, host.Namespace() == dom.SVGNamespace)
	if err != nil {
		r.logger.Error("render failed", "error", err)
		return 0, err
	}
	if err := host.AppendChild(inst.root); err != nil {
		r.dispose(inst)
		return 0, hostError("attach root", err)
	}
	r.flushCommits()

	if r.debug {
		r.logger.Debug("rendered", "instance_id", inst.id, "instances", len(r.instances))
	}
	return inst.id, nil
}

// Instance returns the live instance with the given id.
func (r *Renderer) Instance(id InstanceID) (*Instance, bool) {
	inst, ok := r.instances[id]
	return inst, ok
}

// Len returns the number of live instances.
func (r *Renderer) Len() int {
	return len(r.instances)
}

// IDs returns the ids of all live instances in ascending order.
func (r *Renderer) IDs() []InstanceID {
	ids := make([]InstanceID, 0, len(r.instances))
	for id := range r.instances {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Update re-renders the instance with the given id.
func (r *Renderer) Update(id InstanceID) error {
	inst, ok := r.instances[id]
	if !ok {
		return errs.Errorf("E023", "id %d", id).Wrap(ErrUnknownInstance)
	}
	return inst.Update()
}

// Unmount detaches the instance's root node from its parent and disposes
// the instance and everything it mounted. Effect cleanups run.
func (r *Renderer) Unmount(id InstanceID) error {
	inst, ok := r.instances[id]
	if !ok {
		return errs.Errorf("E023", "id %d", id).Wrap(ErrUnknownInstance)
	}
	if inst.root != nil {
		if parent := inst.root.Parent(); parent != nil {
			if err := parent.RemoveChild(inst.root); err != nil {
				return hostError("detach root", err)
			}
		}
		r.forget(inst.root)
	}
	if p := inst.parent; p != nil {
		p.dropChild(inst.id)
	}
	r.dispose(inst)
	return nil
}

// handleError reports an error that has no caller to return to.
func (r *Renderer) handleError(err error) {
	r.logger.Error("update failed", "error", err)
	r.errorHandler(err)
}

func hostError(op string, err error) error {
	return errs.Errorf("E040", "%s", op).Wrap(err)
}

func describe(el *vdom.Element) string {
	switch {
	case el == nil:
		return "nil element"
	case el.IsHost():
		return "<" + el.Tag + ">"
	default:
		return el.Kind.String() + " element"
	}
}
