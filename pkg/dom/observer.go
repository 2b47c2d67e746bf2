package dom

import (
	"fmt"
	"strings"
)

// MutationType classifies a MutationRecord.
type MutationType string

const (
	MutationChildList     MutationType = "childList"
	MutationAttributes    MutationType = "attributes"
	MutationStyle         MutationType = "style"
	MutationCharacterData MutationType = "characterData"
)

// MutationRecord describes one host mutation.
type MutationRecord struct {
	Type     MutationType
	Target   *Node
	Name     string // attribute or style property name
	OldValue string
	Added    []*Node
	Removed  []*Node
}

// String returns a one-line description, e.g.
// `attributes <div> class "old"` or `childList <ul> +1 -0`.
func (r MutationRecord) String() string {
	target := describe(r.Target)
	switch r.Type {
	case MutationChildList:
		return fmt.Sprintf("%s %s +%d -%d", r.Type, target, len(r.Added), len(r.Removed))
	case MutationCharacterData:
		return fmt.Sprintf("%s %s %q -> %q", r.Type, target, r.OldValue, r.Target.NodeValue())
	default:
		return fmt.Sprintf("%s %s %s %q", r.Type, target, r.Name, r.OldValue)
	}
}

func describe(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.typ == TextNode {
		return "#text"
	}
	return "<" + n.tag + ">"
}

type observer struct {
	fn func(MutationRecord)
}

// Observe registers fn to receive every mutation made to nodes connected to
// d's body, in the order they happen. Changes to detached nodes are not
// reported; inserting a detached subtree is a single childList record. The
// returned function unregisters it.
func (d *Document) Observe(fn func(MutationRecord)) (cancel func()) {
	o := &observer{fn: fn}
	d.observers = append(d.observers, o)
	return func() {
		for i, existing := range d.observers {
			if existing == o {
				d.observers = append(d.observers[:i:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

func (d *Document) notify(r MutationRecord) {
	for _, o := range d.observers {
		o.fn(r)
	}
}

// Recorder collects mutation records.
type Recorder struct {
	records []MutationRecord
	cancel  func()
}

// NewRecorder starts recording mutations of doc.
func NewRecorder(doc *Document) *Recorder {
	r := &Recorder{}
	r.cancel = doc.Observe(func(m MutationRecord) {
		r.records = append(r.records, m)
	})
	return r
}

// Records returns the records collected so far.
func (r *Recorder) Records() []MutationRecord {
	out := make([]MutationRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records collected.
func (r *Recorder) Len() int { return len(r.records) }

// Count returns the number of records of type t.
func (r *Recorder) Count(t MutationType) int {
	n := 0
	for _, m := range r.records {
		if m.Type == t {
			n++
		}
	}
	return n
}

// Reset discards the collected records.
func (r *Recorder) Reset() { r.records = r.records[:0] }

// Stop unregisters the recorder. Records collected so far are kept.
func (r *Recorder) Stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// String returns one record per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, m := range r.records {
		b.WriteString(m.String())
		b.WriteByte('\n')
	}
	return b.String()
}
