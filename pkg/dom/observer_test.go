package dom

import (
	"strings"
	"testing"
)

func TestRecorder(t *testing.T) {
	doc := NewDocument()
	rec := NewRecorder(doc)

	div := doc.CreateElement("div")
	text := doc.CreateTextNode("a")
	_ = doc.Body().AppendChild(div)
	_ = div.AppendChild(text)
	div.SetAttribute("class", "x")
	div.SetStyleProperty("color", "red")
	text.SetNodeValue("b")
	div.AddEventListener("click", NewListener(func(*Event) {}), true)

	if rec.Len() != 5 {
		t.Fatalf("Len = %d, want 5:\n%s", rec.Len(), rec)
	}

	tests := []struct {
		typ  MutationType
		want int
	}{
		{MutationChildList, 2},
		{MutationAttributes, 1},
		{MutationStyle, 1},
		{MutationCharacterData, 1},
	}
	for _, tt := range tests {
		if got := rec.Count(tt.typ); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}

	last := rec.Records()[4]
	if last.Target != text || last.OldValue != "a" {
		t.Errorf("last record = %v", last)
	}
	if !strings.Contains(rec.String(), `characterData #text "a" -> "b"`) {
		t.Errorf("String() = %s", rec)
	}

	rec.Reset()
	rec.Stop()
	div.SetAttribute("id", "y")
	if rec.Len() != 0 {
		t.Errorf("Len after Stop = %d, want 0", rec.Len())
	}
}

func TestReplaceChildRecord(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	oldChild := doc.CreateElement("span")
	newChild := doc.CreateElement("p")
	_ = parent.AppendChild(oldChild)
	_ = doc.Body().AppendChild(parent)

	var records []MutationRecord
	cancel := doc.Observe(func(r MutationRecord) { records = append(records, r) })
	defer cancel()

	_ = parent.ReplaceChild(newChild, oldChild)
	if len(records) != 1 {
		t.Fatalf("records = %v, want 1", records)
	}
	r := records[0]
	if r.Type != MutationChildList || len(r.Added) != 1 || r.Added[0] != newChild || r.Removed[0] != oldChild {
		t.Errorf("record = %v", r)
	}
}

func TestRecorder_DetachedSubtree(t *testing.T) {
	doc := NewDocument()
	ul := doc.CreateElement("ul")
	_ = doc.Body().AppendChild(ul)
	for _, text := range []string{"A", "B"} {
		li := doc.CreateElement("li")
		_ = li.AppendChild(doc.CreateTextNode(text))
		_ = ul.AppendChild(li)
	}

	rec := NewRecorder(doc)
	defer rec.Stop()

	li := doc.CreateElement("li")
	text := doc.CreateTextNode("X")
	_ = li.AppendChild(text)
	li.SetAttribute("class", "new")
	li.SetStyleProperty("color", "red")
	text.SetNodeValue("Y")
	if rec.Len() != 0 {
		t.Fatalf("detached changes recorded:\n%s", rec)
	}

	_ = ul.AppendChild(li)
	if rec.Len() != 1 {
		t.Fatalf("Len = %d, want 1:\n%s", rec.Len(), rec)
	}
	if r := rec.Records()[0]; r.Type != MutationChildList || r.Target != ul || r.Added[0] != li {
		t.Errorf("record = %v", r)
	}

	rec.Reset()
	_ = ul.RemoveChild(li)
	text.SetNodeValue("Z")
	if rec.Len() != 1 || rec.Count(MutationChildList) != 1 {
		t.Errorf("after removal:\n%s\nwant only the childList record", rec)
	}
}
