package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "hook error",
			code:    "E001",
			wantMsg: "Hook order changed",
			wantCat: CategoryHooks,
		},
		{
			name:    "runtime error",
			code:    "E020",
			wantMsg: "Cannot mount a host element",
			wantCat: CategoryRuntime,
		},
		{
			name:    "config error",
			code:    "E100",
			wantMsg: "Config load failed",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("E001", "instance %d: extra %s hook at index %d", 3, "state", 2)
	want := "E001: Hook order changed: instance 3: extra state hook at index 2"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Suggestion == "" {
		t.Error("Suggestion should come from the registry")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "flag %q is required", "items")
	if err.Error() != `flag "items" is required` {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want cli", err.Category)
	}
}

func TestWrapAndIs(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := New("E022").Wrap(sentinel)

	if !Is(err, sentinel) {
		t.Error("Is should find the wrapped sentinel")
	}

	outer := fmt.Errorf("update: %w", err)
	var se *SodaError
	if !As(outer, &se) {
		t.Fatal("As should find the SodaError")
	}
	if se.Code != "E022" {
		t.Errorf("Code = %q, want E022", se.Code)
	}
	if CodeOf(outer) != "E022" {
		t.Errorf("CodeOf = %q, want E022", CodeOf(outer))
	}
	if CodeOf(sentinel) != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", CodeOf(sentinel))
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E040") != nil {
		t.Error("FromError(nil) should be nil")
	}

	se := New("E001")
	if FromError(se, "E040") != se {
		t.Error("FromError should return an existing SodaError unchanged")
	}

	plain := stderrors.New("boom")
	wrapped := FromError(plain, "E040")
	if wrapped.Code != "E040" || wrapped.Wrapped != plain {
		t.Errorf("FromError = %+v", wrapped)
	}
}

func TestBuilders(t *testing.T) {
	err := New("E021").
		WithDetail("detail").
		WithSuggestion("hint").
		WithExample("return Div()")

	if err.Detail != "detail" || err.Suggestion != "hint" || err.Example != "return Div()" {
		t.Errorf("builders did not set fields: %+v", err)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E001").Wrap(stderrors.New("cause")).WithExample("a\nb")
	out := err.Format()

	for _, want := range []string{
		"ERROR E001: Hook order changed",
		"Cause: cause",
		"Hint: Call State",
		"Example:",
		"    a\n    b",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatColors(t *testing.T) {
	EnableColors()
	defer DisableColors()

	out := New("E001").Format()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("Format() should contain ANSI codes when colors are enabled:\n%q", out)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E040").Wrap(stderrors.New("dom: node not found"))
	want := "E040: Host mutation failed (dom: node not found)"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E023").Wrap(stderrors.New("id 7"))

	var decoded map[string]string
	if e := json.Unmarshal([]byte(err.FormatJSON()), &decoded); e != nil {
		t.Fatalf("invalid JSON: %v", e)
	}
	if decoded["code"] != "E023" || decoded["category"] != "runtime" || decoded["cause"] != "id 7" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestPrintError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var b strings.Builder
	PrintError(&b, fmt.Errorf("render: %w", New("E020")))
	if !strings.Contains(b.String(), "ERROR E020") {
		t.Errorf("PrintError() = %q", b.String())
	}

	b.Reset()
	PrintError(&b, stderrors.New("plain"))
	if !strings.Contains(b.String(), "ERROR: plain") {
		t.Errorf("PrintError() = %q", b.String())
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) < 8 {
		t.Fatalf("len(codes) = %d, want at least 8", len(codes))
	}
	if codes[0] != "E001" {
		t.Errorf("codes[0] = %q, want E001 (sorted)", codes[0])
	}
}

func TestRegister(t *testing.T) {
	Register("E900", ErrorTemplate{Category: CategoryRuntime, Message: "Custom"})
	defer delete(registry, "E900")

	tmpl, ok := GetTemplate("E900")
	if !ok || tmpl.Message != "Custom" {
		t.Errorf("GetTemplate(E900) = %+v, %v", tmpl, ok)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}
