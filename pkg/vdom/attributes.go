package vdom

import (
	"sort"
	"strings"
)

// Attr is a single attribute passed to a tag factory.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty reports whether the attribute carries no key and should be skipped.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute from a property map.
// Properties dropped between renders are removed from the host node.
func StyleAttr(style Style) Attr { return attr("style", style) }

// Ref binds a ref carrier returned by the Ref hook. The renderer stores the
// host node in the carrier when the element is materialized.
func Ref(carrier any) Attr { return attr("ref", carrier) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabIndex", index) }

// Global attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// ContentEditable sets the contenteditable attribute.
func ContentEditable(editable bool) Attr { return attr("contentEditable", editable) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute. A false value removes it.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked attribute. A false value removes it.
func Checked(checked bool) Attr { return attr("checked", checked) }

// ReadOnly sets the readonly attribute.
func ReadOnly() Attr { return attr("readOnly", true) }

// AutoFocus sets the autofocus attribute.
func AutoFocus() Attr { return attr("autoFocus", true) }

// MaxLength sets the maxlength attribute.
func MaxLength(n int) Attr { return attr("maxLength", n) }

// For sets the for attribute of a label.
func For(id string) Attr { return attr("for", id) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// SVG attributes

// ViewBox sets the viewBox attribute.
func ViewBox(box string) Attr { return attr("viewBox", box) }

// Fill sets the fill attribute.
func Fill(color string) Attr { return attr("fill", color) }

// Stroke sets the stroke attribute.
func Stroke(color string) Attr { return attr("stroke", color) }

// StrokeWidth sets the stroke-width attribute.
func StrokeWidth(w any) Attr { return attr("strokeWidth", w) }

// Cx sets the cx attribute of a circle.
func Cx(v any) Attr { return attr("cx", v) }

// Cy sets the cy attribute of a circle.
func Cy(v any) Attr { return attr("cy", v) }

// R sets the r attribute of a circle.
func R(v any) Attr { return attr("r", v) }

// XlinkHref sets the xlink:href attribute.
func XlinkHref(ref string) Attr { return attr("xlinkHref", ref) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges multiple class values.
// Accepts string, []string, and map[string]bool.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			var picked []string
			for class, include := range v {
				if include && class != "" {
					picked = append(picked, class)
				}
			}
			sort.Strings(picked)
			result = append(result, picked...)
		}
	}
	return attr("class", strings.Join(result, " "))
}
