package wml

import "strings"

// attr is a serialized attribute with an already-prefixed name (w:val, r:id).
type attr struct {
	name  string
	value string
}

// writer accumulates serialized WordprocessingML.
type writer struct {
	b strings.Builder
}

func (w *writer) start(name string, attrs ...attr) {
	w.b.WriteString("<")
	w.b.WriteString(name)
	w.writeAttrs(attrs)
	w.b.WriteString(">")
}

// empty writes a self-closing element.
func (w *writer) empty(name string, attrs ...attr) {
	w.b.WriteString("<")
	w.b.WriteString(name)
	w.writeAttrs(attrs)
	w.b.WriteString("/>")
}

func (w *writer) end(name string) {
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteString(">")
}

func (w *writer) text(s string) {
	w.b.WriteString(escapeText(s))
}

func (w *writer) raw(s string) {
	w.b.WriteString(s)
}

func (w *writer) writeAttrs(attrs []attr) {
	for _, a := range attrs {
		w.b.WriteString(" ")
		w.b.WriteString(a.name)
		w.b.WriteString(`="`)
		w.b.WriteString(escapeAttr(a.value))
		w.b.WriteString(`"`)
	}
}

func (w *writer) String() string {
	return w.b.String()
}

func (w *writer) Bytes() []byte {
	return []byte(w.b.String())
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = escapeText(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

// xmlHeader is the declaration Word expects on every serialized part.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
