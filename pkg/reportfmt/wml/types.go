package wml

import (
	"encoding/xml"
	"strconv"
	"strings"
)

func itoa(v int) string { return strconv.Itoa(v) }

// node is anything that can serialize itself as WordprocessingML.
type node interface {
	write(w *writer)
}

// BodyElement is an element that can appear directly in a document body,
// header, footer, or table cell.
type BodyElement interface {
	node
	isBodyElement()
}

// ParagraphContent is an element that can appear inside a paragraph.
type ParagraphContent interface {
	node
	isParagraphContent()
}

// RawXML preserves an element this package does not parse. Content holds the
// complete serialized element, prefixes already normalized.
type RawXML struct {
	Name    string // local element name, e.g. "bookmarkStart"
	Content string
}

func (r *RawXML) write(w *writer)     { w.raw(r.Content) }
func (r *RawXML) isBodyElement()      {}
func (r *RawXML) isParagraphContent() {}

// Flag is a WordprocessingML boolean property element such as w:b,
// w:keepNext or w:titlePg. A nil Val means the element is present without a
// w:val attribute, which counts as on.
type Flag struct {
	Name string // local name without prefix
	Val  *bool
}

func (f *Flag) write(w *writer) {
	if f.Val != nil && !*f.Val {
		w.empty("w:"+f.Name, attr{"w:val", "0"})
		return
	}
	w.empty("w:" + f.Name)
}

// On reports whether the flag is set.
func (f *Flag) On() bool { return f.Val == nil || *f.Val }

// NewFlag returns a flag in the given state.
func NewFlag(name string, on bool) *Flag {
	if on {
		return &Flag{Name: name}
	}
	off := false
	return &Flag{Name: name, Val: &off}
}

// StyleRef is a style reference element (w:pStyle, w:rStyle, w:tblStyle).
type StyleRef struct {
	Name string
	Val  string
}

func (s *StyleRef) write(w *writer) {
	w.empty("w:"+s.Name, attr{"w:val", s.Val})
}

// propChild pairs a child element's local name with its parsed or raw form.
// Containers keep children in document order.
type propChild struct {
	name string
	node node
}

// childGet returns the first child with the given local name, or nil.
func childGet(children []propChild, name string) node {
	for _, c := range children {
		if c.name == name {
			return c.node
		}
	}
	return nil
}

// childSet replaces the first child with the given name, or inserts a new
// one at the position the schema order dictates.
func childSet(children []propChild, name string, n node, order map[string]int) []propChild {
	for i, c := range children {
		if c.name == name {
			children[i].node = n
			return children
		}
	}
	rank, known := order[name]
	idx := len(children)
	if known {
		for i, c := range children {
			if r, ok := order[c.name]; ok && r > rank {
				idx = i
				break
			}
		}
	}
	children = append(children, propChild{})
	copy(children[idx+1:], children[idx:])
	children[idx] = propChild{name: name, node: n}
	return children
}

// childRemove drops every child with the given name.
func childRemove(children []propChild, name string) []propChild {
	out := children[:0]
	for _, c := range children {
		if c.name != name {
			out = append(out, c)
		}
	}
	return out
}

func orderIndex(names ...string) map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}

// Child orders per the WordprocessingML schema, used when a mutation has to
// insert an element that was not present in the source.
var (
	pPrOrder = orderIndex(
		"pStyle", "keepNext", "keepLines", "pageBreakBefore", "framePr",
		"widowControl", "numPr", "suppressLineNumbers", "pBdr", "shd", "tabs",
		"suppressAutoHyphens", "kinsoku", "wordWrap", "overflowPunct",
		"topLinePunct", "autoSpaceDE", "autoSpaceDN", "bidi", "adjustRightInd",
		"snapToGrid", "spacing", "ind", "contextualSpacing", "mirrorIndents",
		"suppressOverlap", "jc", "textDirection", "textAlignment",
		"textboxTightWrap", "outlineLvl", "divId", "cnfStyle", "rPr", "sectPr",
		"pPrChange",
	)
	rPrOrder = orderIndex(
		"rStyle", "rFonts", "b", "bCs", "i", "iCs", "caps", "smallCaps",
		"strike", "dstrike", "outline", "shadow", "emboss", "imprint",
		"noProof", "snapToGrid", "vanish", "webHidden", "color", "spacing",
		"w", "kern", "position", "sz", "szCs", "highlight", "u", "effect",
		"bdr", "shd", "fitText", "vertAlign", "rtl", "cs", "em", "lang",
		"eastAsianLayout", "specVanish", "oMath",
	)
	sectPrOrder = orderIndex(
		"headerReference", "footerReference", "footnotePr", "endnotePr",
		"type", "pgSz", "pgMar", "paperSrc", "pgBorders", "lnNumType",
		"pgNumType", "cols", "formProt", "vAlign", "noEndnote", "titlePg",
		"textDirection", "bidi", "rtlGutter", "docGrid", "printerSettings",
		"sectPrChange",
	)
)

// parseOnOff interprets a WordprocessingML boolean attribute value.
func parseOnOff(val string) *bool {
	switch strings.ToLower(val) {
	case "0", "false", "off":
		v := false
		return &v
	case "1", "true", "on":
		v := true
		return &v
	}
	return nil
}

// prefixedAttrs converts decoded attributes back to their prefixed form,
// dropping none. Namespace declarations come back from the decoder with the
// "xmlns" space; everything else carries the full namespace URI.
func prefixedAttrs(in []xml.Attr) []attr {
	out := make([]attr, 0, len(in))
	for _, a := range in {
		out = append(out, attr{name: prefixedName(a.Name), value: a.Value})
	}
	return out
}

func prefixedName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	default:
		return namespacePrefix(n.Space) + ":" + n.Local
	}
}

// attrValue returns the value of the attribute with the given local name.
func attrValue(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
