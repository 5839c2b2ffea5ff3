package wml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Styles is a word/styles.xml part. Only w:style elements are modeled;
// docDefaults and latentStyles pass through untouched.
type Styles struct {
	attrs    []attr
	Elements []node
}

// StyleDef is a single w:style definition.
type StyleDef struct {
	Type     string // "paragraph", "character", "table" or "numbering"
	StyleID  string
	Default  string // w:default attr, "" when absent
	children []propChild
}

var styleOrder = orderIndex(
	"name", "aliases", "basedOn", "next", "link", "autoRedefine",
	"hidden", "uiPriority", "semiHidden", "unhideWhenUsed", "qFormat",
	"locked", "personal", "personalCompose", "personalReply", "rsid",
	"pPr", "rPr", "tblPr", "trPr", "tcPr", "tblStylePr",
)

// ParseStyles decodes a styles.xml part.
func ParseStyles(data []byte) (*Styles, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing styles: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "styles" {
			return nil, fmt.Errorf("parsing styles: unexpected root element %q", start.Name.Local)
		}
		st := &Styles{attrs: prefixedAttrs(start.Attr)}
		if err := st.parseChildren(d); err != nil {
			return nil, fmt.Errorf("parsing styles: %w", err)
		}
		return st, nil
	}
}

func (st *Styles) parseChildren(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "style" {
				def, err := parseStyleDef(d, t)
				if err != nil {
					return err
				}
				st.Elements = append(st.Elements, def)
			} else {
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				st.Elements = append(st.Elements, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "styles" {
				return nil
			}
		}
	}
}

func parseStyleDef(d *xml.Decoder, start xml.StartElement) (*StyleDef, error) {
	def := &StyleDef{}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "type":
			def.Type = a.Value
		case "styleId":
			def.StyleID = a.Value
		case "default":
			def.Default = a.Value
		}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var n node
			switch t.Name.Local {
			case "name":
				var tmp struct {
					Val string `xml:"val,attr"`
				}
				if err := d.DecodeElement(&tmp, &t); err != nil {
					return nil, err
				}
				n = &styleName{Val: tmp.Val}
			case "pPr":
				pr, err := parseParagraphProperties(d, t)
				if err != nil {
					return nil, err
				}
				n = pr
			case "rPr":
				pr, err := parseRunProperties(d, t)
				if err != nil {
					return nil, err
				}
				n = pr
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				n = raw
			}
			def.children = append(def.children, propChild{name: t.Name.Local, node: n})
		case xml.EndElement:
			if t.Name.Local == "style" {
				return def, nil
			}
		}
	}
}

type styleName struct {
	Val string
}

func (s *styleName) write(w *writer) {
	w.empty("w:name", attr{"w:val", s.Val})
}

// All returns every style definition in the part.
func (st *Styles) All() []*StyleDef {
	var out []*StyleDef
	for _, el := range st.Elements {
		if def, ok := el.(*StyleDef); ok {
			out = append(out, def)
		}
	}
	return out
}

// ByName returns the style whose w:name matches, ignoring case, or nil.
func (st *Styles) ByName(name string) *StyleDef {
	for _, def := range st.All() {
		if strings.EqualFold(def.Name(), name) {
			return def
		}
	}
	return nil
}

// ByID returns the style with the given styleId, or nil.
func (st *Styles) ByID(id string) *StyleDef {
	for _, def := range st.All() {
		if def.StyleID == id {
			return def
		}
	}
	return nil
}

// XML serializes the part back to bytes.
func (st *Styles) XML() []byte {
	w := &writer{}
	w.raw(xmlHeader)
	w.start("w:styles", st.attrs...)
	for _, el := range st.Elements {
		el.write(w)
	}
	w.end("w:styles")
	return w.Bytes()
}

func (def *StyleDef) write(w *writer) {
	attrs := []attr{{"w:type", def.Type}}
	if def.Default != "" {
		attrs = append(attrs, attr{"w:default", def.Default})
	}
	attrs = append(attrs, attr{"w:styleId", def.StyleID})
	w.start("w:style", attrs...)
	for _, c := range def.children {
		c.node.write(w)
	}
	w.end("w:style")
}

// Name returns the style's display name from its w:name child.
func (def *StyleDef) Name() string {
	if n := childGet(def.children, "name"); n != nil {
		if sn, ok := n.(*styleName); ok {
			return sn.Val
		}
	}
	return ""
}

// RunProps returns the style's rPr, creating it when absent.
func (def *StyleDef) RunProps() *RunProperties {
	if n := childGet(def.children, "rPr"); n != nil {
		return n.(*RunProperties)
	}
	pr := &RunProperties{}
	def.children = childSet(def.children, "rPr", pr, styleOrder)
	return pr
}

// ParaProps returns the style's pPr, creating it when absent.
func (def *StyleDef) ParaProps() *ParagraphProperties {
	if n := childGet(def.children, "pPr"); n != nil {
		return n.(*ParagraphProperties)
	}
	pr := &ParagraphProperties{}
	def.children = childSet(def.children, "pPr", pr, styleOrder)
	return pr
}
