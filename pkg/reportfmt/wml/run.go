package wml

import (
	"encoding/xml"
	"strconv"
)

// RunContent is an element that can appear inside a run.
type RunContent interface {
	node
	isRunContent()
}

// Run represents a text run.
type Run struct {
	props   *RunProperties
	Content []RunContent
}

func (r *Run) isParagraphContent() {}

// Props returns the run's properties, creating them when absent.
func (r *Run) Props() *RunProperties {
	if r.props == nil {
		r.props = &RunProperties{}
	}
	return r.props
}

// Text returns the concatenated text content of the run.
func (r *Run) Text() string {
	var out string
	for _, c := range r.Content {
		if t, ok := c.(*Text); ok {
			out += t.Content
		}
	}
	return out
}

func (r *Run) write(w *writer) {
	w.start("w:r")
	if r.props != nil && len(r.props.children) > 0 {
		r.props.write(w)
	}
	for _, c := range r.Content {
		c.write(w)
	}
	w.end("w:r")
}

func parseRun(d *xml.Decoder, start xml.StartElement) (*Run, error) {
	r := &Run{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				props, err := parseRunProperties(d, t)
				if err != nil {
					return nil, err
				}
				r.props = props
			case "t":
				var text Text
				if err := d.DecodeElement(&text, &t); err != nil {
					return nil, err
				}
				r.Content = append(r.Content, &text)
			case "br":
				var br Break
				if err := d.DecodeElement(&br, &t); err != nil {
					return nil, err
				}
				r.Content = append(r.Content, &br)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				r.Content = append(r.Content, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return r, nil
			}
		}
	}
}

// Text is a w:t element.
type Text struct {
	Space   string `xml:"space,attr"`
	Content string `xml:",chardata"`
}

func (t *Text) isRunContent() {}

func (t *Text) write(w *writer) {
	if t.Space == "preserve" || needsPreserve(t.Content) {
		w.start("w:t", attr{"xml:space", "preserve"})
	} else {
		w.start("w:t")
	}
	w.text(t.Content)
	w.end("w:t")
}

// needsPreserve reports whether text would lose leading or trailing
// whitespace without xml:space="preserve".
func needsPreserve(s string) bool {
	if s == "" {
		return false
	}
	return s[0] == ' ' || s[len(s)-1] == ' '
}

// Break is a w:br element.
type Break struct {
	Type string `xml:"type,attr"`
}

func (b *Break) isRunContent() {}

func (b *Break) write(w *writer) {
	if b.Type != "" {
		w.empty("w:br", attr{"w:type", b.Type})
		return
	}
	w.empty("w:br")
}

// RawXML inside runs (drawings, tabs, field chars) round-trips unchanged.
func (r *RawXML) isRunContent() {}

// RunProperties is a w:rPr container. Children the formatter mutates are
// typed; the rest round-trip as raw XML in their original order.
type RunProperties struct {
	children []propChild
}

func (p *RunProperties) write(w *writer) {
	w.start("w:rPr")
	for _, c := range p.children {
		c.node.write(w)
	}
	w.end("w:rPr")
}

// Empty reports whether the properties carry no children at all.
func (p *RunProperties) Empty() bool { return len(p.children) == 0 }

// Fonts returns the w:rFonts child, creating it when absent.
func (p *RunProperties) Fonts() *Fonts {
	if n := childGet(p.children, "rFonts"); n != nil {
		return n.(*Fonts)
	}
	f := &Fonts{}
	p.children = childSet(p.children, "rFonts", f, rPrOrder)
	return f
}

// SetSize sets the font size (w:sz and w:szCs) in half-points.
func (p *RunProperties) SetSize(halfPoints int) {
	p.children = childSet(p.children, "sz", &Size{Name: "sz", Val: halfPoints}, rPrOrder)
	p.children = childSet(p.children, "szCs", &Size{Name: "szCs", Val: halfPoints}, rPrOrder)
}

// Size returns the w:sz value in half-points, or 0 when unset.
func (p *RunProperties) Size() int {
	if n := childGet(p.children, "sz"); n != nil {
		return n.(*Size).Val
	}
	return 0
}

// SetFlag sets a boolean run property such as "b" or "i".
func (p *RunProperties) SetFlag(name string, on bool) {
	p.children = childSet(p.children, name, NewFlag(name, on), rPrOrder)
}

// Flag returns the named boolean property, or nil when absent.
func (p *RunProperties) Flag(name string) *Flag {
	if n := childGet(p.children, name); n != nil {
		if f, ok := n.(*Flag); ok {
			return f
		}
	}
	return nil
}

// SetColor sets an explicit RGB color, clearing any theme color attributes
// so the explicit value takes effect.
func (p *RunProperties) SetColor(hex string) {
	p.children = childSet(p.children, "color", &Color{Val: hex}, rPrOrder)
}

// Color returns the w:color value, or "" when absent.
func (p *RunProperties) Color() string {
	if n := childGet(p.children, "color"); n != nil {
		return n.(*Color).Val
	}
	return ""
}

func parseRunProperties(d *xml.Decoder, start xml.StartElement) (*RunProperties, error) {
	p := &RunProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var n node
			switch t.Name.Local {
			case "rFonts":
				var f Fonts
				if err := d.DecodeElement(&f, &t); err != nil {
					return nil, err
				}
				n = &f
			case "b", "i":
				var tmp struct {
					Val string `xml:"val,attr"`
				}
				if err := d.DecodeElement(&tmp, &t); err != nil {
					return nil, err
				}
				n = &Flag{Name: t.Name.Local, Val: parseOnOff(tmp.Val)}
			case "color":
				var c Color
				if err := d.DecodeElement(&c, &t); err != nil {
					return nil, err
				}
				n = &c
			case "sz", "szCs":
				var tmp struct {
					Val string `xml:"val,attr"`
				}
				if err := d.DecodeElement(&tmp, &t); err != nil {
					return nil, err
				}
				v, _ := strconv.Atoi(tmp.Val)
				n = &Size{Name: t.Name.Local, Val: v}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				n = raw
			}
			p.children = append(p.children, propChild{name: t.Name.Local, node: n})
		case xml.EndElement:
			if t.Name.Local == "rPr" {
				return p, nil
			}
		}
	}
}

// Fonts is a w:rFonts element with one slot per script variant.
type Fonts struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	EastAsia string `xml:"eastAsia,attr"`
	CS       string `xml:"cs,attr"`
	Hint     string `xml:"hint,attr"`

	// Theme slots are kept so untouched fonts round-trip, and cleared when
	// an explicit font is forced onto all four script slots.
	ASCIITheme    string `xml:"asciiTheme,attr"`
	HAnsiTheme    string `xml:"hAnsiTheme,attr"`
	EastAsiaTheme string `xml:"eastAsiaTheme,attr"`
	CSTheme       string `xml:"cstheme,attr"`
}

func (f *Fonts) write(w *writer) {
	var attrs []attr
	add := func(name, val string) {
		if val != "" {
			attrs = append(attrs, attr{name, val})
		}
	}
	add("w:ascii", f.ASCII)
	add("w:hAnsi", f.HAnsi)
	add("w:eastAsia", f.EastAsia)
	add("w:cs", f.CS)
	add("w:asciiTheme", f.ASCIITheme)
	add("w:hAnsiTheme", f.HAnsiTheme)
	add("w:eastAsiaTheme", f.EastAsiaTheme)
	add("w:cstheme", f.CSTheme)
	add("w:hint", f.Hint)
	w.empty("w:rFonts", attrs...)
}

// SetAll forces the font name onto all four script slots, clearing theme
// references that would otherwise win.
func (f *Fonts) SetAll(name string) {
	f.ASCII = name
	f.HAnsi = name
	f.EastAsia = name
	f.CS = name
	f.ASCIITheme = ""
	f.HAnsiTheme = ""
	f.EastAsiaTheme = ""
	f.CSTheme = ""
}

// SetLatin sets only the default and high-ANSI slots, the way a plain font
// name assignment behaves in word processors.
func (f *Fonts) SetLatin(name string) {
	f.ASCII = name
	f.HAnsi = name
	f.ASCIITheme = ""
	f.HAnsiTheme = ""
}

// Color is a w:color element.
type Color struct {
	Val        string `xml:"val,attr"`
	ThemeColor string `xml:"themeColor,attr"`
	ThemeTint  string `xml:"themeTint,attr"`
	ThemeShade string `xml:"themeShade,attr"`
}

func (c *Color) write(w *writer) {
	attrs := []attr{{"w:val", c.Val}}
	if c.ThemeColor != "" {
		attrs = append(attrs, attr{"w:themeColor", c.ThemeColor})
	}
	if c.ThemeTint != "" {
		attrs = append(attrs, attr{"w:themeTint", c.ThemeTint})
	}
	if c.ThemeShade != "" {
		attrs = append(attrs, attr{"w:themeShade", c.ThemeShade})
	}
	w.empty("w:color", attrs...)
}

// Size is a half-point font size element (w:sz or w:szCs).
type Size struct {
	Name string
	Val  int
}

func (s *Size) write(w *writer) {
	w.empty("w:"+s.Name, attr{"w:val", strconv.Itoa(s.Val)})
}
