package wml

import (
	"encoding/xml"
	"strings"
)

// Paragraph represents a w:p element.
type Paragraph struct {
	props   *ParagraphProperties
	Content []ParagraphContent
}

func (p *Paragraph) isBodyElement() {}

// Props returns the paragraph's properties, creating them when absent.
func (p *Paragraph) Props() *ParagraphProperties {
	if p.props == nil {
		p.props = &ParagraphProperties{}
	}
	return p.props
}

// StyleID returns the referenced paragraph style ID, or "".
func (p *Paragraph) StyleID() string {
	if p.props == nil {
		return ""
	}
	return p.props.StyleID()
}

// Runs returns the direct child runs of the paragraph. Runs nested inside
// hyperlinks or fields are not included, matching how word processors expose
// paragraph runs.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.Content {
		if r, ok := c.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// Text returns the concatenated text of the paragraph's direct runs and
// simple fields.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, c := range p.Content {
		switch e := c.(type) {
		case *Run:
			b.WriteString(e.Text())
		case *SimpleField:
			for _, r := range e.Runs {
				b.WriteString(r.Text())
			}
		}
	}
	return b.String()
}

// Clear removes all content and properties from the paragraph.
func (p *Paragraph) Clear() {
	p.props = nil
	p.Content = nil
}

// AddRun appends a run carrying the given text and returns it.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Content: []RunContent{&Text{Content: text}}}
	p.Content = append(p.Content, r)
	return r
}

// AddField appends a simple field with the given instruction and cached
// display value, and returns it.
func (p *Paragraph) AddField(instr, cached string) *SimpleField {
	f := &SimpleField{
		Instr: instr,
		Runs:  []*Run{{Content: []RunContent{&Text{Content: cached}}}},
	}
	p.Content = append(p.Content, f)
	return f
}

func (p *Paragraph) write(w *writer) {
	w.start("w:p")
	if p.props != nil && len(p.props.children) > 0 {
		p.props.write(w)
	}
	for _, c := range p.Content {
		c.write(w)
	}
	w.end("w:p")
}

func parseParagraph(d *xml.Decoder, start xml.StartElement) (*Paragraph, error) {
	p := &Paragraph{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				props, err := parseParagraphProperties(d, t)
				if err != nil {
					return nil, err
				}
				p.props = props
			case "r":
				r, err := parseRun(d, t)
				if err != nil {
					return nil, err
				}
				p.Content = append(p.Content, r)
			case "fldSimple":
				f, err := parseSimpleField(d, t)
				if err != nil {
					return nil, err
				}
				p.Content = append(p.Content, f)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				p.Content = append(p.Content, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return p, nil
			}
		}
	}
}

// ParagraphProperties is a w:pPr container, typed children plus raw
// passthrough in original order.
type ParagraphProperties struct {
	children []propChild
}

func (p *ParagraphProperties) write(w *writer) {
	w.start("w:pPr")
	for _, c := range p.children {
		c.node.write(w)
	}
	w.end("w:pPr")
}

// StyleID returns the w:pStyle value, or "".
func (p *ParagraphProperties) StyleID() string {
	if n := childGet(p.children, "pStyle"); n != nil {
		return n.(*StyleRef).Val
	}
	return ""
}

// SetStyleID sets the w:pStyle reference.
func (p *ParagraphProperties) SetStyleID(id string) {
	p.children = childSet(p.children, "pStyle", &StyleRef{Name: "pStyle", Val: id}, pPrOrder)
}

// Alignment returns the w:jc value, or "".
func (p *ParagraphProperties) Alignment() string {
	if n := childGet(p.children, "jc"); n != nil {
		return n.(*Alignment).Val
	}
	return ""
}

// SetAlignment sets the w:jc value.
func (p *ParagraphProperties) SetAlignment(val string) {
	p.children = childSet(p.children, "jc", &Alignment{Val: val}, pPrOrder)
}

// Spacing returns the w:spacing child, creating it when absent.
func (p *ParagraphProperties) Spacing() *Spacing {
	if n := childGet(p.children, "spacing"); n != nil {
		return n.(*Spacing)
	}
	s := &Spacing{}
	p.children = childSet(p.children, "spacing", s, pPrOrder)
	return s
}

// Indent returns the w:ind child, creating it when absent.
func (p *ParagraphProperties) Indent() *Indent {
	if n := childGet(p.children, "ind"); n != nil {
		return n.(*Indent)
	}
	i := &Indent{}
	p.children = childSet(p.children, "ind", i, pPrOrder)
	return i
}

// HasIndent reports whether a w:ind child is present.
func (p *ParagraphProperties) HasIndent() bool {
	return childGet(p.children, "ind") != nil
}

// dropEmptyIndent removes the w:ind child when it carries no attributes.
func (p *ParagraphProperties) dropEmptyIndent() {
	if n := childGet(p.children, "ind"); n != nil {
		if n.(*Indent).empty() {
			p.children = childRemove(p.children, "ind")
		}
	}
}

// SetFirstLineIndent sets the first-line indent in twips. A zero value
// encodes "no indent": the firstLine attribute is removed, and the whole
// w:ind element is dropped when nothing else remains. Hanging indents are
// cleared either way since the two are mutually exclusive.
func (p *ParagraphProperties) SetFirstLineIndent(twips int) {
	ind := p.Indent()
	ind.Hanging = ""
	if twips == 0 {
		ind.FirstLine = ""
	} else {
		ind.FirstLine = itoa(twips)
	}
	p.dropEmptyIndent()
}

// SetFlag sets a boolean paragraph property such as "keepNext" or
// "pageBreakBefore".
func (p *ParagraphProperties) SetFlag(name string, on bool) {
	p.children = childSet(p.children, name, NewFlag(name, on), pPrOrder)
}

// Flag returns the named boolean property, or nil when absent.
func (p *ParagraphProperties) Flag(name string) *Flag {
	if n := childGet(p.children, name); n != nil {
		if f, ok := n.(*Flag); ok {
			return f
		}
	}
	return nil
}

// RunProps returns the paragraph-mark run properties (pPr > rPr), creating
// them when absent.
func (p *ParagraphProperties) RunProps() *RunProperties {
	if n := childGet(p.children, "rPr"); n != nil {
		return n.(*RunProperties)
	}
	r := &RunProperties{}
	p.children = childSet(p.children, "rPr", r, pPrOrder)
	return r
}

// SectPr returns the paragraph-level section properties, if any. A non-nil
// result marks a section boundary.
func (p *ParagraphProperties) SectPr() *SectionProperties {
	if n := childGet(p.children, "sectPr"); n != nil {
		return n.(*SectionProperties)
	}
	return nil
}

func parseParagraphProperties(d *xml.Decoder, start xml.StartElement) (*ParagraphProperties, error) {
	p := &ParagraphProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var n node
			switch t.Name.Local {
			case "pStyle":
				var tmp struct {
					Val string `xml:"val,attr"`
				}
				if err := d.DecodeElement(&tmp, &t); err != nil {
					return nil, err
				}
				n = &StyleRef{Name: "pStyle", Val: tmp.Val}
			case "keepNext", "pageBreakBefore":
				var tmp struct {
					Val string `xml:"val,attr"`
				}
				if err := d.DecodeElement(&tmp, &t); err != nil {
					return nil, err
				}
				n = &Flag{Name: t.Name.Local, Val: parseOnOff(tmp.Val)}
			case "jc":
				var a Alignment
				if err := d.DecodeElement(&a, &t); err != nil {
					return nil, err
				}
				n = &a
			case "spacing":
				var s Spacing
				if err := d.DecodeElement(&s, &t); err != nil {
					return nil, err
				}
				n = &s
			case "ind":
				var i Indent
				if err := d.DecodeElement(&i, &t); err != nil {
					return nil, err
				}
				n = &i
			case "rPr":
				props, err := parseRunProperties(d, t)
				if err != nil {
					return nil, err
				}
				n = props
			case "sectPr":
				sect, err := parseSectionProperties(d, t)
				if err != nil {
					return nil, err
				}
				n = sect
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				n = raw
			}
			p.children = append(p.children, propChild{name: t.Name.Local, node: n})
		case xml.EndElement:
			if t.Name.Local == "pPr" {
				return p, nil
			}
		}
	}
}

// Alignment is a w:jc element.
type Alignment struct {
	Val string `xml:"val,attr"`
}

func (a *Alignment) write(w *writer) {
	w.empty("w:jc", attr{"w:val", a.Val})
}

// Spacing is a w:spacing element. Attribute values are kept as strings so
// absent attributes stay absent.
type Spacing struct {
	Before            string `xml:"before,attr"`
	After             string `xml:"after,attr"`
	Line              string `xml:"line,attr"`
	LineRule          string `xml:"lineRule,attr"`
	BeforeAutospacing string `xml:"beforeAutospacing,attr"`
	AfterAutospacing  string `xml:"afterAutospacing,attr"`
}

func (s *Spacing) write(w *writer) {
	var attrs []attr
	add := func(name, val string) {
		if val != "" {
			attrs = append(attrs, attr{name, val})
		}
	}
	add("w:before", s.Before)
	add("w:beforeAutospacing", s.BeforeAutospacing)
	add("w:after", s.After)
	add("w:afterAutospacing", s.AfterAutospacing)
	add("w:line", s.Line)
	add("w:lineRule", s.LineRule)
	w.empty("w:spacing", attrs...)
}

// Indent is a w:ind element. Attribute values are kept as strings so absent
// attributes stay absent.
type Indent struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	Start     string `xml:"start,attr"`
	End       string `xml:"end,attr"`
	Hanging   string `xml:"hanging,attr"`
	FirstLine string `xml:"firstLine,attr"`
}

func (i *Indent) empty() bool {
	return i.Left == "" && i.Right == "" && i.Start == "" && i.End == "" &&
		i.Hanging == "" && i.FirstLine == ""
}

func (i *Indent) write(w *writer) {
	var attrs []attr
	add := func(name, val string) {
		if val != "" {
			attrs = append(attrs, attr{name, val})
		}
	}
	add("w:start", i.Start)
	add("w:end", i.End)
	add("w:left", i.Left)
	add("w:right", i.Right)
	add("w:hanging", i.Hanging)
	add("w:firstLine", i.FirstLine)
	w.empty("w:ind", attrs...)
}
