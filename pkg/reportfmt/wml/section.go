package wml

import "encoding/xml"

// SectionProperties represents a w:sectPr element, either at the end of the
// body or inside a paragraph's properties (a mid-document section break).
type SectionProperties struct {
	attrs    []attr // rsid attributes and the like
	children []propChild
}

func (s *SectionProperties) write(w *writer) {
	w.start("w:sectPr", s.attrs...)
	for _, c := range s.children {
		c.node.write(w)
	}
	w.end("w:sectPr")
}

// PageSize returns the w:pgSz child, creating it when absent.
func (s *SectionProperties) PageSize() *PageSize {
	if n := childGet(s.children, "pgSz"); n != nil {
		return n.(*PageSize)
	}
	p := &PageSize{}
	s.children = childSet(s.children, "pgSz", p, sectPrOrder)
	return p
}

// Margins returns the w:pgMar child, creating it when absent.
func (s *SectionProperties) Margins() *PageMargins {
	if n := childGet(s.children, "pgMar"); n != nil {
		return n.(*PageMargins)
	}
	m := &PageMargins{}
	s.children = childSet(s.children, "pgMar", m, sectPrOrder)
	return m
}

// PageNumbering returns the w:pgNumType child, creating it when absent.
func (s *SectionProperties) PageNumbering() *PageNumbering {
	if n := childGet(s.children, "pgNumType"); n != nil {
		return n.(*PageNumbering)
	}
	p := &PageNumbering{}
	s.children = childSet(s.children, "pgNumType", p, sectPrOrder)
	return p
}

// HasPageNumbering reports whether a w:pgNumType child is present.
func (s *SectionProperties) HasPageNumbering() bool {
	return childGet(s.children, "pgNumType") != nil
}

// SetTitlePage sets or removes the w:titlePg flag. Word treats an absent
// element as off, so off is encoded by removal.
func (s *SectionProperties) SetTitlePage(on bool) {
	if on {
		s.children = childSet(s.children, "titlePg", NewFlag("titlePg", true), sectPrOrder)
		return
	}
	s.children = childRemove(s.children, "titlePg")
}

// TitlePage reports whether the w:titlePg flag is on.
func (s *SectionProperties) TitlePage() bool {
	if n := childGet(s.children, "titlePg"); n != nil {
		if f, ok := n.(*Flag); ok {
			return f.On()
		}
		return true
	}
	return false
}

// References returns the header or footer references of the section. Kind is
// "headerReference" or "footerReference".
func (s *SectionProperties) References(kind string) []*HFReference {
	var refs []*HFReference
	for _, c := range s.children {
		if c.name == kind {
			if r, ok := c.node.(*HFReference); ok {
				refs = append(refs, r)
			}
		}
	}
	return refs
}

// Reference returns the section's reference of the given kind and type
// ("default", "first", "even"), or nil.
func (s *SectionProperties) Reference(kind, refType string) *HFReference {
	for _, r := range s.References(kind) {
		if r.Type == refType {
			return r
		}
	}
	return nil
}

// AddReference appends a header or footer reference, keeping references at
// the front of the sectPr where the schema wants them.
func (s *SectionProperties) AddReference(kind, refType, relID string) {
	ref := &HFReference{Kind: kind, Type: refType, ID: relID}
	idx := 0
	for i, c := range s.children {
		if c.name == "headerReference" || c.name == "footerReference" {
			idx = i + 1
		}
	}
	s.children = append(s.children, propChild{})
	copy(s.children[idx+1:], s.children[idx:])
	s.children[idx] = propChild{name: kind, node: ref}
}

func parseSectionProperties(d *xml.Decoder, start xml.StartElement) (*SectionProperties, error) {
	s := &SectionProperties{attrs: prefixedAttrs(start.Attr)}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var n node
			switch t.Name.Local {
			case "pgSz":
				var p PageSize
				if err := d.DecodeElement(&p, &t); err != nil {
					return nil, err
				}
				n = &p
			case "pgMar":
				var m PageMargins
				if err := d.DecodeElement(&m, &t); err != nil {
					return nil, err
				}
				n = &m
			case "pgNumType":
				var p PageNumbering
				if err := d.DecodeElement(&p, &t); err != nil {
					return nil, err
				}
				n = &p
			case "titlePg":
				var tmp struct {
					Val string `xml:"val,attr"`
				}
				if err := d.DecodeElement(&tmp, &t); err != nil {
					return nil, err
				}
				n = &Flag{Name: "titlePg", Val: parseOnOff(tmp.Val)}
			case "headerReference", "footerReference":
				kind := t.Name.Local
				var tmp struct {
					Type string `xml:"type,attr"`
					ID   string `xml:"id,attr"`
				}
				if err := d.DecodeElement(&tmp, &t); err != nil {
					return nil, err
				}
				n = &HFReference{Kind: kind, Type: tmp.Type, ID: tmp.ID}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				n = raw
			}
			s.children = append(s.children, propChild{name: t.Name.Local, node: n})
		case xml.EndElement:
			if t.Name.Local == "sectPr" {
				return s, nil
			}
		}
	}
}

// PageSize is a w:pgSz element. Values are twips kept as strings so absent
// attributes stay absent.
type PageSize struct {
	W      string `xml:"w,attr"`
	H      string `xml:"h,attr"`
	Orient string `xml:"orient,attr"`
	Code   string `xml:"code,attr"`
}

func (p *PageSize) write(w *writer) {
	var attrs []attr
	add := func(name, val string) {
		if val != "" {
			attrs = append(attrs, attr{name, val})
		}
	}
	add("w:w", p.W)
	add("w:h", p.H)
	add("w:orient", p.Orient)
	add("w:code", p.Code)
	w.empty("w:pgSz", attrs...)
}

// PageMargins is a w:pgMar element, twips as strings.
type PageMargins struct {
	Top    string `xml:"top,attr"`
	Right  string `xml:"right,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Header string `xml:"header,attr"`
	Footer string `xml:"footer,attr"`
	Gutter string `xml:"gutter,attr"`
}

func (m *PageMargins) write(w *writer) {
	var attrs []attr
	add := func(name, val string) {
		if val != "" {
			attrs = append(attrs, attr{name, val})
		}
	}
	add("w:top", m.Top)
	add("w:right", m.Right)
	add("w:bottom", m.Bottom)
	add("w:left", m.Left)
	add("w:header", m.Header)
	add("w:footer", m.Footer)
	add("w:gutter", m.Gutter)
	w.empty("w:pgMar", attrs...)
}

// PageNumbering is a w:pgNumType element. An empty Start means numbering
// continues from the previous section.
type PageNumbering struct {
	Fmt   string `xml:"fmt,attr"`
	Start string `xml:"start,attr"`
}

func (p *PageNumbering) write(w *writer) {
	var attrs []attr
	if p.Fmt != "" {
		attrs = append(attrs, attr{"w:fmt", p.Fmt})
	}
	if p.Start != "" {
		attrs = append(attrs, attr{"w:start", p.Start})
	}
	w.empty("w:pgNumType", attrs...)
}

// HFReference is a w:headerReference or w:footerReference element.
type HFReference struct {
	Kind string // "headerReference" or "footerReference"
	Type string // "default", "first" or "even"
	ID   string // relationship ID
}

func (r *HFReference) write(w *writer) {
	w.empty("w:"+r.Kind, attr{"w:type", r.Type}, attr{"r:id", r.ID})
}
