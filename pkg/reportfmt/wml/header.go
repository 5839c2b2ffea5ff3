package wml

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// HeaderFooter is a header or footer part (w:hdr or w:ftr root).
type HeaderFooter struct {
	root     string // "hdr" or "ftr"
	attrs    []attr
	Elements []BodyElement
}

// Namespace declarations written on parts created from scratch. Existing
// parts keep whatever their file declared.
var defaultPartAttrs = []attr{
	{"xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"},
	{"xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships"},
}

// NewHeader returns an empty header part.
func NewHeader() *HeaderFooter {
	return &HeaderFooter{root: "hdr", attrs: defaultPartAttrs}
}

// NewFooter returns an empty footer part.
func NewFooter() *HeaderFooter {
	return &HeaderFooter{root: "ftr", attrs: defaultPartAttrs}
}

// ParseHeaderFooter decodes a header or footer part.
func ParseHeaderFooter(data []byte) (*HeaderFooter, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing header/footer: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "hdr" && start.Name.Local != "ftr" {
			return nil, fmt.Errorf("parsing header/footer: unexpected root element %q", start.Name.Local)
		}
		hf := &HeaderFooter{root: start.Name.Local, attrs: prefixedAttrs(start.Attr)}
		if err := hf.parseChildren(d); err != nil {
			return nil, fmt.Errorf("parsing header/footer: %w", err)
		}
		return hf, nil
	}
}

func (hf *HeaderFooter) parseChildren(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p, err := parseParagraph(d, t)
				if err != nil {
					return err
				}
				hf.Elements = append(hf.Elements, p)
			case "tbl":
				tbl, err := parseTable(d, t)
				if err != nil {
					return err
				}
				hf.Elements = append(hf.Elements, tbl)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				hf.Elements = append(hf.Elements, raw)
			}
		case xml.EndElement:
			if t.Name.Local == hf.root {
				return nil
			}
		}
	}
}

// IsFooter reports whether the part is a footer.
func (hf *HeaderFooter) IsFooter() bool {
	return hf.root == "ftr"
}

// Paragraphs returns the top-level paragraphs of the part.
func (hf *HeaderFooter) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range hf.Elements {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// AddParagraph appends an empty paragraph and returns it.
func (hf *HeaderFooter) AddParagraph() *Paragraph {
	p := &Paragraph{}
	hf.Elements = append(hf.Elements, p)
	return p
}

// Clear removes all content from the part.
func (hf *HeaderFooter) Clear() {
	hf.Elements = nil
}

// XML serializes the part back to bytes.
func (hf *HeaderFooter) XML() []byte {
	w := &writer{}
	w.raw(xmlHeader)
	w.start("w:"+hf.root, hf.attrs...)
	for _, el := range hf.Elements {
		el.write(w)
	}
	w.end("w:" + hf.root)
	return w.Bytes()
}
