package wml

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Document is the root of a word/document.xml part.
type Document struct {
	attrs []attr // xmlns declarations and mc:Ignorable from the original file
	Body  *Body
}

// Body holds the block-level content of the document. SectPr, when present,
// is the final section's properties and sits after the last element.
type Body struct {
	Elements []BodyElement
	SectPr   *SectionProperties
}

// ParseDocument decodes a document.xml part, preserving unrecognized
// elements verbatim.
func ParseDocument(data []byte) (*Document, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "document" {
			return nil, fmt.Errorf("parsing document: unexpected root element %q", start.Name.Local)
		}
		doc := &Document{attrs: prefixedAttrs(start.Attr)}
		if err := doc.parseChildren(d); err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
		if doc.Body == nil {
			return nil, fmt.Errorf("parsing document: no body element")
		}
		return doc, nil
	}
}

func (doc *Document) parseChildren(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "body" {
				body, err := parseBody(d)
				if err != nil {
					return err
				}
				doc.Body = body
			} else if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == "document" {
				return nil
			}
		}
	}
}

func parseBody(d *xml.Decoder) (*Body, error) {
	body := &Body{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p, err := parseParagraph(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, p)
			case "tbl":
				tbl, err := parseTable(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, tbl)
			case "sectPr":
				sp, err := parseSectionProperties(d, t)
				if err != nil {
					return nil, err
				}
				body.SectPr = sp
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return body, nil
			}
		}
	}
}

// XML serializes the document back to bytes suitable for word/document.xml.
func (doc *Document) XML() []byte {
	w := &writer{}
	w.raw(xmlHeader)
	w.start("w:document", doc.attrs...)
	w.start("w:body")
	for _, el := range doc.Body.Elements {
		el.write(w)
	}
	if doc.Body.SectPr != nil {
		doc.Body.SectPr.write(w)
	}
	w.end("w:body")
	w.end("w:document")
	return w.Bytes()
}

// Paragraphs returns the top-level paragraphs of the body, excluding
// paragraphs nested inside tables.
func (doc *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range doc.Body.Elements {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the top-level tables of the body.
func (doc *Document) Tables() []*Table {
	var out []*Table
	for _, el := range doc.Body.Elements {
		if t, ok := el.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Sections returns the document's section properties in document order.
// Mid-document section breaks live inside a paragraph's properties; the
// final section's properties close the body. A document always has at
// least one section, so a missing body sectPr is created on demand.
func (doc *Document) Sections() []*SectionProperties {
	var out []*SectionProperties
	for _, p := range doc.Paragraphs() {
		if p.props != nil {
			if sp := p.props.SectPr(); sp != nil {
				out = append(out, sp)
			}
		}
	}
	if doc.Body.SectPr == nil {
		doc.Body.SectPr = &SectionProperties{}
	}
	return append(out, doc.Body.SectPr)
}

// InsertParagraphs inserts paragraphs at the given index among the body's
// elements.
func (doc *Document) InsertParagraphs(idx int, paras ...*Paragraph) {
	els := make([]BodyElement, 0, len(doc.Body.Elements)+len(paras))
	els = append(els, doc.Body.Elements[:idx]...)
	for _, p := range paras {
		els = append(els, p)
	}
	els = append(els, doc.Body.Elements[idx:]...)
	doc.Body.Elements = els
}
