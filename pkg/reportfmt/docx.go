package reportfmt

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JIANGVUX/format-file-word/pkg/reportfmt/wml"
)

const (
	documentPartName     = "word/document.xml"
	stylesPartName       = "word/styles.xml"
	documentRelsPartName = "word/_rels/document.xml.rels"
	contentTypesPartName = "[Content_Types].xml"

	headerRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	footerRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"

	headerContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	footerContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
)

// docxPackage is an open DOCX archive. Parts the formatter never touches are
// copied back byte for byte on save.
type docxPackage struct {
	parts map[string][]byte
	order []string // original zip entry order, new parts appended

	doc    *wml.Document
	styles *wml.Styles

	// header and footer parts parsed on demand, keyed by part name
	headerFooters map[string]*wml.HeaderFooter

	rels      *relationships
	types     *contentTypes
	relsDirty bool
}

// openPackage reads a DOCX archive and parses the parts the formatter works
// on. The styles part is optional; document.xml is not.
func openPackage(r io.Reader) (*docxPackage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	pkg := &docxPackage{
		parts:         make(map[string][]byte, len(zr.File)),
		headerFooters: make(map[string]*wml.HeaderFooter),
	}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}
		pkg.parts[f.Name] = content
		pkg.order = append(pkg.order, f.Name)
	}

	docXML, ok := pkg.parts[documentPartName]
	if !ok {
		return nil, fmt.Errorf("missing %s", documentPartName)
	}
	if pkg.doc, err = wml.ParseDocument(docXML); err != nil {
		return nil, err
	}
	if stylesXML, ok := pkg.parts[stylesPartName]; ok {
		if pkg.styles, err = wml.ParseStyles(stylesXML); err != nil {
			return nil, err
		}
	}
	if relsXML, ok := pkg.parts[documentRelsPartName]; ok {
		pkg.rels = &relationships{}
		if err := xml.Unmarshal(relsXML, pkg.rels); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", documentRelsPartName, err)
		}
	} else {
		pkg.rels = &relationships{Xmlns: "http://schemas.openxmlformats.org/package/2006/relationships"}
		pkg.order = append(pkg.order, documentRelsPartName)
		pkg.relsDirty = true
	}
	if typesXML, ok := pkg.parts[contentTypesPartName]; ok {
		pkg.types = &contentTypes{}
		if err := xml.Unmarshal(typesXML, pkg.types); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", contentTypesPartName, err)
		}
	}
	return pkg, nil
}

// headerFooter returns the parsed header or footer part behind a relationship
// ID, parsing it on first use.
func (p *docxPackage) headerFooter(relID string) (*wml.HeaderFooter, error) {
	rel := p.rels.byID(relID)
	if rel == nil {
		return nil, fmt.Errorf("no relationship %q in %s", relID, documentRelsPartName)
	}
	partName := "word/" + strings.TrimPrefix(rel.Target, "/word/")
	if hf, ok := p.headerFooters[partName]; ok {
		return hf, nil
	}
	data, ok := p.parts[partName]
	if !ok {
		return nil, fmt.Errorf("relationship %q points at missing part %s", relID, partName)
	}
	hf, err := wml.ParseHeaderFooter(data)
	if err != nil {
		return nil, err
	}
	p.headerFooters[partName] = hf
	return hf, nil
}

// addHeaderFooterPart creates an empty header or footer part, registers its
// relationship and content type, and returns the part with its new
// relationship ID.
func (p *docxPackage) addHeaderFooterPart(footer bool) (*wml.HeaderFooter, string) {
	base, relType, cType := "header", headerRelType, headerContentType
	newPart := wml.NewHeader
	if footer {
		base, relType, cType = "footer", footerRelType, footerContentType
		newPart = wml.NewFooter
	}

	n := 1
	for {
		if _, exists := p.parts["word/"+base+strconv.Itoa(n)+".xml"]; !exists {
			break
		}
		n++
	}
	partName := "word/" + base + strconv.Itoa(n) + ".xml"

	hf := newPart()
	p.headerFooters[partName] = hf
	p.parts[partName] = nil // serialized on save
	p.order = append(p.order, partName)

	relID := p.rels.add(relType, base+strconv.Itoa(n)+".xml")
	p.relsDirty = true
	if p.types != nil {
		p.types.addOverride("/"+partName, cType)
	}
	return hf, relID
}

// save serializes the modified parts and writes the archive back out.
func (p *docxPackage) save(w io.Writer) error {
	p.parts[documentPartName] = p.doc.XML()
	if p.styles != nil {
		p.parts[stylesPartName] = p.styles.XML()
	}
	for partName, hf := range p.headerFooters {
		p.parts[partName] = hf.XML()
	}
	if p.relsDirty {
		relsXML, err := xml.Marshal(p.rels)
		if err != nil {
			return fmt.Errorf("encoding relationships: %w", err)
		}
		p.parts[documentRelsPartName] = append([]byte(xml.Header), relsXML...)
		if p.types != nil {
			typesXML, err := xml.Marshal(p.types)
			if err != nil {
				return fmt.Errorf("encoding content types: %w", err)
			}
			p.parts[contentTypesPartName] = append([]byte(xml.Header), typesXML...)
		}
	}

	zw := zip.NewWriter(w)
	for _, name := range p.order {
		fw, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("writing part %s: %w", name, err)
		}
		if _, err := fw.Write(p.parts[name]); err != nil {
			return fmt.Errorf("writing part %s: %w", name, err)
		}
	}
	return zw.Close()
}

// relationships models a .rels part.
type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Rels    []relationship `xml:"Relationship"`
}

type relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

func (r *relationships) byID(id string) *relationship {
	for i := range r.Rels {
		if r.Rels[i].ID == id {
			return &r.Rels[i]
		}
	}
	return nil
}

// add registers a new relationship and returns its generated ID.
func (r *relationships) add(relType, target string) string {
	maxID := 0
	for _, rel := range r.Rels {
		if n, err := strconv.Atoi(strings.TrimPrefix(rel.ID, "rId")); err == nil && n > maxID {
			maxID = n
		}
	}
	id := "rId" + strconv.Itoa(maxID+1)
	r.Rels = append(r.Rels, relationship{ID: id, Type: relType, Target: target})
	return id
}

// contentTypes models the [Content_Types].xml part.
type contentTypes struct {
	XMLName   xml.Name     `xml:"Types"`
	Xmlns     string       `xml:"xmlns,attr"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (t *contentTypes) addOverride(partName, contentType string) {
	for _, o := range t.Overrides {
		if o.PartName == partName {
			return
		}
	}
	t.Overrides = append(t.Overrides, ctOverride{PartName: partName, ContentType: contentType})
}
