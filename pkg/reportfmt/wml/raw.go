package wml

import (
	"encoding/xml"
	"strings"
)

// namespacePrefix converts a namespace URI to its conventional prefix.
func namespacePrefix(uri string) string {
	prefixMap := map[string]string{
		// Core Word namespaces
		"http://schemas.openxmlformats.org/wordprocessingml/2006/main":        "w",
		"http://schemas.openxmlformats.org/officeDocument/2006/relationships": "r",
		"http://schemas.openxmlformats.org/officeDocument/2006/math":          "m",
		"http://www.w3.org/XML/1998/namespace":                                "xml",
		// Drawing namespaces
		"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
		"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
		"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
		"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
		// VML namespaces
		"urn:schemas-microsoft-com:vml":           "v",
		"urn:schemas-microsoft-com:office:office": "o",
		"urn:schemas-microsoft-com:office:word":   "w10",
		// Markup compatibility namespace
		"http://schemas.openxmlformats.org/markup-compatibility/2006": "mc",
		// Word processing shapes and canvas
		"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":  "wps",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas": "wpc",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":  "wpg",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":    "wpi",
		// Extended Word namespaces
		"http://schemas.microsoft.com/office/word/2010/wordml":               "w14",
		"http://schemas.microsoft.com/office/word/2012/wordml":               "w15",
		"http://schemas.microsoft.com/office/word/2015/wordml/symex":         "w16se",
		"http://schemas.microsoft.com/office/word/2016/wordml/cid":           "w16cid",
		"http://schemas.microsoft.com/office/word/2018/wordml":               "w16",
		"http://schemas.microsoft.com/office/word/2018/wordml/cex":           "w16cex",
		"http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash":   "w16sdtdh",
		"http://schemas.microsoft.com/office/word/2024/wordml/sdtformatlock": "w16sdtfl",
		"http://schemas.microsoft.com/office/word/2023/wordml/word16du":      "w16du",
		"http://schemas.microsoft.com/office/word/2006/wordml":               "wne",
		// Chart namespaces
		"http://schemas.microsoft.com/office/drawing/2014/chartex":       "cx",
		"http://schemas.microsoft.com/office/drawing/2015/9/8/chartex":   "cx1",
		"http://schemas.microsoft.com/office/drawing/2015/10/21/chartex": "cx2",
		"http://schemas.microsoft.com/office/drawing/2016/5/9/chartex":   "cx3",
		"http://schemas.microsoft.com/office/drawing/2016/5/10/chartex":  "cx4",
		"http://schemas.microsoft.com/office/drawing/2016/5/11/chartex":  "cx5",
		"http://schemas.microsoft.com/office/drawing/2016/5/12/chartex":  "cx6",
		"http://schemas.microsoft.com/office/drawing/2016/5/13/chartex":  "cx7",
		"http://schemas.microsoft.com/office/drawing/2016/5/14/chartex":  "cx8",
		// Other drawing namespaces
		"http://schemas.microsoft.com/office/drawing/2016/ink":     "aink",
		"http://schemas.microsoft.com/office/drawing/2017/model3d": "am3d",
		// Office extension namespaces
		"http://schemas.microsoft.com/office/2019/extlst": "oel",
	}

	if prefix, ok := prefixMap[uri]; ok {
		return prefix
	}
	// Unknown namespaces keep the URI; this should not happen for documents
	// Word produces.
	return uri
}

// captureRaw reads the element begun by start, including all nested content,
// and returns it as a RawXML node with namespace URIs converted back to
// prefixes.
func captureRaw(d *xml.Decoder, start xml.StartElement) (*RawXML, error) {
	var buf strings.Builder
	writeStartTag(&buf, start)

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			writeStartTag(&buf, t)
		case xml.EndElement:
			depth--
			buf.WriteString("</")
			buf.WriteString(prefixedName(t.Name))
			buf.WriteString(">")
		case xml.CharData:
			buf.WriteString(escapeText(string(t)))
		}
	}

	return &RawXML{Name: start.Name.Local, Content: buf.String()}, nil
}

func writeStartTag(buf *strings.Builder, t xml.StartElement) {
	buf.WriteString("<")
	buf.WriteString(prefixedName(t.Name))
	for _, a := range t.Attr {
		buf.WriteString(" ")
		buf.WriteString(prefixedName(a.Name))
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(a.Value))
		buf.WriteString(`"`)
	}
	buf.WriteString(">")
}
