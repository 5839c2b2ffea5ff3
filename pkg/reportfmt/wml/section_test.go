package wml

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
)

func parseOneSectPr(t *testing.T, inner string) *SectionProperties {
	t.Helper()
	d := xml.NewDecoder(bytes.NewReader([]byte("<w:sectPr " + nsDecls + ">" + inner + "</w:sectPr>")))
	tok, err := d.Token()
	if err != nil {
		t.Fatalf("reading sectPr start: %v", err)
	}
	s, err := parseSectionProperties(d, tok.(xml.StartElement))
	if err != nil {
		t.Fatalf("parseSectionProperties() error = %v", err)
	}
	return s
}

func TestSectionPageSetup(t *testing.T) {
	s := parseOneSectPr(t, `<w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>`)

	sz := s.PageSize()
	sz.W, sz.H, sz.Orient = "16838", "11906", "landscape"
	m := s.Margins()
	m.Top, m.Left = "1984", "1134"

	out := serialize(s)
	if !strings.Contains(out, `<w:pgSz w:w="16838" w:h="11906" w:orient="landscape"/>`) {
		t.Errorf("unexpected pgSz: %s", out)
	}
	// untouched margin attrs survive alongside the new values
	if !strings.Contains(out, `<w:pgMar w:top="1984" w:right="1440" w:bottom="1440" w:left="1134" w:header="720" w:footer="720" w:gutter="0"/>`) {
		t.Errorf("unexpected pgMar: %s", out)
	}
}

func TestSectionCreatesMissingChildren(t *testing.T) {
	s := parseOneSectPr(t, `<w:cols w:space="708"/><w:docGrid w:linePitch="360"/>`)

	s.PageSize().W = "11906"
	s.Margins().Top = "1984"

	out := serialize(s)
	szIdx := strings.Index(out, "<w:pgSz")
	marIdx := strings.Index(out, "<w:pgMar")
	colsIdx := strings.Index(out, "<w:cols")
	if szIdx < 0 || marIdx < 0 {
		t.Fatalf("children not created: %s", out)
	}
	if !(szIdx < marIdx && marIdx < colsIdx) {
		t.Errorf("schema order violated (pgSz < pgMar < cols): %s", out)
	}
	if !strings.Contains(out, `<w:docGrid w:linePitch="360"></w:docGrid>`) {
		t.Errorf("raw child lost: %s", out)
	}
}

func TestSectionTitlePage(t *testing.T) {
	s := parseOneSectPr(t, `<w:pgSz w:w="11906" w:h="16838"/>`)
	if s.TitlePage() {
		t.Error("TitlePage() true before set")
	}

	s.SetTitlePage(true)
	if !s.TitlePage() {
		t.Error("TitlePage() false after set")
	}
	if !strings.Contains(serialize(s), `<w:titlePg/>`) {
		t.Errorf("missing titlePg: %s", serialize(s))
	}

	s.SetTitlePage(false)
	if s.TitlePage() {
		t.Error("TitlePage() true after removal")
	}
	if strings.Contains(serialize(s), "titlePg") {
		t.Errorf("titlePg not removed: %s", serialize(s))
	}
}

func TestSectionTitlePageParsedOff(t *testing.T) {
	s := parseOneSectPr(t, `<w:titlePg w:val="0"/>`)
	if s.TitlePage() {
		t.Error(`TitlePage() true for w:val="0"`)
	}
}

func TestSectionPageNumbering(t *testing.T) {
	s := parseOneSectPr(t, `<w:pgSz w:w="11906" w:h="16838"/>`)
	if s.HasPageNumbering() {
		t.Error("HasPageNumbering() true before set")
	}

	pn := s.PageNumbering()
	pn.Fmt = "decimal"
	if !strings.Contains(serialize(s), `<w:pgNumType w:fmt="decimal"/>`) {
		t.Errorf("start attr should be omitted when empty: %s", serialize(s))
	}

	pn.Start = "5"
	if !strings.Contains(serialize(s), `<w:pgNumType w:fmt="decimal" w:start="5"/>`) {
		t.Errorf("unexpected pgNumType: %s", serialize(s))
	}
}

func TestSectionReferences(t *testing.T) {
	s := parseOneSectPr(t, `<w:headerReference w:type="default" r:id="rId4"/><w:pgSz w:w="11906" w:h="16838"/>`)

	if ref := s.Reference("headerReference", "default"); ref == nil || ref.ID != "rId4" {
		t.Fatalf("Reference(headerReference, default) = %v", ref)
	}
	if ref := s.Reference("footerReference", "default"); ref != nil {
		t.Fatalf("unexpected footer reference %v", ref)
	}

	s.AddReference("footerReference", "default", "rId9")
	if got := len(s.References("footerReference")); got != 1 {
		t.Fatalf("expected 1 footer reference, got %d", got)
	}

	// the new reference lands after the existing one, before pgSz
	out := serialize(s)
	hdrIdx := strings.Index(out, "<w:headerReference")
	ftrIdx := strings.Index(out, "<w:footerReference")
	szIdx := strings.Index(out, "<w:pgSz")
	if !(hdrIdx < ftrIdx && ftrIdx < szIdx) {
		t.Errorf("reference order wrong: %s", out)
	}
	if !strings.Contains(out, `<w:footerReference w:type="default" r:id="rId9"/>`) {
		t.Errorf("unexpected footer reference: %s", out)
	}
}

func TestSectionAddReferenceEmpty(t *testing.T) {
	s := parseOneSectPr(t, `<w:pgSz w:w="11906" w:h="16838"/>`)
	s.AddReference("footerReference", "default", "rId2")

	out := serialize(s)
	if !strings.HasPrefix(out, `<w:sectPr `) {
		t.Fatalf("unexpected prefix: %s", out)
	}
	ftrIdx := strings.Index(out, "<w:footerReference")
	szIdx := strings.Index(out, "<w:pgSz")
	if !(ftrIdx >= 0 && ftrIdx < szIdx) {
		t.Errorf("reference must come first: %s", out)
	}
}
