package reportfmt

import (
	"archive/zip"
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"
)

const testWMLNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

const testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles ` + testWMLNamespaces + `>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/></w:style>
<w:style w:type="paragraph" w:styleId="Caption"><w:name w:val="caption"/></w:style>
</w:styles>`

// buildDOCX assembles a minimal DOCX archive in memory. bodyXML is the
// content of w:body, without the body element itself.
func buildDOCX(t *testing.T, bodyXML string, extraParts map[string]string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	write := func(name, content string) {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating part %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing part %s: %v", name, err)
		}
	}

	write("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`)
	write("_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`)
	write("word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`)
	write("word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document `+testWMLNamespaces+`><w:body>`+bodyXML+`</w:body></w:document>`)
	write("word/styles.xml", testStylesXML)

	for name, content := range extraParts {
		write(name, content)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// unzipParts reads an archive back into a part map.
func unzipParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reading output archive: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening part %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading part %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

const simpleBody = `<w:p><w:r><w:t>Hello</w:t></w:r></w:p><w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`

func formatBody(t *testing.T, cfg ReportConfig, bodyXML string) map[string]string {
	t.Helper()
	input := buildDOCX(t, bodyXML, nil)
	out, err := New(cfg, WithLogger(NewLogger(nil, LogOff))).FormatBytes(input)
	if err != nil {
		t.Fatalf("FormatBytes() error = %v", err)
	}
	return unzipParts(t, out)
}

func TestFormatPageSetup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	parts := formatBody(t, cfg, simpleBody)

	doc := parts["word/document.xml"]
	if !strings.Contains(doc, `<w:pgSz w:w="11906" w:h="16838"/>`) {
		t.Errorf("expected A4 portrait page size, got:\n%s", doc)
	}
	if !strings.Contains(doc, `w:left="1984"`) || !strings.Contains(doc, `w:right="1134"`) {
		t.Errorf("expected configured margins, got:\n%s", doc)
	}
	if !strings.Contains(doc, `w:header="709"`) || !strings.Contains(doc, `w:footer="709"`) {
		t.Errorf("expected header/footer distances, got:\n%s", doc)
	}
	if strings.Contains(doc, "titlePg") {
		t.Errorf("titlePg should be absent when different_first_page is off:\n%s", doc)
	}
}

func TestFormatPageSetupLandscape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	cfg.PageSetup.Paper = "A4_LANDSCAPE"
	cfg.PageSetup.DifferentFirstPage = true
	parts := formatBody(t, cfg, simpleBody)

	doc := parts["word/document.xml"]
	if !strings.Contains(doc, `<w:pgSz w:w="16838" w:h="11906" w:orient="landscape"/>`) {
		t.Errorf("expected landscape page size, got:\n%s", doc)
	}
	if !strings.Contains(doc, "<w:titlePg/>") {
		t.Errorf("expected titlePg flag, got:\n%s", doc)
	}
}

func TestFormatStyles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	hex := "1f4e79"
	cfg.Heading1.ColorHex = &hex
	parts := formatBody(t, cfg, simpleBody)

	styles := parts["word/styles.xml"]
	if !strings.Contains(styles, `<w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:eastAsia="Times New Roman" w:cs="Times New Roman"/>`) {
		t.Errorf("expected four-script fonts in styles, got:\n%s", styles)
	}
	// Normal is 13pt, so 26 half-points with matching complex script size.
	if !strings.Contains(styles, `<w:sz w:val="26"/>`) || !strings.Contains(styles, `<w:szCs w:val="26"/>`) {
		t.Errorf("expected sz/szCs 26, got:\n%s", styles)
	}
	if !strings.Contains(styles, `<w:color w:val="1F4E79"/>`) {
		t.Errorf("expected uppercased heading1 color, got:\n%s", styles)
	}
	// Title has no first-line indent, Normal has 1cm.
	if !strings.Contains(styles, `w:firstLine="567"`) {
		t.Errorf("expected normal first-line indent, got:\n%s", styles)
	}
	if !strings.Contains(styles, `<w:jc w:val="both"/>`) || !strings.Contains(styles, `<w:jc w:val="center"/>`) {
		t.Errorf("expected justify and center alignments, got:\n%s", styles)
	}
	if !strings.Contains(styles, `<w:keepNext/>`) {
		t.Errorf("expected keepNext on headings, got:\n%s", styles)
	}
	// Heading 3 is absent from the style table and must not appear.
	if strings.Contains(styles, "Heading3") {
		t.Errorf("undefined style should not be created:\n%s", styles)
	}
}

func TestFormatStylesMalformedColorIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	bad := "red"
	cfg.Normal.ColorHex = &bad
	parts := formatBody(t, cfg, simpleBody)

	if strings.Contains(parts["word/styles.xml"], "<w:color") {
		t.Errorf("malformed color should be ignored:\n%s", parts["word/styles.xml"])
	}
}

func TestFormatPageNumbersCreatesFooter(t *testing.T) {
	cfg := DefaultConfig()
	parts := formatBody(t, cfg, simpleBody)

	doc := parts["word/document.xml"]
	if !strings.Contains(doc, `<w:pgNumType w:fmt="decimal" w:start="1"/>`) {
		t.Errorf("expected numbering restart on first section, got:\n%s", doc)
	}
	if !strings.Contains(doc, `<w:footerReference w:type="default" r:id="rId2"/>`) {
		t.Errorf("expected footer reference, got:\n%s", doc)
	}

	footer, ok := parts["word/footer1.xml"]
	if !ok {
		t.Fatalf("expected word/footer1.xml to be created, have parts: %v", partNames(parts))
	}
	if !strings.Contains(footer, `<w:jc w:val="center"/>`) {
		t.Errorf("expected centered footer paragraph, got:\n%s", footer)
	}
	if !strings.Contains(footer, `<w:t xml:space="preserve">Trang </w:t>`) {
		t.Errorf("expected literal run with preserved space, got:\n%s", footer)
	}
	if !strings.Contains(footer, `<w:fldSimple w:instr="PAGE">`) || !strings.Contains(footer, `<w:fldSimple w:instr="NUMPAGES">`) {
		t.Errorf("expected PAGE and NUMPAGES fields, got:\n%s", footer)
	}
	// Literal runs carry the page number font at 11pt.
	if !strings.Contains(footer, `<w:sz w:val="22"/>`) {
		t.Errorf("expected footer font size 22 half-points, got:\n%s", footer)
	}

	rels := parts["word/_rels/document.xml.rels"]
	if !strings.Contains(rels, `Target="footer1.xml"`) {
		t.Errorf("expected footer relationship, got:\n%s", rels)
	}
	types := parts["[Content_Types].xml"]
	if !strings.Contains(types, `PartName="/word/footer1.xml"`) {
		t.Errorf("expected footer content type override, got:\n%s", types)
	}
}

func TestFormatPageNumbersHeaderPosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Position = "HEADER_RIGHT"
	parts := formatBody(t, cfg, simpleBody)

	header, ok := parts["word/header1.xml"]
	if !ok {
		t.Fatalf("expected word/header1.xml to be created, have parts: %v", partNames(parts))
	}
	if !strings.Contains(header, `<w:jc w:val="right"/>`) {
		t.Errorf("expected right-aligned header paragraph, got:\n%s", header)
	}
	if !strings.Contains(parts["word/document.xml"], `<w:headerReference w:type="default"`) {
		t.Errorf("expected header reference in document")
	}
	if _, exists := parts["word/footer1.xml"]; exists {
		t.Error("no footer should be created for a header position")
	}
}

// Three sections: two paragraph-level breaks plus the body sectPr.
const threeSectionBody = `<w:p><w:pPr><w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr></w:pPr><w:r><w:t>one</w:t></w:r></w:p>` +
	`<w:p><w:pPr><w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr></w:pPr><w:r><w:t>two</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>three</w:t></w:r></w:p>` +
	`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgNumType w:fmt="decimal" w:start="7"/></w:sectPr>`

func TestFormatPageNumberRestartMatrix(t *testing.T) {
	tests := []struct {
		name       string
		restart    bool
		startAt    int
		wantStarts int
	}{
		{"continuous numbering", false, 1, 1},
		{"restart each section", true, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PageNumber.RestartEachSection = tt.restart
			cfg.PageNumber.StartAt = tt.startAt
			parts := formatBody(t, cfg, threeSectionBody)
			doc := parts["word/document.xml"]

			want := `w:start="` + strconv.Itoa(tt.startAt) + `"`
			if got := strings.Count(doc, want); got != tt.wantStarts {
				t.Errorf("expected %d sections with %s, got %d:\n%s", tt.wantStarts, want, got, doc)
			}
			if got := strings.Count(doc, `<w:pgNumType`); got != 3 {
				t.Errorf("expected pgNumType on all 3 sections, got %d", got)
			}
			// The stale start="7" on the body section must be gone either way.
			if strings.Contains(doc, `w:start="7"`) {
				t.Errorf("stale start attribute survived:\n%s", doc)
			}
		})
	}
}

func TestFormatTOC(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	cfg.TOC.InsertTOC = true
	cfg.TOC.HeadingLevels = "1-2"
	parts := formatBody(t, cfg, simpleBody)

	doc := parts["word/document.xml"]
	titleIdx := strings.Index(doc, "MỤC LỤC")
	fieldIdx := strings.Index(doc, `TOC \o &quot;1-2&quot; \h \z \u`)
	breakIdx := strings.Index(doc, `<w:br w:type="page"/>`)
	bodyIdx := strings.Index(doc, "Hello")

	if titleIdx < 0 || fieldIdx < 0 || breakIdx < 0 || bodyIdx < 0 {
		t.Fatalf("missing TOC block pieces (title %d, field %d, break %d, body %d):\n%s", titleIdx, fieldIdx, breakIdx, bodyIdx, doc)
	}
	if !(titleIdx < fieldIdx && fieldIdx < breakIdx && breakIdx < bodyIdx) {
		t.Errorf("TOC block out of order (title %d, field %d, break %d, body %d)", titleIdx, fieldIdx, breakIdx, bodyIdx)
	}
	// Title styling: bold, 14pt (28 half-points), centered.
	start := titleIdx - 300
	if start < 0 {
		start = 0
	}
	titleRegion := doc[start:titleIdx]
	if !strings.Contains(titleRegion, `<w:b/>`) || !strings.Contains(titleRegion, `<w:sz w:val="28"/>`) {
		t.Errorf("TOC title run not styled:\n%s", titleRegion)
	}
}

func TestFormatTOCDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	parts := formatBody(t, cfg, simpleBody)

	if strings.Contains(parts["word/document.xml"], "MỤC LỤC") {
		t.Error("TOC must not be inserted when disabled")
	}
}

const tableBody = `<w:p><w:r><w:t>outside</w:t></w:r></w:p>` +
	`<w:tbl><w:tr><w:tc>` +
	`<w:p><w:r><w:t>in cell</w:t></w:r></w:p>` +
	`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>nested</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
	`</w:tc></w:tr></w:tbl>` +
	`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr>`

func TestFormatSweepsTables(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	parts := formatBody(t, cfg, tableBody)
	doc := parts["word/document.xml"]

	// Three paragraphs (top level, cell, nested cell) each get one styled run.
	if got := strings.Count(doc, `<w:rFonts w:ascii="Times New Roman"`); got != 3 {
		t.Errorf("expected 3 runs with forced fonts, got %d:\n%s", got, doc)
	}
	if got := strings.Count(doc, `<w:spacing w:before="0" w:after="120" w:line="360" w:lineRule="auto"/>`); got != 3 {
		t.Errorf("expected 3 paragraphs with normal spacing, got %d:\n%s", got, doc)
	}
}

func TestFormatSweepsSkipTables(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	cfg.Processing.IncludeTables = false
	parts := formatBody(t, cfg, tableBody)
	doc := parts["word/document.xml"]

	if got := strings.Count(doc, `<w:rFonts w:ascii="Times New Roman"`); got != 1 {
		t.Errorf("expected only the top-level run to be forced, got %d:\n%s", got, doc)
	}
}

func TestFormatSweepsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	cfg.Processing.ForceRunFontEverywhere = false
	cfg.Processing.ForceParagraphFormatEverywhere = false
	parts := formatBody(t, cfg, simpleBody)
	doc := parts["word/document.xml"]

	if strings.Contains(doc, "<w:rPr>") {
		t.Errorf("runs must stay untouched when sweeps are off:\n%s", doc)
	}
}

func TestFormatHeadingBucketSweep(t *testing.T) {
	body := `<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Chapter</w:t></w:r></w:p>` +
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr>`
	cfg := DefaultConfig()
	cfg.PageNumber.Enabled = false
	parts := formatBody(t, cfg, body)
	doc := parts["word/document.xml"]

	// Heading 1 is 14pt with keepNext and no first-line indent.
	if !strings.Contains(doc, `<w:sz w:val="28"/>`) {
		t.Errorf("heading run should get 14pt, got:\n%s", doc)
	}
	if !strings.Contains(doc, `<w:keepNext/>`) {
		t.Errorf("heading paragraph should keep with next, got:\n%s", doc)
	}
	if strings.Contains(doc, "w:firstLine") {
		t.Errorf("heading paragraph should have no indent, got:\n%s", doc)
	}
}

func TestFormatPreservesUnknownParts(t *testing.T) {
	theme := `<?xml version="1.0"?><a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"/>`
	input := buildDOCX(t, simpleBody, map[string]string{"word/theme/theme1.xml": theme})

	out, err := New(DefaultConfig(), WithLogger(NewLogger(nil, LogOff))).FormatBytes(input)
	if err != nil {
		t.Fatalf("FormatBytes() error = %v", err)
	}
	parts := unzipParts(t, out)
	if parts["word/theme/theme1.xml"] != theme {
		t.Errorf("untouched part modified:\nwant %s\ngot  %s", theme, parts["word/theme/theme1.xml"])
	}
}

func TestFormatIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TOC.InsertTOC = false
	f := New(cfg, WithLogger(NewLogger(nil, LogOff)))

	input := buildDOCX(t, simpleBody, nil)
	once, err := f.FormatBytes(input)
	if err != nil {
		t.Fatalf("first pass error = %v", err)
	}
	twice, err := f.FormatBytes(once)
	if err != nil {
		t.Fatalf("second pass error = %v", err)
	}
	if parts1, parts2 := unzipParts(t, once), unzipParts(t, twice); parts1["word/document.xml"] != parts2["word/document.xml"] {
		t.Errorf("document.xml not stable across passes:\nfirst  %s\nsecond %s", parts1["word/document.xml"], parts2["word/document.xml"])
	}
}

func TestFormatInvalidInput(t *testing.T) {
	f := New(DefaultConfig(), WithLogger(NewLogger(nil, LogOff)))
	if _, err := f.FormatBytes([]byte("not a zip")); err == nil {
		t.Fatal("expected error for non-zip input")
	} else if !IsDocumentError(err) {
		t.Errorf("expected DocumentError, got %T", err)
	}

	// Archive without document.xml.
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	fw, _ := w.Create("word/styles.xml")
	fw.Write([]byte(testStylesXML))
	w.Close()
	if _, err := f.FormatBytes(buf.Bytes()); err == nil {
		t.Fatal("expected error for archive without document.xml")
	}
}

func partNames(parts map[string]string) []string {
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	return names
}

