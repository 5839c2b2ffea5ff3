package wml

import (
	"strings"
	"testing"
)

const testStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles ` + nsDecls + `>
<w:docDefaults><w:rPrDefault><w:rPr><w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:rPr><w:b/></w:rPr></w:style>
<w:style w:type="character" w:styleId="Emphasis"><w:name w:val="Emphasis"/></w:style>
</w:styles>`

func parseTestStyles(t *testing.T) *Styles {
	t.Helper()
	st, err := ParseStyles([]byte(testStyles))
	if err != nil {
		t.Fatalf("ParseStyles() error = %v", err)
	}
	return st
}

func TestParseStyles(t *testing.T) {
	st := parseTestStyles(t)
	if got := len(st.All()); got != 3 {
		t.Errorf("expected 3 style definitions, got %d", got)
	}
	def := st.ByID("Heading1")
	if def == nil {
		t.Fatal("ByID(Heading1) returned nil")
	}
	if def.Name() != "heading 1" || def.Type != "paragraph" {
		t.Errorf("unexpected style: name %q type %q", def.Name(), def.Type)
	}
	if st.ByID("Normal").Default != "1" {
		t.Error("default attribute lost")
	}
}

func TestStylesByName(t *testing.T) {
	st := parseTestStyles(t)
	tests := []struct {
		lookup string
		wantID string
	}{
		{"Normal", "Normal"},
		{"normal", "Normal"},
		{"Heading 1", "Heading1"}, // display name differs in case from w:name
		{"HEADING 1", "Heading1"},
		{"Heading 2", ""},
	}
	for _, tt := range tests {
		def := st.ByName(tt.lookup)
		switch {
		case tt.wantID == "" && def != nil:
			t.Errorf("ByName(%q) = %q, want nil", tt.lookup, def.StyleID)
		case tt.wantID != "" && (def == nil || def.StyleID != tt.wantID):
			t.Errorf("ByName(%q) = %v, want %q", tt.lookup, def, tt.wantID)
		}
	}
}

func TestStyleDefPropsCreation(t *testing.T) {
	st := parseTestStyles(t)
	def := st.ByID("Normal")

	// rPr then pPr on a style that has neither; serialization must still put
	// pPr before rPr per the schema.
	def.RunProps().SetSize(26)
	def.ParaProps().SetAlignment("both")

	out := serialize(def)
	pPrIdx := strings.Index(out, "<w:pPr>")
	rPrIdx := strings.Index(out, "<w:rPr>")
	if pPrIdx < 0 || rPrIdx < 0 {
		t.Fatalf("missing property containers: %s", out)
	}
	if pPrIdx > rPrIdx {
		t.Errorf("pPr must precede rPr: %s", out)
	}
	if !strings.Contains(out, `<w:qFormat></w:qFormat>`) {
		t.Errorf("raw child lost: %s", out)
	}
}

func TestStylesRoundTrip(t *testing.T) {
	st := parseTestStyles(t)
	out := string(st.XML())

	for _, fragment := range []string{
		`<w:docDefaults><w:rPrDefault><w:rPr><w:sz w:val="22"></w:sz></w:rPr></w:rPrDefault></w:docDefaults>`,
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">`,
		`<w:basedOn w:val="Normal"></w:basedOn>`,
		`<w:style w:type="character" w:styleId="Emphasis">`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("round trip lost %q:\n%s", fragment, out)
		}
	}
}
