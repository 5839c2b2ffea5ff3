package reportfmt

import (
	"strconv"
	"strings"

	"github.com/JIANGVUX/format-file-word/pkg/reportfmt/wml"
)

// Canonical style names looked up in the document's style table, per bucket.
var bucketStyleNames = map[StyleBucket]string{
	BucketNormal:   "Normal",
	BucketTitle:    "Title",
	BucketHeading1: "Heading 1",
	BucketHeading2: "Heading 2",
	BucketHeading3: "Heading 3",
	BucketCaption:  "Caption",
}

// applyStyles rewrites the six named style definitions in styles.xml.
// Styles the document does not define are skipped.
func (f *Formatter) applyStyles(pkg *docxPackage) error {
	if pkg.styles == nil {
		f.log.Debug("document has no styles part, skipping style stage")
		return nil
	}
	for _, bucket := range []StyleBucket{
		BucketNormal, BucketTitle, BucketHeading1,
		BucketHeading2, BucketHeading3, BucketCaption,
	} {
		name := bucketStyleNames[bucket]
		def := pkg.styles.ByName(name)
		if def == nil {
			f.log.Debug("style %q not defined in document, skipping", name)
			continue
		}
		scfg := f.cfg.Styles()[bucket]
		applyStyleToDefinition(def, scfg)
	}
	return nil
}

func applyStyleToDefinition(def *wml.StyleDef, scfg *StyleConfig) {
	rpr := def.RunProps()
	rpr.Fonts().SetAll(scfg.FontName)
	rpr.SetSize(PointsToHalfPoints(scfg.FontSizePt))
	rpr.SetFlag("b", scfg.Bold)
	rpr.SetFlag("i", scfg.Italic)
	if scfg.ColorHex != nil {
		if hex, ok := normalizeColorHex(*scfg.ColorHex); ok {
			rpr.SetColor(hex)
		}
	}
	applyParagraphFormat(def.ParaProps(), scfg)
}

// applyParagraphFormat writes the paragraph-level properties of a style
// config onto a pPr, whether it belongs to a style definition or to a
// concrete paragraph.
func applyParagraphFormat(ppr *wml.ParagraphProperties, scfg *StyleConfig) {
	sp := ppr.Spacing()
	sp.Before = strconv.Itoa(PointsToTwips(scfg.SpaceBeforePt))
	sp.After = strconv.Itoa(PointsToTwips(scfg.SpaceAfterPt))
	sp.Line = strconv.Itoa(LineSpacingToTwips(scfg.LineSpacing))
	sp.LineRule = "auto"

	if scfg.FirstLineIndentCm == 0 {
		ppr.SetFirstLineIndent(0)
	} else {
		ppr.SetFirstLineIndent(CmToTwips(scfg.FirstLineIndentCm))
	}

	ppr.SetAlignment(jcValue(scfg.Alignment, "both"))
	ppr.SetFlag("keepNext", scfg.KeepWithNext)
	ppr.SetFlag("pageBreakBefore", scfg.PageBreakBefore)
}

// jcValue maps a config alignment name to a w:jc value, case-insensitively,
// with a fallback for unrecognized names.
func jcValue(name, fallback string) string {
	if val, ok := alignmentMap[strings.ToUpper(name)]; ok {
		return val
	}
	return fallback
}

// normalizeColorHex accepts a 6-digit hex color, with or without a leading
// '#', and returns it uppercased. Anything else is rejected.
func normalizeColorHex(s string) (string, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return "", false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return "", false
		}
	}
	return strings.ToUpper(s), true
}
