package reportfmt

import (
	"strconv"
	"strings"

	"github.com/JIANGVUX/format-file-word/pkg/reportfmt/wml"
)

// applyPageNumbers configures page numbering on every section and writes the
// page number line into the section's header or footer. The first section
// always restarts at the configured start number so the document's numbering
// has a defined origin; later sections restart only when configured to.
func (f *Formatter) applyPageNumbers(pkg *docxPackage) error {
	pn := &f.cfg.PageNumber
	if !pn.Enabled {
		return nil
	}

	fmtVal, ok := pageFormatMap[strings.ToUpper(pn.NumberFormat)]
	if !ok {
		fmtVal = "decimal"
	}
	inFooter := strings.HasPrefix(pn.Position, "FOOTER")
	align := positionAlignment(pn.Position)

	sections := pkg.doc.Sections()
	for i, sect := range sections {
		num := sect.PageNumbering()
		num.Fmt = fmtVal
		if i == 0 || pn.RestartEachSection {
			num.Start = strconv.Itoa(pn.StartAt)
		} else {
			num.Start = ""
		}

		hf, err := f.resolveHeaderFooter(pkg, sections, i, inFooter)
		if err != nil {
			return err
		}
		f.writePageNumberLine(hf, align)
	}
	return nil
}

// positionAlignment extracts the w:jc value from a position name such as
// FOOTER_CENTER.
func positionAlignment(position string) string {
	_, suffix, found := strings.Cut(position, "_")
	if !found {
		return "center"
	}
	switch suffix {
	case "LEFT":
		return "left"
	case "RIGHT":
		return "right"
	default:
		return "center"
	}
}

// resolveHeaderFooter finds the header or footer part a section displays.
// Word inherits missing parts from earlier sections, so the search walks
// backwards; when no section up the chain has one, a fresh part is created
// and attached to this section.
func (f *Formatter) resolveHeaderFooter(pkg *docxPackage, sections []*wml.SectionProperties, idx int, footer bool) (*wml.HeaderFooter, error) {
	kind := "headerReference"
	if footer {
		kind = "footerReference"
	}
	for i := idx; i >= 0; i-- {
		if ref := sections[i].Reference(kind, "default"); ref != nil {
			return pkg.headerFooter(ref.ID)
		}
	}
	hf, relID := pkg.addHeaderFooterPart(footer)
	sections[idx].AddReference(kind, "default", relID)
	f.log.Debug("created %s part for section %d", kind, idx)
	return hf, nil
}

// writePageNumberLine replaces the part's first paragraph with the rendered
// template. Literal segments become styled text runs; {PAGE} and {NUMPAGES}
// become simple fields with a placeholder cached value.
func (f *Formatter) writePageNumberLine(hf *wml.HeaderFooter, align string) {
	pn := &f.cfg.PageNumber

	paras := hf.Paragraphs()
	var para *wml.Paragraph
	if len(paras) > 0 {
		para = paras[0]
	} else {
		para = hf.AddParagraph()
	}
	para.Clear()
	para.Props().SetAlignment(align)

	for _, part := range SplitTemplate(pn.Template) {
		switch part {
		case TokenPage:
			para.AddField("PAGE", "1")
		case TokenNumPages:
			para.AddField("NUMPAGES", "1")
		default:
			run := para.AddRun(part)
			rpr := run.Props()
			rpr.Fonts().SetAll(pn.FontName)
			rpr.SetSize(PointsToHalfPoints(pn.FontSizePt))
		}
	}
}
