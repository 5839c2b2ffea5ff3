package reportfmt

import "github.com/JIANGVUX/format-file-word/pkg/reportfmt/wml"

// forEachParagraph visits the document's top-level paragraphs and, when
// includeTables is set, every paragraph inside tables, recursing into
// nested tables.
func forEachParagraph(doc *wml.Document, includeTables bool, fn func(*wml.Paragraph)) {
	for _, p := range doc.Paragraphs() {
		fn(p)
	}
	if !includeTables {
		return
	}
	for _, tbl := range doc.Tables() {
		walkTable(tbl, fn)
	}
}

func walkTable(tbl *wml.Table, fn func(*wml.Paragraph)) {
	for _, row := range tbl.Rows() {
		for _, cell := range row.Cells() {
			for _, el := range cell.Content {
				switch v := el.(type) {
				case *wml.Paragraph:
					fn(v)
				case *wml.Table:
					walkTable(v, fn)
				}
			}
		}
	}
}

// styleNameIndex maps style IDs to display names so paragraph pStyle
// references can be classified by name.
func styleNameIndex(styles *wml.Styles) map[string]string {
	idx := make(map[string]string)
	if styles == nil {
		return idx
	}
	for _, def := range styles.All() {
		idx[def.StyleID] = def.Name()
	}
	return idx
}

// bucketFor resolves a paragraph's style bucket. Paragraphs without a
// pStyle, or whose style ID is missing from the style table, land in the
// normal bucket.
func bucketFor(p *wml.Paragraph, nameByID map[string]string) StyleBucket {
	return ClassifyStyle(nameByID[p.StyleID()])
}

// forceParagraphFormat rewrites direct paragraph formatting everywhere so
// that manual per-paragraph tweaks cannot survive the configured layout.
func (f *Formatter) forceParagraphFormat(pkg *docxPackage) error {
	if !f.cfg.Processing.ForceParagraphFormatEverywhere {
		f.log.Debug("paragraph format sweep disabled")
		return nil
	}
	nameByID := styleNameIndex(pkg.styles)
	styles := f.cfg.Styles()
	count := 0
	forEachParagraph(pkg.doc, f.cfg.Processing.IncludeTables, func(p *wml.Paragraph) {
		applyParagraphFormat(p.Props(), styles[bucketFor(p, nameByID)])
		count++
	})
	f.log.Debug("paragraph format forced on %d paragraph(s)", count)
	return nil
}

// forceRunFonts rewrites the font and size of every run so mixed fonts
// cannot survive the configured styles. Field result runs inside fldSimple
// elements are left alone.
func (f *Formatter) forceRunFonts(pkg *docxPackage) error {
	if !f.cfg.Processing.ForceRunFontEverywhere {
		f.log.Debug("run font sweep disabled")
		return nil
	}
	nameByID := styleNameIndex(pkg.styles)
	styles := f.cfg.Styles()
	count := 0
	forEachParagraph(pkg.doc, f.cfg.Processing.IncludeTables, func(p *wml.Paragraph) {
		scfg := styles[bucketFor(p, nameByID)]
		for _, r := range p.Runs() {
			rpr := r.Props()
			rpr.Fonts().SetAll(scfg.FontName)
			rpr.SetSize(PointsToHalfPoints(scfg.FontSizePt))
			count++
		}
	})
	f.log.Debug("run font forced on %d run(s)", count)
	return nil
}
