package reportfmt

import (
	"fmt"

	"github.com/JIANGVUX/format-file-word/pkg/reportfmt/wml"
)

// insertTOC places a table of contents block at the start of the document:
// a title paragraph, a TOC field paragraph, and a page break. The field
// carries no cached entries; Word populates it when the user updates fields.
func (f *Formatter) insertTOC(pkg *docxPackage) error {
	tc := &f.cfg.TOC
	if !tc.InsertTOC {
		return nil
	}
	f.log.Debug("inserting table of contents for heading levels %s", tc.HeadingLevels)

	title := &wml.Paragraph{}
	title.Props().SetAlignment(jcValue(tc.TitleAlignment, "center"))
	run := title.AddRun(tc.Title)
	run.Props().SetFlag("b", tc.TitleBold)
	run.Props().SetSize(PointsToHalfPoints(tc.TitleFontSizePt))
	run.Props().Fonts().SetAll(f.cfg.Normal.FontName)

	field := &wml.Paragraph{}
	field.AddField(fmt.Sprintf(`TOC \o "%s" \h \z \u`, tc.HeadingLevels), "1")

	pageBreak := &wml.Paragraph{}
	pageBreak.Content = append(pageBreak.Content, &wml.Run{
		Content: []wml.RunContent{&wml.Break{Type: "page"}},
	})

	pkg.doc.InsertParagraphs(0, title, field, pageBreak)
	return nil
}
