package reportfmt

import "strconv"

// applyPageSetup normalizes page geometry on every section of the document.
func (f *Formatter) applyPageSetup(pkg *docxPackage) error {
	ps := &f.cfg.PageSetup
	widthCm, heightCm := ps.PaperSize()
	orient := ""
	if widthCm > heightCm {
		orient = "landscape"
	}

	sections := pkg.doc.Sections()
	f.log.Debug("applying page setup to %d section(s)", len(sections))
	for _, sect := range sections {
		size := sect.PageSize()
		size.W = strconv.Itoa(CmToTwips(widthCm))
		size.H = strconv.Itoa(CmToTwips(heightCm))
		size.Orient = orient

		mar := sect.Margins()
		mar.Top = strconv.Itoa(CmToTwips(ps.MarginTopCm))
		mar.Right = strconv.Itoa(CmToTwips(ps.MarginRightCm))
		mar.Bottom = strconv.Itoa(CmToTwips(ps.MarginBottomCm))
		mar.Left = strconv.Itoa(CmToTwips(ps.MarginLeftCm))
		mar.Header = strconv.Itoa(CmToTwips(ps.HeaderDistanceCm))
		mar.Footer = strconv.Itoa(CmToTwips(ps.FooterDistanceCm))

		sect.SetTitlePage(ps.DifferentFirstPage)
	}
	return nil
}
