package reportfmt

// WordprocessingML measures page geometry in twentieths of a point (twips)
// and font sizes in half-points. Conversions round half away from zero on
// the positive axis, matching what word processors emit.

// CmToTwips converts centimeters to twips.
func CmToTwips(cm float64) int {
	return int(cm*1440.0/2.54 + 0.5)
}

// PointsToTwips converts points to twips.
func PointsToTwips(pt float64) int {
	return int(pt*20.0 + 0.5)
}

// PointsToHalfPoints converts a font size in points to half-points.
func PointsToHalfPoints(pt float64) int {
	return int(pt*2.0 + 0.5)
}

// LineSpacingToTwips converts a line spacing multiple (1.0, 1.5, 2.0) to
// the w:line value used with lineRule="auto", in 240ths of a line.
func LineSpacingToTwips(multiple float64) int {
	return int(multiple*240.0 + 0.5)
}
