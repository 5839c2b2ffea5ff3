package reportfmt

import "strings"

// Field tokens recognized in page number templates.
const (
	TokenPage     = "{PAGE}"
	TokenNumPages = "{NUMPAGES}"
)

// SplitTemplate splits a page number template into literal segments and
// field tokens, scanning left to right. Field tokens are returned verbatim
// so callers can distinguish them from literal text; empty literal segments
// are dropped.
//
//	SplitTemplate("Trang {PAGE}/{NUMPAGES}")
//	  => ["Trang ", "{PAGE}", "/", "{NUMPAGES}"]
func SplitTemplate(template string) []string {
	var parts []string
	for len(template) > 0 {
		pageIdx := strings.Index(template, TokenPage)
		numIdx := strings.Index(template, TokenNumPages)
		idx, token := pageIdx, TokenPage
		if pageIdx < 0 || (numIdx >= 0 && numIdx < pageIdx) {
			idx, token = numIdx, TokenNumPages
		}
		if idx < 0 {
			parts = append(parts, template)
			break
		}
		if idx > 0 {
			parts = append(parts, template[:idx])
		}
		parts = append(parts, token)
		template = template[idx+len(token):]
	}
	return parts
}

// IsFieldToken reports whether a segment returned by SplitTemplate is a
// field token rather than literal text.
func IsFieldToken(s string) bool {
	return s == TokenPage || s == TokenNumPages
}
