package reportfmt

import "strings"

// StyleBucket names one of the six style groups the formatter configures.
type StyleBucket string

const (
	BucketNormal   StyleBucket = "normal"
	BucketTitle    StyleBucket = "title"
	BucketHeading1 StyleBucket = "heading1"
	BucketHeading2 StyleBucket = "heading2"
	BucketHeading3 StyleBucket = "heading3"
	BucketCaption  StyleBucket = "caption"
)

// ClassifyStyle maps a style's display name to its bucket. Matching is
// case-insensitive. Heading and caption styles match on substring so that
// localized variants like "heading 1 Char" still land in the right bucket;
// "Title" must match exactly to avoid catching "Subtitle". Anything else
// is treated as body text.
func ClassifyStyle(name string) StyleBucket {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "heading 1"):
		return BucketHeading1
	case strings.Contains(lower, "heading 2"):
		return BucketHeading2
	case strings.Contains(lower, "heading 3"):
		return BucketHeading3
	case lower == "title":
		return BucketTitle
	case strings.Contains(lower, "caption"):
		return BucketCaption
	default:
		return BucketNormal
	}
}
