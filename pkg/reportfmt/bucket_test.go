package reportfmt

import "testing"

func TestClassifyStyle(t *testing.T) {
	tests := []struct {
		name string
		want StyleBucket
	}{
		{"Normal", BucketNormal},
		{"Title", BucketTitle},
		{"title", BucketTitle},
		{"Subtitle", BucketNormal},
		{"Heading 1", BucketHeading1},
		{"heading 1", BucketHeading1},
		{"Heading 2", BucketHeading2},
		{"Heading 3", BucketHeading3},
		{"Heading 4", BucketNormal},
		{"My Heading 2 Variant", BucketHeading2},
		{"Caption", BucketCaption},
		{"Table Caption", BucketCaption},
		{"Body Text", BucketNormal},
		{"", BucketNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStyle(tt.name); got != tt.want {
				t.Errorf("ClassifyStyle(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
