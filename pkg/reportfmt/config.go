package reportfmt

import (
	"github.com/go-playground/validator/v10"
)

// Paper presets map a preset name to page dimensions. Unknown preset names
// fall back to A4 portrait.
var paperPresets = map[string]struct{ WidthCm, HeightCm float64 }{
	"A4_PORTRAIT":  {21.0, 29.7},
	"A4_LANDSCAPE": {29.7, 21.0},
}

// Alignment names accepted in configs, mapped to WordprocessingML w:jc values.
var alignmentMap = map[string]string{
	"LEFT":    "left",
	"CENTER":  "center",
	"RIGHT":   "right",
	"JUSTIFY": "both",
}

// Page number format names mapped to w:pgNumType w:fmt values.
var pageFormatMap = map[string]string{
	"DECIMAL":      "decimal",
	"ROMAN_UPPER":  "upperRoman",
	"ROMAN_LOWER":  "lowerRoman",
	"LETTER_UPPER": "upperLetter",
	"LETTER_LOWER": "lowerLetter",
}

// StyleConfig describes one named style. Field names in JSON and YAML use
// the same snake_case keys as the original configuration files.
type StyleConfig struct {
	FontName          string  `json:"font_name" yaml:"font_name"`
	FontSizePt        float64 `json:"font_size_pt" yaml:"font_size_pt" validate:"min=6,max=72"`
	Bold              bool    `json:"bold" yaml:"bold"`
	Italic            bool    `json:"italic" yaml:"italic"`
	ColorHex          *string `json:"color_hex" yaml:"color_hex"`
	LineSpacing       float64 `json:"line_spacing" yaml:"line_spacing" validate:"min=0.5,max=5"`
	SpaceBeforePt     float64 `json:"space_before_pt" yaml:"space_before_pt" validate:"min=0,max=200"`
	SpaceAfterPt      float64 `json:"space_after_pt" yaml:"space_after_pt" validate:"min=0,max=200"`
	FirstLineIndentCm float64 `json:"first_line_indent_cm" yaml:"first_line_indent_cm" validate:"min=0,max=10"`
	Alignment         string  `json:"alignment" yaml:"alignment" validate:"oneof=LEFT CENTER RIGHT JUSTIFY"`
	KeepWithNext      bool    `json:"keep_with_next" yaml:"keep_with_next"`
	PageBreakBefore   bool    `json:"page_break_before" yaml:"page_break_before"`
}

// PageSetupConfig describes page geometry for every section.
type PageSetupConfig struct {
	Paper              string  `json:"paper" yaml:"paper"`
	MarginLeftCm       float64 `json:"margin_left_cm" yaml:"margin_left_cm" validate:"min=0.5,max=10"`
	MarginRightCm      float64 `json:"margin_right_cm" yaml:"margin_right_cm" validate:"min=0.5,max=10"`
	MarginTopCm        float64 `json:"margin_top_cm" yaml:"margin_top_cm" validate:"min=0.5,max=10"`
	MarginBottomCm     float64 `json:"margin_bottom_cm" yaml:"margin_bottom_cm" validate:"min=0.5,max=10"`
	HeaderDistanceCm   float64 `json:"header_distance_cm" yaml:"header_distance_cm" validate:"min=0,max=5"`
	FooterDistanceCm   float64 `json:"footer_distance_cm" yaml:"footer_distance_cm" validate:"min=0,max=5"`
	DifferentFirstPage bool    `json:"different_first_page" yaml:"different_first_page"`
}

// PageNumberConfig describes the page number line and where it goes.
type PageNumberConfig struct {
	Enabled            bool    `json:"enabled" yaml:"enabled"`
	Position           string  `json:"position" yaml:"position" validate:"oneof=FOOTER_LEFT FOOTER_CENTER FOOTER_RIGHT HEADER_LEFT HEADER_CENTER HEADER_RIGHT"`
	Template           string  `json:"template" yaml:"template"`
	StartAt            int     `json:"start_at" yaml:"start_at" validate:"min=1"`
	RestartEachSection bool    `json:"restart_each_section" yaml:"restart_each_section"`
	NumberFormat       string  `json:"number_format" yaml:"number_format" validate:"oneof=DECIMAL ROMAN_UPPER ROMAN_LOWER LETTER_UPPER LETTER_LOWER"`
	FontName           string  `json:"font_name" yaml:"font_name"`
	FontSizePt         float64 `json:"font_size_pt" yaml:"font_size_pt" validate:"min=6,max=72"`
}

// TocConfig describes the optional table of contents block.
type TocConfig struct {
	InsertTOC       bool    `json:"insert_toc" yaml:"insert_toc"`
	HeadingLevels   string  `json:"heading_levels" yaml:"heading_levels"`
	Title           string  `json:"title" yaml:"title"`
	TitleBold       bool    `json:"title_bold" yaml:"title_bold"`
	TitleFontSizePt float64 `json:"title_font_size_pt" yaml:"title_font_size_pt" validate:"min=6,max=72"`
	TitleAlignment  string  `json:"title_alignment" yaml:"title_alignment" validate:"oneof=LEFT CENTER RIGHT JUSTIFY"`
}

// ProcessingConfig toggles the force-override sweeps.
type ProcessingConfig struct {
	ForceRunFontEverywhere        bool `json:"force_run_font_everywhere" yaml:"force_run_font_everywhere"`
	ForceParagraphFormatEverywhere bool `json:"force_paragraph_format_everywhere" yaml:"force_paragraph_format_everywhere"`
	IncludeTables                 bool `json:"include_tables" yaml:"include_tables"`
}

// ReportConfig is the full formatting configuration.
type ReportConfig struct {
	Normal     StyleConfig      `json:"normal" yaml:"normal"`
	Title      StyleConfig      `json:"title" yaml:"title"`
	Heading1   StyleConfig      `json:"heading1" yaml:"heading1"`
	Heading2   StyleConfig      `json:"heading2" yaml:"heading2"`
	Heading3   StyleConfig      `json:"heading3" yaml:"heading3"`
	Caption    StyleConfig      `json:"caption" yaml:"caption"`
	PageSetup  PageSetupConfig  `json:"pagesetup" yaml:"pagesetup"`
	PageNumber PageNumberConfig `json:"pagenumber" yaml:"pagenumber"`
	TOC        TocConfig        `json:"toc" yaml:"toc"`
	Processing ProcessingConfig `json:"processing" yaml:"processing"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
// The defaults target Vietnamese report conventions (Times New Roman 13pt,
// 3.5cm binding margin, "Trang x/y" page numbers).
func DefaultConfig() ReportConfig {
	return ReportConfig{
		Normal: StyleConfig{
			FontName:          "Times New Roman",
			FontSizePt:        13.0,
			LineSpacing:       1.5,
			SpaceBeforePt:     0.0,
			SpaceAfterPt:      6.0,
			FirstLineIndentCm: 1.0,
			Alignment:         "JUSTIFY",
		},
		Title: StyleConfig{
			FontName:     "Times New Roman",
			FontSizePt:   16.0,
			Bold:         true,
			LineSpacing:  1.2,
			SpaceAfterPt: 12.0,
			Alignment:    "CENTER",
		},
		Heading1: StyleConfig{
			FontName:      "Times New Roman",
			FontSizePt:    14.0,
			Bold:          true,
			LineSpacing:   1.2,
			SpaceBeforePt: 12.0,
			SpaceAfterPt:  6.0,
			Alignment:     "LEFT",
			KeepWithNext:  true,
		},
		Heading2: StyleConfig{
			FontName:      "Times New Roman",
			FontSizePt:    13.0,
			Bold:          true,
			LineSpacing:   1.2,
			SpaceBeforePt: 10.0,
			SpaceAfterPt:  4.0,
			Alignment:     "LEFT",
			KeepWithNext:  true,
		},
		Heading3: StyleConfig{
			FontName:      "Times New Roman",
			FontSizePt:    13.0,
			Bold:          true,
			Italic:        true,
			LineSpacing:   1.2,
			SpaceBeforePt: 8.0,
			SpaceAfterPt:  4.0,
			Alignment:     "LEFT",
			KeepWithNext:  true,
		},
		Caption: StyleConfig{
			FontName:      "Times New Roman",
			FontSizePt:    11.0,
			Italic:        true,
			LineSpacing:   1.0,
			SpaceBeforePt: 6.0,
			SpaceAfterPt:  6.0,
			Alignment:     "CENTER",
		},
		PageSetup: PageSetupConfig{
			Paper:            "A4_PORTRAIT",
			MarginLeftCm:     3.5,
			MarginRightCm:    2.0,
			MarginTopCm:      2.0,
			MarginBottomCm:   2.0,
			HeaderDistanceCm: 1.25,
			FooterDistanceCm: 1.25,
		},
		PageNumber: PageNumberConfig{
			Enabled:      true,
			Position:     "FOOTER_CENTER",
			Template:     "Trang {PAGE}/{NUMPAGES}",
			StartAt:      1,
			NumberFormat: "DECIMAL",
			FontName:     "Times New Roman",
			FontSizePt:   11.0,
		},
		TOC: TocConfig{
			HeadingLevels:   "1-3",
			Title:           "MỤC LỤC",
			TitleBold:       true,
			TitleFontSizePt: 14.0,
			TitleAlignment:  "CENTER",
		},
		Processing: ProcessingConfig{
			ForceRunFontEverywhere:        true,
			ForceParagraphFormatEverywhere: true,
			IncludeTables:                 true,
		},
	}
}

// Styles returns the six named style configs keyed by bucket.
func (c *ReportConfig) Styles() map[StyleBucket]*StyleConfig {
	return map[StyleBucket]*StyleConfig{
		BucketNormal:   &c.Normal,
		BucketTitle:    &c.Title,
		BucketHeading1: &c.Heading1,
		BucketHeading2: &c.Heading2,
		BucketHeading3: &c.Heading3,
		BucketCaption:  &c.Caption,
	}
}

// PaperSize resolves the paper preset to dimensions in centimeters. Unknown
// presets fall back to A4 portrait.
func (c *PageSetupConfig) PaperSize() (widthCm, heightCm float64) {
	if preset, ok := paperPresets[c.Paper]; ok {
		return preset.WidthCm, preset.HeightCm
	}
	GetLogger().Warn("unknown paper preset %q, falling back to A4_PORTRAIT", c.Paper)
	fallback := paperPresets["A4_PORTRAIT"]
	return fallback.WidthCm, fallback.HeightCm
}

var validate = validator.New()

// Validate checks enum fields and value ranges. It is not called by Format
// itself; callers that accept external config files run it explicitly.
func (c *ReportConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewConfigError("", "validation failed", err)
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		msg := "failed '" + fe.Tag() + "' constraint"
		if fe.Param() != "" {
			msg = "failed '" + fe.Tag() + "=" + fe.Param() + "' constraint"
		}
		ve.Issues = append(ve.Issues, ValidationIssue{
			Field:   fe.Namespace(),
			Message: msg,
		})
	}
	return ve
}
