// Package reportfmt applies a uniform house format to Microsoft Word
// documents (DOCX).
//
// Given a report configuration, it normalizes the page setup of every
// section, rewrites the definitions of the core named styles, inserts
// page-number fields into headers or footers, optionally prepends a table
// of contents, and can sweep the document body to force paragraph spacing
// and run fonts onto every paragraph regardless of its style.
//
// # Quick Start
//
//	cfg := reportfmt.DefaultConfig()
//	f := reportfmt.New(cfg)
//	if err := f.FormatFile("draft.docx", "final.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// Configurations are plain structs with JSON and YAML tags, so overrides
// can come from files:
//
//	cfg, err := reportfmt.LoadConfigJSON(data)
//
// Overrides are merged deep into the defaults, key by key. Unknown keys
// are logged and ignored unless strict mode is enabled through the
// REPORTFMT_STRICT_MODE environment variable, in which case they are
// reported as a ValidationError.
//
// # Styles
//
// Six style slots are recognized: Normal, Title, Heading 1 through
// Heading 3, and Caption. Existing style definitions in the document are
// rewritten in place; documents that lack one of the styles keep working,
// the missing slot is skipped. Style lookup is by display name and ignores
// case, so the lowercase names Word stores for built-in styles
// ("heading 1") match their conventional spellings.
//
// # Fields
//
// Page numbers are inserted as fldSimple fields (PAGE, NUMPAGES) built
// from a template string such as "Page {PAGE}/{NUMPAGES}". Word refreshes
// the field values; the cached text written by this package is a
// placeholder.
//
// # Fidelity
//
// Only the parts the formatter touches are rewritten. Every other part of
// the archive, and every element inside a rewritten part that the
// formatter does not model, passes through byte for byte. Formatting the
// same document twice produces the same output.
//
// # Error Handling
//
// The package defines error types for the main failure classes:
//
//   - ConfigError: configuration files that cannot be read or decoded
//   - ValidationError: configuration values that fail validation
//   - DocumentError: documents that cannot be opened or written
//   - FormatError: failures inside a formatting stage
//
// Check them with the Is helpers or errors.As:
//
//	if reportfmt.IsValidationError(err) {
//	    // report the individual issues
//	}
package reportfmt
