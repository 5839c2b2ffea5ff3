// Package wml provides a WordprocessingML object model for DOCX parts.
//
// DOCX files are ZIP archives containing XML parts. This package parses the
// parts the formatter mutates (word/document.xml, word/styles.xml and
// header/footer parts) into typed structures while preserving everything it
// does not understand as raw XML, so that a parse/serialize round trip keeps
// the original markup intact.
//
// # Structure Organization
//
//   - types.go: core interfaces (BodyElement, ParagraphContent) and shared types
//   - document.go: Document and Body
//   - paragraph.go: Paragraph and paragraph properties
//   - run.go: Run, Text, Break and run properties
//   - field.go: SimpleField (w:fldSimple)
//   - table.go: Table, TableRow, TableCell (cells may nest tables)
//   - section.go: SectionProperties (w:sectPr) with typed page geometry
//   - styles.go: the styles.xml style table
//   - header.go: header and footer parts (w:hdr / w:ftr)
//
// # Key Concepts
//
// Containers keep their children as an ordered list. Children the formatter
// understands (spacing, fonts, page size, ...) are parsed into typed nodes
// that can be mutated in place; unknown children are captured verbatim and
// written back in their original position. Inserting a typed child that was
// not present follows the schema child order of the containing element, so
// the produced XML stays valid for Word.
//
// Serialization is hand-written rather than driven by encoding/xml struct
// marshaling: WordprocessingML requires prefixed element and attribute names
// (w:p, w:val, r:id) and self-closing property elements, both of which are
// awkward to produce through the encoder.
package wml
