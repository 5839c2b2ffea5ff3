package wml

import "encoding/xml"

// Table represents a w:tbl element. Only rows are parsed; table properties
// and the grid round-trip as raw XML.
type Table struct {
	Content []node // *TableRow or *RawXML, in document order
}

func (t *Table) isBodyElement() {}

// Rows returns the table's rows.
func (t *Table) Rows() []*TableRow {
	var rows []*TableRow
	for _, c := range t.Content {
		if r, ok := c.(*TableRow); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

func (t *Table) write(w *writer) {
	w.start("w:tbl")
	for _, c := range t.Content {
		c.write(w)
	}
	w.end("w:tbl")
}

func parseTable(d *xml.Decoder, start xml.StartElement) (*Table, error) {
	tbl := &Table{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tr":
				row, err := parseTableRow(d, t)
				if err != nil {
					return nil, err
				}
				tbl.Content = append(tbl.Content, row)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				tbl.Content = append(tbl.Content, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "tbl" {
				return tbl, nil
			}
		}
	}
}

// TableRow represents a w:tr element.
type TableRow struct {
	Content []node // *TableCell or *RawXML, in document order
}

// Cells returns the row's cells.
func (r *TableRow) Cells() []*TableCell {
	var cells []*TableCell
	for _, c := range r.Content {
		if tc, ok := c.(*TableCell); ok {
			cells = append(cells, tc)
		}
	}
	return cells
}

func (r *TableRow) write(w *writer) {
	w.start("w:tr")
	for _, c := range r.Content {
		c.write(w)
	}
	w.end("w:tr")
}

func parseTableRow(d *xml.Decoder, start xml.StartElement) (*TableRow, error) {
	row := &TableRow{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tc":
				cell, err := parseTableCell(d, t)
				if err != nil {
					return nil, err
				}
				row.Content = append(row.Content, cell)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				row.Content = append(row.Content, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "tr" {
				return row, nil
			}
		}
	}
}

// TableCell represents a w:tc element. Cell content is body content:
// paragraphs, nested tables, and raw passthrough.
type TableCell struct {
	Content []BodyElement
}

// Paragraphs returns the cell's direct paragraphs.
func (c *TableCell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, e := range c.Content {
		if p, ok := e.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

func (c *TableCell) write(w *writer) {
	w.start("w:tc")
	for _, e := range c.Content {
		e.write(w)
	}
	w.end("w:tc")
}

func parseTableCell(d *xml.Decoder, start xml.StartElement) (*TableCell, error) {
	cell := &TableCell{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p, err := parseParagraph(d, t)
				if err != nil {
					return nil, err
				}
				cell.Content = append(cell.Content, p)
			case "tbl":
				nested, err := parseTable(d, t)
				if err != nil {
					return nil, err
				}
				cell.Content = append(cell.Content, nested)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				cell.Content = append(cell.Content, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "tc" {
				return cell, nil
			}
		}
	}
}
