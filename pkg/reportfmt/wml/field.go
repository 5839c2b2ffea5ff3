package wml

import "encoding/xml"

// SimpleField is a w:fldSimple element: a field code with a cached display
// value. The viewing application recalculates the value on update; until
// then the cached runs are what the reader sees.
type SimpleField struct {
	Instr string
	Runs  []*Run
}

func (f *SimpleField) isParagraphContent() {}

func (f *SimpleField) write(w *writer) {
	w.start("w:fldSimple", attr{"w:instr", f.Instr})
	for _, r := range f.Runs {
		r.write(w)
	}
	w.end("w:fldSimple")
}

func parseSimpleField(d *xml.Decoder, start xml.StartElement) (*SimpleField, error) {
	f := &SimpleField{Instr: attrValue(start.Attr, "instr")}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "r":
				r, err := parseRun(d, t)
				if err != nil {
					return nil, err
				}
				f.Runs = append(f.Runs, r)
			default:
				if err := d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "fldSimple" {
				return f, nil
			}
		}
	}
}
