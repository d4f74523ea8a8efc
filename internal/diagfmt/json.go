package diagfmt

import (
	"encoding/json"
	"io"

	"lumen/internal/diag"
)

// jsonDiag is the machine-readable shape. Field names are part of the
// stable contract; chain holds the full explanation outermost-first.
type jsonDiag struct {
	File     string   `json:"file,omitempty"`
	Start    int      `json:"start"`
	Length   int      `json:"length"`
	Category string   `json:"category"`
	Code     uint32   `json:"code"`
	Message  string   `json:"message"`
	Chain    []string `json:"chain,omitempty"`
	Line     uint32   `json:"line,omitempty"`
	Col      uint32   `json:"col,omitempty"`
}

// JSON writes the bag as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	out := make([]jsonDiag, 0, bag.Len())
	for _, d := range bag.Items() {
		jd := jsonDiag{
			Start:    d.Start,
			Length:   d.Length,
			Category: d.Category.String(),
			Code:     uint32(d.Code),
			Message:  d.Message,
		}
		if d.File != nil {
			jd.File = d.File.Path
			if opts.IncludePositions {
				pos := d.File.LineCol(d.Start)
				jd.Line = pos.Line
				jd.Col = pos.Col
			}
		}
		if d.Chain != nil {
			for link := d.Chain; link != nil; link = link.Next {
				jd.Chain = append(jd.Chain, link.Message)
			}
		}
		out = append(out, jd)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
