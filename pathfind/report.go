package pathfind

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"
)

// Report is the JSON summary of a Comparison.
type Report struct {
	RunID  string      `json:"run_id"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	From   Point       `json:"from"`
	To     Point       `json:"to"`
	Length int         `json:"length"`
	Runs   []RunReport `json:"runs"`
}

// RunReport summarises one algorithm's run.
type RunReport struct {
	Algorithm string  `json:"algorithm"`
	Length    int     `json:"length"`
	Visited   int     `json:"visited"`
	Path      []Point `json:"path"`
}

// NewReport summarises c under a fresh random run ID.
func NewReport(c *Comparison) Report {
	r := Report{
		RunID:  uuid.New().String(),
		Width:  c.Width,
		Height: c.Height,
		From:   c.From,
		To:     c.To,
		Length: c.Length,
	}
	for _, o := range []*Outcome{c.BFS, c.AStar} {
		if o == nil {
			continue
		}
		rr := RunReport{
			Algorithm: o.Algorithm.String(),
			Length:    o.Result.Length,
			Visited:   o.Result.Visited,
			Path:      make([]Point, len(o.Result.Path)),
		}
		for i, cell := range o.Result.Path {
			rr.Path[i] = PointOf(cell)
		}
		r.Runs = append(r.Runs, rr)
	}

	return r
}

// WriteJSON writes r as indented JSON followed by a newline.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
