package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gofooting/internal/footing"
	"github.com/alexiusacademia/gofooting/internal/report"
)

// Output is the JSON form of one batch result
type Output struct {
	ID         string   `json:"id"`
	Type       string   `json:"ftng_type"`
	Length     string   `json:"length,omitempty"`
	Width      string   `json:"width,omitempty"`
	Depth      string   `json:"depth,omitempty"`
	SteelAreas []string `json:"steel_areas,omitempty"`

	LengthFt       float64   `json:"length_ft,omitempty"`
	WidthFt        float64   `json:"width_ft,omitempty"`
	DepthFt        float64   `json:"depth_ft,omitempty"`
	SteelAreasIn2  []float64 `json:"steel_areas_in2,omitempty"`
	GoverningCheck string    `json:"governing_check,omitempty"`

	Error string `json:"error,omitempty"`
}

// NewOutput converts a result to its JSON form
func NewOutput(r Result) Output {
	out := Output{ID: r.Record.Label(r.Index), Type: r.Record.Type}
	if r.Err != nil {
		out.Error = r.Err.Error()
		return out
	}
	d := r.Design
	if d == nil {
		out.Error = "not designed"
		return out
	}

	if d.Kind == footing.Column {
		out.Length = report.FormatFeetInches(d.Length)
		out.LengthFt = d.Length
	}
	out.Width = report.FormatFeetInches(d.Width)
	out.WidthFt = d.Width
	out.Depth = report.FormatFeetInches(d.Depth)
	out.DepthFt = d.Depth
	for _, as := range d.SteelAreas {
		out.SteelAreas = append(out.SteelAreas, report.FormatSteel(as))
	}
	out.SteelAreasIn2 = d.SteelAreas
	if gov, ok := d.Checks.Governing(); ok {
		out.GoverningCheck = string(gov.Kind)
	}
	return out
}

// WriteJSON writes the results as an indented JSON array in input order
func WriteJSON(w io.Writer, results []Result) error {
	outs := make([]Output, len(results))
	for i, r := range results {
		outs[i] = NewOutput(r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(outs); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}

// WriteNarrations writes one <id>.txt narration per result into dir. A
// repeated id gets the record number appended so no narration is overwritten.
func WriteNarrations(dir string, results []Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating narration directory: %w", err)
	}
	used := make(map[string]bool, len(results))
	for _, r := range results {
		name := safeName(r.Record.Label(r.Index))
		for n := r.Index + 1; used[name]; n++ {
			name = fmt.Sprintf("%s-%d", safeName(r.Record.Label(r.Index)), n)
		}
		used[name] = true

		if err := writeNarration(filepath.Join(dir, name+".txt"), r); err != nil {
			return err
		}
	}
	return nil
}

func writeNarration(path string, r Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating narration: %w", err)
	}
	defer f.Close()

	in := r.Input
	if in.ID == "" {
		in.ID = r.Record.Label(r.Index)
	}
	if r.OK() {
		err = report.WriteNarrative(f, in, r.Design)
	} else {
		err = report.WriteFailure(f, in, r.Err)
	}
	if err != nil {
		return fmt.Errorf("writing narration %s: %w", path, err)
	}
	return f.Close()
}

// Sheets converts results to PDF design sheet pages
func Sheets(results []Result) []report.Sheet {
	sheets := make([]report.Sheet, len(results))
	for i, r := range results {
		in := r.Input
		if in.ID == "" {
			in.ID = r.Record.Label(r.Index)
		}
		sheets[i] = report.Sheet{Input: in, Design: r.Design, Err: r.Err}
	}
	return sheets
}

// safeName keeps an id usable as a file name
func safeName(id string) string {
	b := []byte(id)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			b[i] = '_'
		}
	}
	return string(b)
}
