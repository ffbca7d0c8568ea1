package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alexiusacademia/gofooting/internal/footing"
)

func TestFormatFeetInches(t *testing.T) {
	tests := []struct {
		ft   float64
		want string
	}{
		{11.5, `11'-6"`},
		{7, `7'-0"`},
		{25.0 / 12, `2'-1"`},
		{106.0 / 12, `8'-10"`},
		{0.75, `0'-9"`},
		{11.99, `12'-0"`},
		{-1.5, `-1'-6"`},
	}
	for _, tt := range tests {
		if got := FormatFeetInches(tt.ft); got != tt.want {
			t.Errorf("FormatFeetInches(%v) = %s, want %s", tt.ft, got, tt.want)
		}
	}
}

func TestFormatSteelAreas(t *testing.T) {
	tests := []struct {
		areas []float64
		want  string
	}{
		{nil, ""},
		{[]float64{4.7301}, "4.73 in²"},
		{[]float64{6.0212, 6.21}, "6.02 in² (long), 6.21 in² (short)"},
	}
	for _, tt := range tests {
		if got := FormatSteelAreas(tt.areas); got != tt.want {
			t.Errorf("FormatSteelAreas(%v) = %q, want %q", tt.areas, got, tt.want)
		}
	}
}

func restrictedColumn() footing.DesignInput {
	r := 7.0
	return footing.DesignInput{
		ID:                    "C1",
		Kind:                  footing.Column,
		Width:                 18,
		DeadLoad:              175,
		LiveLoad:              175,
		ConcreteType:          "nw",
		ConcreteUnitWeight:    150,
		EarthUnitWeight:       100,
		Fc:                    3000,
		Grade:                 60,
		AllowableSoilPressure: 5000,
		BottomOfFooting:       4,
		WidthRestriction:      &r,
		ColumnLocation:        "interior",
		Precision:             0.5,
	}
}

func masonryWall() footing.DesignInput {
	return footing.DesignInput{
		ID:                    "W1",
		Kind:                  footing.Wall,
		Width:                 12,
		WallType:              footing.MasonryWall,
		DeadLoad:              10,
		LiveLoad:              12.5,
		ConcreteType:          "nw",
		ConcreteUnitWeight:    150,
		EarthUnitWeight:       100,
		Fc:                    3000,
		Grade:                 60,
		AllowableSoilPressure: 4000,
		BottomOfFooting:       5,
		Precision:             0.5,
	}
}

func TestWriteNarrative(t *testing.T) {
	tests := []struct {
		name  string
		in    footing.DesignInput
		wants []string
		not   []string
	}{
		{
			name: "restricted column",
			in:   restrictedColumn(),
			wants: []string{
				"FOOTING DESIGN FOR C1",
				"1.2D + 1.6L",
				"← GOVERNS",
				"Width held by restriction",
				"punching shear",
				"Long bars (along length)",
				"Short bars (along width)",
				`11'-6"`,
				`2'-1"`,
				"NG (",
			},
		},
		{
			name: "masonry wall",
			in:   masonryWall(),
			wants: []string{
				"FOOTING DESIGN FOR W1",
				"masonry",
				"Transverse steel per ft",
				`7'-0"`,
				"NG (one-way shear)",
			},
			not: []string{"punching shear", "Column width"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := footing.Size(tt.in)
			if err != nil {
				t.Fatalf("Size() error: %v", err)
			}
			var buf bytes.Buffer
			if err := WriteNarrative(&buf, tt.in, d); err != nil {
				t.Fatalf("WriteNarrative() error: %v", err)
			}
			out := buf.String()
			for _, w := range tt.wants {
				if !strings.Contains(out, w) {
					t.Errorf("narrative missing %q", w)
				}
			}
			for _, w := range tt.not {
				if strings.Contains(out, w) {
					t.Errorf("narrative should not contain %q", w)
				}
			}
		})
	}
}

func TestWriteFailure(t *testing.T) {
	in := restrictedColumn()
	r := 1.0
	in.WidthRestriction = &r

	_, err := footing.Size(in)
	if err == nil {
		t.Fatal("expected a sizing failure")
	}

	var buf bytes.Buffer
	if err := WriteFailure(&buf, in, err); err != nil {
		t.Fatalf("WriteFailure() error: %v", err)
	}
	out := buf.String()
	for _, w := range []string{"DESIGN FAILED", "Failing check:", "bearing"} {
		if !strings.Contains(out, w) {
			t.Errorf("failure narrative missing %q:\n%s", w, out)
		}
	}

	buf.Reset()
	if err := WriteFailure(&buf, footing.DesignInput{ID: "X"}, errors.New("invalid wall_type")); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "INPUT:") {
		t.Error("input section written for an unparsed record")
	}
}

func TestWritePDF(t *testing.T) {
	col := restrictedColumn()
	d, err := footing.Size(col)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	sheets := []Sheet{
		{Input: col, Design: d},
		{Input: footing.DesignInput{ID: "W2"}, Err: errors.New("invalid wall_type: required for wall footings")},
	}
	if err := WritePDF(&buf, "", sheets); err != nil {
		t.Fatalf("WritePDF() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF document")
	}
}
