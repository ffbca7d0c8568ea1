package batch

import (
	"fmt"

	"github.com/alexiusacademia/gofooting/internal/footing"
)

// Record is one raw footing design record as read from an input file.
// Optional fields are pointers so that an absent value can be told apart
// from an explicit zero.
type Record struct {
	ID   string `json:"id" yaml:"id" toml:"id"`
	Type string `json:"ftng_type" yaml:"ftng_type" toml:"ftng_type"`

	Width    *float64 `json:"width" yaml:"width" toml:"width"`             // in
	DeadLoad *float64 `json:"dead_load" yaml:"dead_load" toml:"dead_load"` // k or k/ft
	LiveLoad *float64 `json:"live_load" yaml:"live_load" toml:"live_load"` // k or k/ft
	Fc       *float64 `json:"f_c" yaml:"f_c" toml:"f_c"`                   // psi
	Grade    *float64 `json:"grade" yaml:"grade" toml:"grade"`             // ksi
	ASP      *float64 `json:"a_s_p" yaml:"a_s_p" toml:"a_s_p"`             // psf

	ConcreteType *string  `json:"conc_type,omitempty" yaml:"conc_type,omitempty" toml:"conc_type,omitempty"`
	Wc           *float64 `json:"w_c,omitempty" yaml:"w_c,omitempty" toml:"w_c,omitempty"`                                  // pcf
	We           *float64 `json:"w_e,omitempty" yaml:"w_e,omitempty" toml:"w_e,omitempty"`                                  // pcf
	Bottom       *float64 `json:"bottom_of_ftng,omitempty" yaml:"bottom_of_ftng,omitempty" toml:"bottom_of_ftng,omitempty"` // ft
	Precision    *float64 `json:"precision,omitempty" yaml:"precision,omitempty" toml:"precision,omitempty"`                // ft

	WallType         *string  `json:"wall_type,omitempty" yaml:"wall_type,omitempty" toml:"wall_type,omitempty"`
	WidthRestriction *float64 `json:"width_restriction,omitempty" yaml:"width_restriction,omitempty" toml:"width_restriction,omitempty"` // ft
	ColumnLocation   *string  `json:"col_loc,omitempty" yaml:"col_loc,omitempty" toml:"col_loc,omitempty"`
}

// Normalize applies defaults to the optional fields of a record and returns
// a validated design input. The wall type is never defaulted.
func Normalize(rec Record, def Defaults) (footing.DesignInput, error) {
	required := []struct {
		field string
		value *float64
	}{
		{"width", rec.Width},
		{"dead_load", rec.DeadLoad},
		{"live_load", rec.LiveLoad},
		{"f_c", rec.Fc},
		{"grade", rec.Grade},
		{"a_s_p", rec.ASP},
	}
	for _, r := range required {
		if r.value == nil {
			return footing.DesignInput{}, footing.NewValidationError(r.field, "is required")
		}
	}
	if rec.Type == "" {
		return footing.DesignInput{}, footing.NewValidationError("ftng_type", "is required")
	}

	in := footing.DesignInput{
		ID:                    rec.ID,
		Kind:                  footing.Kind(rec.Type),
		Width:                 *rec.Width,
		DeadLoad:              *rec.DeadLoad,
		LiveLoad:              *rec.LiveLoad,
		Fc:                    *rec.Fc,
		Grade:                 *rec.Grade,
		AllowableSoilPressure: *rec.ASP,
		ConcreteType:          stringOr(rec.ConcreteType, def.ConcreteType),
		ConcreteUnitWeight:    floatOr(rec.Wc, def.ConcreteUnitWeight),
		EarthUnitWeight:       floatOr(rec.We, def.EarthUnitWeight),
		BottomOfFooting:       floatOr(rec.Bottom, def.BottomOfFooting),
		Precision:             floatOr(rec.Precision, def.Precision),
	}

	switch in.Kind {
	case footing.Wall:
		if rec.WallType != nil {
			in.WallType = *rec.WallType
		}
	case footing.Column:
		in.ColumnLocation = stringOr(rec.ColumnLocation, def.ColumnLocation)
		if rec.WidthRestriction != nil {
			r := *rec.WidthRestriction
			in.WidthRestriction = &r
		}
	}

	if err := in.Validate(); err != nil {
		return footing.DesignInput{}, err
	}
	return in, nil
}

// Label returns a name for the record suitable for logs and file names
func (r Record) Label(index int) string {
	if r.ID != "" {
		return r.ID
	}
	return fmt.Sprintf("record-%d", index+1)
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
