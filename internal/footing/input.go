package footing

import (
	"fmt"

	"github.com/alexiusacademia/gofooting/internal/aci"
)

// Kind selects the footing variant
type Kind string

const (
	Column Kind = "column"
	Wall   Kind = "wall"
)

// Wall types; the critical section for moment depends on the wall material
const (
	ConcreteWall = "concrete"
	MasonryWall  = "masonry"
)

// DesignInput is a fully resolved footing design record. Optional fields of
// the raw record must be defaulted before a DesignInput is built.
type DesignInput struct {
	ID   string
	Kind Kind

	// Supported member
	Width    float64 // in, column side or wall thickness
	WallType string  // concrete or masonry, walls only

	// Loading (kips for columns, kips/ft for walls)
	DeadLoad float64
	LiveLoad float64

	// Materials
	ConcreteType       string  // nw, slw or lw
	ConcreteUnitWeight float64 // pcf
	EarthUnitWeight    float64 // pcf
	Fc                 float64 // psi
	Grade              float64 // ksi

	// Site
	AllowableSoilPressure float64 // psf
	BottomOfFooting       float64 // ft below grade

	// Column constraints
	WidthRestriction *float64 // ft, nil when unrestricted
	ColumnLocation   string   // interior, edge or corner

	// Rounding grain of the final dimensions
	Precision float64 // ft
}

// Loads returns the unfactored loads of the record
func (in DesignInput) Loads() aci.Loads {
	return aci.Loads{Dead: in.DeadLoad, Live: in.LiveLoad}
}

// Restricted reports whether a width restriction applies
func (in DesignInput) Restricted() bool {
	return in.Kind == Column && in.WidthRestriction != nil
}

// Validate checks the record against the input contract
func (in DesignInput) Validate() error {
	switch in.Kind {
	case Column, Wall:
	default:
		return NewValidationError("ftng_type", fmt.Sprintf("unknown footing type %q, expected column or wall", in.Kind))
	}

	positive := []struct {
		field string
		value float64
	}{
		{"width", in.Width},
		{"f_c", in.Fc},
		{"grade", in.Grade},
		{"a_s_p", in.AllowableSoilPressure},
		{"w_c", in.ConcreteUnitWeight},
		{"precision", in.Precision},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return NewValidationError(p.field, fmt.Sprintf("must be positive, got %g", p.value))
		}
	}

	if in.DeadLoad < 0 || in.LiveLoad < 0 {
		return NewValidationError("dead_load", "loads cannot be negative")
	}
	if in.DeadLoad+in.LiveLoad <= 0 {
		return NewValidationError("dead_load", "footing must carry a load")
	}
	if in.EarthUnitWeight < 0 {
		return NewValidationError("w_e", fmt.Sprintf("cannot be negative, got %g", in.EarthUnitWeight))
	}
	if in.BottomOfFooting < 0 {
		return NewValidationError("bottom_of_ftng", fmt.Sprintf("cannot be negative, got %g", in.BottomOfFooting))
	}
	if _, err := aci.Lambda(in.ConcreteType); err != nil {
		return NewValidationError("conc_type", err.Error())
	}

	if in.Kind == Wall {
		switch in.WallType {
		case ConcreteWall, MasonryWall:
		case "":
			return NewValidationError("wall_type", "required for wall footings")
		default:
			return NewValidationError("wall_type", fmt.Sprintf("unknown wall type %q, expected concrete or masonry", in.WallType))
		}
		return nil
	}

	if _, err := aci.Alpha(in.ColumnLocation); err != nil {
		return NewValidationError("col_loc", err.Error())
	}
	if in.WidthRestriction != nil && !(*in.WidthRestriction > 0) {
		return NewValidationError("width_restriction", fmt.Sprintf("must be positive, got %g", *in.WidthRestriction))
	}
	return nil
}

// ValidationError represents an input contract violation
type ValidationError struct {
	Field string
	msg   string
}

// NewValidationError reports a contract violation on the named record field
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, msg: msg}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.msg)
}
