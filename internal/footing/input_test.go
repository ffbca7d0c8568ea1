package footing

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		input  func() DesignInput
		modify func(*DesignInput)
		field  string
	}{
		{"valid column", columnInput, func(in *DesignInput) {}, ""},
		{"valid wall", wallInput, func(in *DesignInput) {}, ""},
		{"wall ignores column fields", wallInput, func(in *DesignInput) { in.WidthRestriction = ptr(-1) }, ""},
		{"unknown kind", columnInput, func(in *DesignInput) { in.Kind = "pier" }, "ftng_type"},
		{"missing wall type", wallInput, func(in *DesignInput) { in.WallType = "" }, "wall_type"},
		{"unknown wall type", wallInput, func(in *DesignInput) { in.WallType = "timber" }, "wall_type"},
		{"zero precision", columnInput, func(in *DesignInput) { in.Precision = 0 }, "precision"},
		{"negative precision", wallInput, func(in *DesignInput) { in.Precision = -0.5 }, "precision"},
		{"zero soil pressure", columnInput, func(in *DesignInput) { in.AllowableSoilPressure = 0 }, "a_s_p"},
		{"zero restriction", columnInput, func(in *DesignInput) { in.WidthRestriction = ptr(0) }, "width_restriction"},
		{"negative restriction", columnInput, func(in *DesignInput) { in.WidthRestriction = ptr(-7) }, "width_restriction"},
		{"zero width", columnInput, func(in *DesignInput) { in.Width = 0 }, "width"},
		{"zero f'c", columnInput, func(in *DesignInput) { in.Fc = 0 }, "f_c"},
		{"zero grade", columnInput, func(in *DesignInput) { in.Grade = 0 }, "grade"},
		{"zero concrete weight", columnInput, func(in *DesignInput) { in.ConcreteUnitWeight = 0 }, "w_c"},
		{"negative earth weight", columnInput, func(in *DesignInput) { in.EarthUnitWeight = -1 }, "w_e"},
		{"negative bottom", columnInput, func(in *DesignInput) { in.BottomOfFooting = -1 }, "bottom_of_ftng"},
		{"negative load", columnInput, func(in *DesignInput) { in.LiveLoad = -5 }, "dead_load"},
		{"no load", columnInput, func(in *DesignInput) { in.DeadLoad, in.LiveLoad = 0, 0 }, "dead_load"},
		{"unknown concrete", columnInput, func(in *DesignInput) { in.ConcreteType = "foam" }, "conc_type"},
		{"unknown location", columnInput, func(in *DesignInput) { in.ColumnLocation = "middle" }, "col_loc"},
		{"missing location", columnInput, func(in *DesignInput) { in.ColumnLocation = "" }, "col_loc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input()
			tt.modify(&in)
			err := in.Validate()

			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %s, want %s", ve.Field, tt.field)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should name the field", err)
			}
		})
	}
}

func TestMaterialParameters(t *testing.T) {
	in := columnInput()
	in.ConcreteType = "slw"
	in.Grade = 75

	mat, err := NewMaterialParameters(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mat.Lambda != 0.85 {
		t.Errorf("Lambda = %v, want 0.85", mat.Lambda)
	}
	if mat.Fy != 75000 {
		t.Errorf("Fy = %v, want 75000", mat.Fy)
	}
}

func TestVariantFor(t *testing.T) {
	mat, _ := NewMaterialParameters(columnInput())

	col, err := VariantFor(columnInput(), mat)
	if err != nil || col.Kind() != Column {
		t.Fatalf("column variant = %v, %v", col, err)
	}
	wall, err := VariantFor(wallInput(), mat)
	if err != nil || wall.Kind() != Wall {
		t.Fatalf("wall variant = %v, %v", wall, err)
	}
	if col.Cover() <= wall.Cover() {
		t.Error("two-layer column footing should have the larger cover to d")
	}

	bad := columnInput()
	bad.Kind = "pier"
	if _, err := VariantFor(bad, mat); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestDesignString(t *testing.T) {
	in := columnInput()
	in.WidthRestriction = ptr(7)
	d, err := Size(in)
	if err != nil {
		t.Fatalf("Size() error: %v", err)
	}
	s := d.String()
	if !strings.Contains(s, "11.50 x 7.00") || !strings.Contains(s, "(width)") {
		t.Errorf("unexpected summary %q", s)
	}
}
