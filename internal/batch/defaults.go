package batch

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/alexiusacademia/gofooting/internal/aci"
)

// Defaults fills the optional fields of a record
type Defaults struct {
	ConcreteType       string  `toml:"conc_type"`
	ConcreteUnitWeight float64 `toml:"w_c"`            // pcf
	EarthUnitWeight    float64 `toml:"w_e"`            // pcf
	BottomOfFooting    float64 `toml:"bottom_of_ftng"` // ft
	ColumnLocation     string  `toml:"col_loc"`
	Precision          float64 `toml:"precision"` // ft
}

// DefaultDefaults returns the values used when neither the record nor a
// config file supplies one
func DefaultDefaults() Defaults {
	return Defaults{
		ConcreteType:       aci.NormalWeight,
		ConcreteUnitWeight: 150,
		EarthUnitWeight:    100,
		BottomOfFooting:    4,
		ColumnLocation:     aci.Interior,
		Precision:          1.0 / 12,
	}
}

type configFile struct {
	Defaults Defaults `toml:"defaults"`
}

// LoadDefaults reads a TOML config with a [defaults] table. Keys absent from
// the file keep their built-in value.
func LoadDefaults(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg := configFile{Defaults: DefaultDefaults()}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Defaults{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg.Defaults, nil
}
