package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Format names a supported input encoding
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	XLSX Format = "xlsx"
)

// FormatFromPath picks the input format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".xlsx":
		return XLSX, nil
	}
	return "", fmt.Errorf("unsupported input file %q: expected .json, .yaml, .toml or .xlsx", path)
}

// LoadFile reads every record of an input file
func LoadFile(path string) ([]Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads records of the given format
func Decode(r io.Reader, format Format) ([]Record, error) {
	if format == XLSX {
		return decodeXLSX(r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var records []Record
	switch format {
	case JSON:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&records); err != nil {
			return nil, fmt.Errorf("parsing JSON records: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parsing YAML records: %w", err)
		}
	case TOML:
		var doc struct {
			Footings []Record `toml:"footing"`
		}
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing TOML records: %w", err)
		}
		records = doc.Footings
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return records, nil
}

// decodeXLSX reads the first sheet. The first row holds the field names;
// each following row is one record. Blank cells are absent fields and
// columns with other names are ignored.
func decodeXLSX(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []Record
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blankRow(row) {
			continue
		}
		rec, err := parseRow(header, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(header, row []string) (Record, error) {
	var rec Record
	for i, name := range header {
		if i >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}

		switch name {
		case "id":
			rec.ID = cell
			continue
		case "ftng_type":
			rec.Type = cell
			continue
		case "conc_type":
			rec.ConcreteType = &cell
			continue
		case "wall_type":
			rec.WallType = &cell
			continue
		case "col_loc":
			rec.ColumnLocation = &cell
			continue
		}

		dst := numericField(&rec, name)
		if dst == nil {
			// unrelated columns are allowed
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Record{}, fmt.Errorf("column %q: %q is not a number", name, cell)
		}
		*dst = &v
	}
	return rec, nil
}

func numericField(rec *Record, name string) **float64 {
	switch name {
	case "width":
		return &rec.Width
	case "dead_load":
		return &rec.DeadLoad
	case "live_load":
		return &rec.LiveLoad
	case "f_c":
		return &rec.Fc
	case "grade":
		return &rec.Grade
	case "a_s_p":
		return &rec.ASP
	case "w_c":
		return &rec.Wc
	case "w_e":
		return &rec.We
	case "bottom_of_ftng":
		return &rec.Bottom
	case "precision":
		return &rec.Precision
	case "width_restriction":
		return &rec.WidthRestriction
	}
	return nil
}
