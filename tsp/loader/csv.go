package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/baldhumanity/tsp-ga/tsp"
)

// LoadCSV reads an instance grid from a CSV file.
func LoadCSV(path string) (*tsp.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open instance file '%s': %w", path, err)
	}
	defer f.Close()

	inst, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instance file '%s': %w", path, err)
	}
	inst.Name = instanceName(path)
	return inst, nil
}

// ParseCSV reads an instance grid from r.
func ParseCSV(r io.Reader) (*tsp.Instance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows mean missing trailing cells
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseGrid(rows)
}
