// Package loader reads TSP instances from YAML, CSV and XLSX files.
//
// CSV and XLSX files hold a square grid: the first row names the cities
// (its first cell is ignored), then one row per origin city starting with
// its label. An empty cell is a missing distance, which is only allowed on
// the diagonal. The first city of the header row is the start city.
package loader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/baldhumanity/tsp-ga/tsp"
)

// Load reads an instance, choosing the format by file extension.
func Load(path string) (*tsp.Instance, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path, "")
	default:
		return nil, fmt.Errorf("unsupported instance format %q", ext)
	}
}

// instanceName derives an instance name from a file path.
func instanceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// parseGrid turns a header row plus one row per city into an instance.
func parseGrid(rows [][]string) (*tsp.Instance, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", tsp.ErrInvalidInput)
	}
	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header row names no cities", tsp.ErrInvalidInput)
	}
	cities := make([]string, len(header)-1)
	for i, c := range header[1:] {
		cities[i] = strings.TrimSpace(c)
	}

	dist := make(map[string]map[string]float64, len(cities))
	for lineNo, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue // blank line
		}
		from := strings.TrimSpace(row[0])
		if _, dup := dist[from]; dup {
			return nil, fmt.Errorf("%w: row %d repeats city %q", tsp.ErrInvalidInput, lineNo+2, from)
		}
		dist[from] = make(map[string]float64, len(cities))
		for j, cell := range row[1:] {
			if j >= len(cities) {
				return nil, fmt.Errorf("%w: row %d has more cells than the header", tsp.ErrInvalidInput, lineNo+2)
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			d, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, city %s: %v", tsp.ErrInvalidInput, lineNo+2, cities[j], err)
			}
			dist[from][cities[j]] = d
		}
	}
	return tsp.NewInstance(cities, dist)
}
