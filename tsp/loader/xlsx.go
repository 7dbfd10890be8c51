package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/baldhumanity/tsp-ga/tsp"
)

// LoadXLSX reads an instance grid from a sheet of an XLSX workbook. An empty
// sheet name selects the first sheet.
func LoadXLSX(path, sheet string) (*tsp.Instance, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook '%s': %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook '%s' has no sheets", tsp.ErrInvalidInput, path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s' of '%s': %w", sheet, path, err)
	}
	inst, err := parseGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet '%s' of '%s': %w", sheet, path, err)
	}
	inst.Name = instanceName(path)
	return inst, nil
}
