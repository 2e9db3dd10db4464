package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
)

// WriteWorkbook renders one worksheet per table, header row first, and
// returns the finished .xlsx bytes.
func WriteWorkbook(tables []service.Table) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		sheet := table.Name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("excel: rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("excel: create sheet %s: %w", sheet, err)
			}
		}

		for col, name := range table.Columns {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, name); err != nil {
				return nil, fmt.Errorf("excel: write header: %w", err)
			}
		}

		for row, values := range table.Rows {
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return nil, fmt.Errorf("excel: write cell %s!%s: %w", sheet, cell, err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: encode workbook: %w", err)
	}
	return buf, nil
}
