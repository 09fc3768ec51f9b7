package export

import (
	"fmt"

	"envanter-backend/internal/stock"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Stok Durumu"

var headers = []string{"Donanım Tipi", "Marka", "Model", "IFS No", "Mevcut", "Son Hareket", "Kaynak"}

// StatusSheet renders the stock status projection as an xlsx workbook. The
// export consumes the projection only; it never touches ledger tables.
func StatusSheet(rows []stock.StatusRow) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		source := ""
		if row.SourceType != "" {
			source = fmt.Sprintf("%s #%d", row.SourceType, row.SourceID)
		}
		values := []interface{}{
			row.Identity.HardwareType,
			row.Identity.Brand,
			row.Identity.Model,
			row.Identity.Reference,
			row.Net,
			row.LastMovement.Format("2006-01-02 15:04"),
			source,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
