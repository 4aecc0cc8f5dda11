package export

import (
	"io"

	"github.com/tealeg/xlsx"
)

func WriteXLSX(w io.Writer, t Table) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Report")
	if err != nil {
		return err
	}

	bold := xlsx.NewStyle()
	bold.Font.Bold = true
	bold.ApplyFont = true

	headerRow := sheet.AddRow()
	for _, h := range t.Columns {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(bold)
	}
	for _, r := range t.Rows {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}
	return file.Write(w)
}
