package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfRowHeight    = 7.0
	pdfHeaderHeight = 9.0
	pdfFont         = "Helvetica"
)

// WritePDF lays the table out on landscape A4 with a grey header row and
// beige body cells. Columns share the printable width evenly.
func WritePDF(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	colW := pageW - left - right
	if len(t.Columns) > 0 {
		colW /= float64(len(t.Columns))
	}

	header := func() {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.SetFillColor(128, 128, 128)
		pdf.SetTextColor(245, 245, 245)
		for _, col := range t.Columns {
			pdf.CellFormat(colW, pdfHeaderHeight, fit(pdf, tr(col), colW), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 9)
		pdf.SetFillColor(245, 245, 220)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 18)
	pdf.CellFormat(0, 10, tr(t.Title), "", 1, "C", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
	pdf.CellFormat(0, 6, t.GeneratedLine(), "", 1, "L", false, 0, "")
	if line := t.RangeLine(); line != "" {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
	header()

	for _, row := range t.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-bottom {
			pdf.AddPage()
			header()
		}
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colW, pdfRowHeight, fit(pdf, tr(cell), colW), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}

// fit truncates s with an ellipsis so it stays inside width. s is already
// translated to a single-byte code page.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > limit {
		s = s[:len(s)-1]
	}
	return s + "..."
}
