// Package export renders tabular reports as CSV, PDF or XLSX documents.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"gymfit/pkg/utils"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Table is a rendered report: a title, an optional date range and string cells.
type Table struct {
	Title       string
	From, To    time.Time
	GeneratedAt time.Time
	Columns     []string
	Rows        [][]string
}

func (t Table) GeneratedLine() string {
	return "Generated on: " + t.GeneratedAt.UTC().Format(utils.DateTimeLayout)
}

// RangeLine is empty when the table has no date range.
func (t Table) RangeLine() string {
	if t.From.IsZero() && t.To.IsZero() {
		return ""
	}
	return "Date Range: " + t.From.Format(utils.DateLayout) + " to " + t.To.Format(utils.DateLayout)
}

// ParseFormat accepts csv, pdf or xlsx. Empty means csv.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", utils.ErrInvalidExportFormat
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// Filename is "{name}_report_{YYYYMMDD}.{ext}".
func Filename(name string, f Format, at time.Time) string {
	return fmt.Sprintf("%s_report_%s.%s", name, at.Format(utils.FileDateLayout), f)
}

// Write renders t in format f.
func Write(w io.Writer, t Table, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatPDF:
		return WritePDF(w, t)
	case FormatXLSX:
		return WriteXLSX(w, t)
	}
	return utils.ErrInvalidExportFormat
}

// Render buffers the whole document so a failure never produces a partial download.
func Render(t Table, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
