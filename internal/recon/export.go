package recon

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const exportBufferSize = 32 * 1024

// exportHeader is the fixed CSV header, in report column order.
var exportHeader = []string{
	"Item", "Unit", "Opening", "Closing", "Sold (Orders)",
	"Actual Usage", "Expected Usage", "Difference", "Status",
}

// WriteCSV serializes the report rows as delimited text: one header line plus
// one line per row, numeric fields with exactly three decimal places, and
// every field individually quoted so embedded separators stay safe. An empty
// row set returns ErrEmptyReport so callers can tell "nothing to export"
// apart from a failure.
func WriteCSV(w io.Writer, rows []ReportRow) error {
	if len(rows) == 0 {
		return ErrEmptyReport
	}
	buf := bufio.NewWriterSize(w, exportBufferSize)
	if err := writeQuotedLine(buf, exportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		status := "Mismatch"
		if row.IsMatch {
			status = "Match"
		}
		fields := []string{
			row.ItemName,
			string(row.Unit),
			formatQty(row.Opening),
			formatQty(row.Closing),
			formatQty(row.Sold),
			formatQty(row.ActualUsage),
			formatQty(row.ExpectedUsage),
			formatQty(row.Difference),
			status,
		}
		if err := writeQuotedLine(buf, fields); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// ExportFilename names the downloaded artifact after the reconciliation date.
func ExportFilename(date string) string {
	return fmt.Sprintf("stock_report_%s.csv", date)
}

func writeQuotedLine(buf *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := buf.WriteByte(','); err != nil {
				return err
			}
		}
		quoted := `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		if _, err := buf.WriteString(quoted); err != nil {
			return err
		}
	}
	_, err := buf.WriteString("\r\n")
	return err
}

func formatQty(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
