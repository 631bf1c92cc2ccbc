// Package reports renders printable summaries of portal data.
package reports

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"fieldforce/internal/domain/workforce"
)

// WriteTimesheetRegister renders the timesheet approval register as a PDF.
// Rows keep the store's insertion order.
func WriteTimesheetRegister(w io.Writer, timesheets []workforce.TimesheetApproval) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(60, 10, "Timesheet Approval Register")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	headers := []struct {
		label string
		width float64
	}{
		{"ID", 24},
		{"Worker", 48},
		{"Project", 70},
		{"Week Ending", 28},
		{"Hours", 20},
		{"Overtime", 22},
		{"Status", 24},
		{"Processed", 40},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 8, h.label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, ts := range timesheets {
		cells := []struct {
			value string
			width float64
		}{
			{ts.ID, 24},
			{ts.WorkerName, 48},
			{ts.ProjectName, 70},
			{ts.WeekEnding, 28},
			{fmt.Sprintf("%.1f", ts.TotalHours), 20},
			{fmt.Sprintf("%.1f", ts.OvertimeHours), 22},
			{ts.Status, 24},
			{ts.ProcessedAt, 40},
		}
		for _, c := range cells {
			pdf.CellFormat(c.width, 8, c.value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
