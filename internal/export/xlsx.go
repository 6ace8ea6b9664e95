package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/table"
)

// Sheet names of the workbook.
const (
	FindingsSheet = "Findings"
	SummarySheet  = "Summary"
)

var columnWidths = []float64{6, 24, 12, 12, 60, 80}

// WriteXLSX writes r as a workbook with a findings sheet holding the full cell texts and a
// summary sheet.
func WriteXLSX(w io.Writer, r *session.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", FindingsSheet); err != nil {
		return err
	}
	if err := writeFindingsSheet(f, r); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", FindingsSheet, err)
	}
	if err := writeSummarySheet(f, r); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", SummarySheet, err)
	}

	_, err := f.WriteTo(w)
	return err
}

func writeFindingsSheet(f *excelize.File, r *session.Result) error {
	header := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(FindingsSheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(table.Headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(FindingsSheet, "A1", last, bold); err != nil {
		return err
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(FindingsSheet, col, col, width); err != nil {
			return err
		}
	}

	for i, row := range r.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Number, row.BugType, row.Severity, row.Line.Text, row.Evidence.Full, row.Reason.Full}
		if err := f.SetSheetRow(FindingsSheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SetPanes(FindingsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummarySheet(f *excelize.File, r *session.Result) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Operation", r.Operation.Name},
		{"Target", r.Target.String()},
		{"Received", r.ReceivedAt.UTC().Format("2006-01-02 15:04:05 MST")},
		{"Findings", len(r.Findings)},
	}
	if r.Summary.HasStatus() {
		rows = append(rows, []interface{}{"Status", r.Summary.Status})
	}
	if r.Summary.HasTotalFiles() {
		rows = append(rows, []interface{}{"Total Files Analyzed", r.Summary.TotalFiles})
	}

	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "A", 24)
}
