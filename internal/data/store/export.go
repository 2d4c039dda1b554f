package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

// exportSheetName is the worksheet written by spreadsheet exports.
const exportSheetName = "Time Entries"

// CodeResolver resolves a charge-code identifier to its full record. The
// charge-code repository satisfies this.
type CodeResolver interface {
	Lookup(id string) (model.ChargeCode, bool)
}

// ExportCSV writes the range's entries as delimited text. An empty range
// produces a header-only file.
func (s *EntryStore) ExportCSV(start, end time.Time, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Charge Code", "Hours", "Notes", "Created At"}); err != nil {
		return err
	}

	entries := s.EntriesInRange(start, end)
	for _, entry := range entries {
		// Full-precision hours; display rounding stays in the CLI tables.
		record := []string{
			entry.Date,
			entry.ChargeCodeName,
			strconv.FormatFloat(entry.Hours, 'f', -1, 64),
			entry.Notes,
			entry.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write export file %s: %w", path, err)
	}

	util.LogInfof("Exported %d entries to %s", len(entries), path)
	return nil
}

// ExportExcel writes the range's entries to the Time Entries worksheet,
// joining in the live charge-code repository for the accounting attribute
// columns. Entries whose identifier no longer resolves leave those columns
// blank.
func (s *EntryStore) ExportExcel(start, end time.Time, path string, resolver CodeResolver) error {
	book := excelize.NewFile()
	defer book.Close()

	index, err := book.NewSheet(exportSheetName)
	if err != nil {
		return fmt.Errorf("create worksheet: %w", err)
	}
	book.SetActiveSheet(index)
	// Drop the default sheet so the export carries only the named worksheet.
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default worksheet: %w", err)
	}

	header := []interface{}{
		"Date", "Friendly Name", "Hours", "Notes",
		"Percent", "Task Source", "Task", "SubTask", "Operating Unit",
		"Process", "Project", "Activity", "Customer Segment",
	}
	if err := book.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return err
	}

	entries := s.EntriesInRange(start, end)
	for i, entry := range entries {
		row := []interface{}{
			entry.Date,
			entry.ChargeCodeName,
			entry.Hours,
			entry.Notes,
		}

		if code, ok := resolver.Lookup(entry.ChargeCodeID); ok {
			row = append(row,
				code.Percent, code.TaskSource, code.Task, code.SubTask,
				code.OperatingUnit, code.Process, code.Project,
				code.Activity, code.CustomerSegment)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("save export workbook %s: %w", path, err)
	}

	util.LogInfof("Exported %d entries to %s", len(entries), path)
	return nil
}
