package chargecode

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/alanh90/TimesheetSimplifier/internal/config"
	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

// ErrUnsupportedFormat is returned when a reference file has an extension
// that is neither spreadsheet nor delimited text.
var ErrUnsupportedFormat = errors.New("unsupported charge code file format")

// Selection is a charge code reduced to what a picker needs.
type Selection struct {
	ID   string
	Name string
}

// Repository owns the charge-code reference data: it discovers the newest
// eligible file in the configured directory, parses it into ChargeCode
// records, and reloads when the file changes on disk. Staleness is detected
// by polling the modification time on demand; there is no file watcher.
type Repository struct {
	cfg          *config.Config
	codes        []model.ChargeCode
	sourceFile   string
	lastModified time.Time
	loaded       bool
}

// NewRepository creates an empty repository bound to the configuration.
func NewRepository(cfg *config.Config) *Repository {
	return &Repository{cfg: cfg}
}

// FindReferenceFile locates the most recently modified file in the
// charge-codes directory matching any configured pattern. Returns "" when
// nothing matches.
func (r *Repository) FindReferenceFile() string {
	var newest string
	var newestMod time.Time

	for _, pattern := range r.cfg.Files.ChargeCodePatterns {
		matches, err := filepath.Glob(filepath.Join(r.cfg.Paths.ChargeCodesDir, pattern))
		if err != nil {
			util.LogWarnf("Bad charge code pattern %q: %v", pattern, err)
			continue
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if newest == "" || info.ModTime().After(newestMod) {
				newest = match
				newestMod = info.ModTime()
			}
		}
	}

	return newest
}

// Load parses the file into charge-code records, replacing the in-memory
// collection wholesale and recording the file's modification time. A missing
// file yields an empty collection, not an error.
func (r *Repository) Load(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		util.LogWarnf("Charge code file %s does not exist", path)
		r.replace(nil, path, time.Time{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat charge code file %s: %w", path, err)
	}

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readDelimited(path)
	case ".xlsx":
		rows, err = readSpreadsheet(path)
	case ".xls":
		rows, err = readLegacySpreadsheet(path)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return err
	}

	codes := parseRows(rows)
	r.replace(codes, path, info.ModTime())
	util.LogInfof("Loaded %d charge codes from %s", len(codes), path)
	return nil
}

// RefreshIfStale re-locates the reference file and reloads it when its
// modification time is newer than the last load (or nothing has been loaded
// yet). Reports whether a reload happened.
func (r *Repository) RefreshIfStale() (bool, error) {
	path := r.FindReferenceFile()
	if path == "" {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat charge code file %s: %w", path, err)
	}

	if r.loaded && !info.ModTime().After(r.lastModified) {
		return false, nil
	}

	if err := r.Load(path); err != nil {
		return false, err
	}
	return true, nil
}

// Lookup returns the charge code with the given identifier. Linear scan; the
// collection is tens to low hundreds of records.
func (r *Repository) Lookup(id string) (model.ChargeCode, bool) {
	for _, code := range r.codes {
		if code.ID == id {
			return code, true
		}
	}
	return model.ChargeCode{}, false
}

// LookupByName returns the first charge code whose friendly name matches,
// case-insensitively.
func (r *Repository) LookupByName(name string) (model.ChargeCode, bool) {
	for _, code := range r.codes {
		if strings.EqualFold(code.FriendlyName, name) {
			return code, true
		}
	}
	return model.ChargeCode{}, false
}

// ActiveCodes returns identifier and display-name pairs for active charge
// codes, in load order.
func (r *Repository) ActiveCodes() []Selection {
	var selections []Selection
	for _, code := range r.codes {
		if code.Active {
			selections = append(selections, Selection{ID: code.ID, Name: code.FriendlyName})
		}
	}
	return selections
}

// Codes returns all loaded charge codes in load order.
func (r *Repository) Codes() []model.ChargeCode {
	return r.codes
}

// SourceFile returns the path of the last loaded reference file.
func (r *Repository) SourceFile() string {
	return r.sourceFile
}

func (r *Repository) replace(codes []model.ChargeCode, path string, modTime time.Time) {
	r.codes = codes
	r.sourceFile = path
	r.lastModified = modTime
	r.loaded = true
}

// readDelimited reads a CSV file into raw rows, tolerating ragged records.
func readDelimited(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open charge code file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse charge code CSV %s: %w", path, err)
	}
	return rows, nil
}

// readLegacySpreadsheet reads the first sheet of a BIFF (.xls) workbook into
// raw rows. excelize only handles OOXML archives, so the legacy format gets
// its own reader.
func readLegacySpreadsheet(path string) ([][]string, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open charge code workbook %s: %w", path, err)
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("read first sheet of %s: %w", path, err)
	}

	var rows [][]string
	for i := 0; i <= sheet.GetNumberRows(); i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			continue
		}
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// readSpreadsheet reads the first sheet of a workbook into raw rows.
func readSpreadsheet(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open charge code workbook %s: %w", path, err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %w", sheet, path, err)
	}
	return rows, nil
}

// parseRows maps raw rows onto ChargeCode records using the header alias
// table. Rows without a resolvable friendly name are skipped, not errors.
func parseRows(rows [][]string) []model.ChargeCode {
	if len(rows) < 2 {
		return nil
	}

	index := headerIndex(rows[0])
	now := time.Now().Format(time.RFC3339)

	var codes []model.ChargeCode
	skipped := 0
	for _, row := range rows[1:] {
		values := make(map[string]string, len(fieldOrder))
		for _, field := range fieldOrder {
			if v := resolveField(field, index, row); v != "" {
				values[field] = v
			}
		}

		if values[fieldFriendlyName] == "" {
			skipped++
			continue
		}

		codes = append(codes, model.ChargeCode{
			ID:              uuid.NewString(),
			FriendlyName:    values[fieldFriendlyName],
			Percent:         values[fieldPercent],
			TaskSource:      values[fieldTaskSource],
			Task:            values[fieldTask],
			SubTask:         values[fieldSubTask],
			OperatingUnit:   values[fieldOperatingUnit],
			Process:         values[fieldProcess],
			Project:         values[fieldProject],
			Activity:        values[fieldActivity],
			CustomerSegment: values[fieldCustomerSegment],
			Active:          true,
			CreatedAt:       now,
		})
	}

	if skipped > 0 {
		util.LogDebugf("Skipped %d charge code rows without a friendly name", skipped)
	}
	return codes
}
