package cms

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxParseWarnings bounds the per-file sample of row-level irregularities
// carried into the build result.
const maxParseWarnings = 3

// Warning is a recoverable input irregularity: missing or empty source,
// malformed row. Collected during the build and printed by the caller;
// never fatal.
type Warning struct {
	Source  string
	Message string
}

func (w Warning) String() string {
	return w.Source + ": " + w.Message
}

// ReadRows loads the rows for one entity sheet from dir. It prefers
// <name>.csv and falls back to <name>.xlsx. A missing or empty source is a
// warning and zero rows, not an error.
func ReadRows(dir, name string) ([]Row, []Warning) {
	csvPath := filepath.Join(dir, name+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return readCSV(csvPath)
	}
	xlsxPath := filepath.Join(dir, name+".xlsx")
	if _, err := os.Stat(xlsxPath); err == nil {
		return readXLSX(xlsxPath)
	}
	return nil, []Warning{{Source: name, Message: "missing source file (.csv or .xlsx)"}}
}

func readCSV(path string) ([]Row, []Warning) {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, []Warning{{Source: name, Message: err.Error()}}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, []Warning{{Source: name, Message: "empty source file"}}
	}

	rows := []Row{}
	warnings := []Warning{}
	parseErrs := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			parseErrs++
			if parseErrs <= maxParseWarnings {
				warnings = append(warnings, Warning{Source: name, Message: err.Error()})
			}
			continue
		}
		if row := recordToRow(header, record); row != nil {
			rows = append(rows, row)
		}
	}
	if parseErrs > maxParseWarnings {
		warnings = append(warnings, Warning{
			Source:  name,
			Message: fmt.Sprintf("%d further parse error(s) suppressed", parseErrs-maxParseWarnings),
		})
	}
	if len(rows) == 0 && len(warnings) == 0 {
		warnings = append(warnings, Warning{Source: name, Message: "no data rows"})
	}
	return rows, warnings
}

func readXLSX(path string) ([]Row, []Warning) {
	name := filepath.Base(path)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, []Warning{{Source: name, Message: err.Error()}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, []Warning{{Source: name, Message: "workbook has no sheets"}}
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, []Warning{{Source: name, Message: err.Error()}}
	}
	if len(records) == 0 {
		return nil, []Warning{{Source: name, Message: "empty source file"}}
	}

	header := records[0]
	rows := []Row{}
	for _, record := range records[1:] {
		if row := recordToRow(header, record); row != nil {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return rows, []Warning{{Source: name, Message: "no data rows"}}
	}
	return rows, nil
}

// recordToRow zips a record against the header, ignoring trailing cells
// without a header and skipping rows that are blank throughout.
func recordToRow(header, record []string) Row {
	row := Row{}
	blank := true
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" || i >= len(record) {
			continue
		}
		row[h] = record[i]
		if strings.TrimSpace(record[i]) != "" {
			blank = false
		}
	}
	if blank {
		return nil
	}
	return row
}
