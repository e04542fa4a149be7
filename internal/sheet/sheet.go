// Package sheet reads gesture event-code spreadsheets.
package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gesturelab/gesture-data/internal/model"
)

// Required spreadsheet column headers, as exported by the lab.
const (
	ColInd             = "eInd"
	ColDescriptionEngl = "eDescriptionENGL"
	ColDescriptionSlo  = "eDescriptionSLO"
	ColID              = "eID"
	ColDescriptionButt = "eDescriptionButt"
	ColNotes           = "Notes"
)

var requiredColumns = []string{
	ColInd,
	ColDescriptionEngl,
	ColDescriptionSlo,
	ColID,
	ColDescriptionButt,
	ColNotes,
}

// ReadEventCodes reads all event-code rows from the first sheet of the XLSX
// file at path. Row order is preserved. Non-finite or unparseable numeric
// cells and empty text cells become nil fields.
func ReadEventCodes(path string) ([]model.EventCode, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheets[0])
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	codes := make([]model.EventCode, 0, len(rows)-1)
	for _, row := range rows[1:] {
		codes = append(codes, model.EventCode{
			Ind:             numericField(cell(row, index[ColInd])),
			DescriptionEngl: textField(cell(row, index[ColDescriptionEngl])),
			DescriptionSlo:  textField(cell(row, index[ColDescriptionSlo])),
			ID:              numericField(cell(row, index[ColID])),
			DescriptionButt: textField(cell(row, index[ColDescriptionButt])),
			Notes:           textField(cell(row, index[ColNotes])),
		})
	}

	return codes, nil
}

// headerIndex maps required column names to their positions in the header
// row. Column order in the file does not matter.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return index, nil
}

// cell returns the value at idx, or "" for rows shorter than the header
// (trailing empty cells are trimmed by the reader).
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// numericField parses a numeric cell. Empty, unparseable, NaN and ±Inf cells
// all normalize to nil.
func numericField(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return model.FiniteOrNil(v)
}

// textField normalizes a text cell. Empty cells and the "NaN" marker pandas
// writes for missing values become nil.
func textField(s string) *string {
	if strings.TrimSpace(s) == "" || strings.EqualFold(strings.TrimSpace(s), "nan") {
		return nil
	}
	return &s
}
