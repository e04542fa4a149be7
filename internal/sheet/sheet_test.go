package sheet

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeSheet writes an xlsx file with the given rows into a temp dir.
func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cellRef, &row); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), "events.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save spreadsheet: %v", err)
	}
	return path
}

var header = []any{"eInd", "eDescriptionENGL", "eDescriptionSLO", "eID", "eDescriptionButt", "Notes"}

func TestReadEventCodes(t *testing.T) {
	t.Run("full rows in order", func(t *testing.T) {
		path := writeSheet(t, [][]any{
			header,
			{1, "swipe left", "levo", 101, "L", "first"},
			{2, "swipe right", "desno", 102, "R", "second"},
		})

		codes, err := ReadEventCodes(path)
		if err != nil {
			t.Fatalf("ReadEventCodes: %v", err)
		}
		if len(codes) != 2 {
			t.Fatalf("rows = %d, want 2", len(codes))
		}

		first := codes[0]
		if first.Ind == nil || *first.Ind != 1 {
			t.Errorf("Ind = %v, want 1", first.Ind)
		}
		if first.DescriptionEngl == nil || *first.DescriptionEngl != "swipe left" {
			t.Errorf("DescriptionEngl = %v", first.DescriptionEngl)
		}
		if first.DescriptionSlo == nil || *first.DescriptionSlo != "levo" {
			t.Errorf("DescriptionSlo = %v", first.DescriptionSlo)
		}
		if first.ID == nil || *first.ID != 101 {
			t.Errorf("ID = %v, want 101", first.ID)
		}
		if codes[1].Notes == nil || *codes[1].Notes != "second" {
			t.Errorf("row 2 Notes = %v, want %q", codes[1].Notes, "second")
		}
	})

	t.Run("column order does not matter", func(t *testing.T) {
		path := writeSheet(t, [][]any{
			{"Notes", "eID", "eInd", "eDescriptionButt", "eDescriptionSLO", "eDescriptionENGL"},
			{"note", 7, 3, "B", "slo", "engl"},
		})

		codes, err := ReadEventCodes(path)
		if err != nil {
			t.Fatalf("ReadEventCodes: %v", err)
		}
		if codes[0].Ind == nil || *codes[0].Ind != 3 {
			t.Errorf("Ind = %v, want 3", codes[0].Ind)
		}
		if codes[0].ID == nil || *codes[0].ID != 7 {
			t.Errorf("ID = %v, want 7", codes[0].ID)
		}
		if codes[0].Notes == nil || *codes[0].Notes != "note" {
			t.Errorf("Notes = %v, want %q", codes[0].Notes, "note")
		}
	})

	t.Run("missing column", func(t *testing.T) {
		path := writeSheet(t, [][]any{
			{"eInd", "eDescriptionENGL", "eDescriptionSLO", "eID", "eDescriptionButt"},
			{1, "a", "b", 2, "c"},
		})

		if _, err := ReadEventCodes(path); err == nil {
			t.Error("ReadEventCodes should fail without the Notes column")
		}
	})

	t.Run("empty and NaN cells become nil", func(t *testing.T) {
		path := writeSheet(t, [][]any{
			header,
			{"NaN", "engl", "", "+Inf", "NaN", nil},
		})

		codes, err := ReadEventCodes(path)
		if err != nil {
			t.Fatalf("ReadEventCodes: %v", err)
		}

		c := codes[0]
		if c.Ind != nil {
			t.Errorf("Ind = %v, want nil for NaN cell", *c.Ind)
		}
		if c.ID != nil {
			t.Errorf("ID = %v, want nil for Inf cell", *c.ID)
		}
		if c.DescriptionSlo != nil {
			t.Errorf("DescriptionSlo = %v, want nil for empty cell", *c.DescriptionSlo)
		}
		if c.DescriptionButt != nil {
			t.Errorf("DescriptionButt = %v, want nil for NaN marker", *c.DescriptionButt)
		}
		if c.Notes != nil {
			t.Errorf("Notes = %v, want nil for missing cell", *c.Notes)
		}
		if c.DescriptionEngl == nil || *c.DescriptionEngl != "engl" {
			t.Errorf("DescriptionEngl = %v, want %q", c.DescriptionEngl, "engl")
		}
	})

	t.Run("unparseable numeric cell becomes nil", func(t *testing.T) {
		path := writeSheet(t, [][]any{
			header,
			{"three", "a", "b", "4x", "c", "d"},
		})

		codes, err := ReadEventCodes(path)
		if err != nil {
			t.Fatalf("ReadEventCodes: %v", err)
		}
		if codes[0].Ind != nil {
			t.Errorf("Ind = %v, want nil", *codes[0].Ind)
		}
		if codes[0].ID != nil {
			t.Errorf("ID = %v, want nil", *codes[0].ID)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadEventCodes(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
			t.Error("ReadEventCodes should fail for a missing file")
		}
	})
}
