package bulkimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an externally supplied tabular input: an arbitrary header row and
// string-valued data rows. It has no fixed schema and is consumed only
// through the column-mapping stage.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable reads a delimited text or spreadsheet file into a Table. The
// format is chosen by extension: .csv is parsed as comma-separated text,
// anything else is opened as a workbook and its first sheet used.
func ReadTable(path string) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return Table{}, fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		return readCSV(f)
	}
	return readWorkbook(path)
}

func readCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are padded during mapping
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}
	return Table{Header: records[0], Rows: records[1:]}, nil
}

func readWorkbook(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening import workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}
	return Table{Header: rows[0], Rows: rows[1:]}, nil
}
