// Package loader decodes uploaded spreadsheet bytes into the columnar
// Table the analytics core consumes. A file that cannot be decoded at all
// is the one structural failure reported as an error; everything past the
// decode degrades inside the core instead of failing.
package loader

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"saleslens/backend/analytics"
)

// Decode parses CSV or XLSX/XLS content into a Table. The first row is the
// header; blank header cells get positional names so no column is lost.
func Decode(content []byte, filename string) (analytics.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	var rows [][]string
	var err error
	switch ext {
	case ".csv":
		rows, err = readCSV(content)
	case ".xlsx", ".xls":
		rows, err = readWorkbook(content)
	default:
		return analytics.Table{}, errors.Errorf("unsupported file type %q; use .csv or .xlsx/.xls", ext)
	}
	if err != nil {
		return analytics.Table{}, errors.Wrapf(err, "decoding %s", filename)
	}
	return tableFromRows(rows), nil
}

func readCSV(content []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1 // allow variable columns
	return r.ReadAll()
}

func readWorkbook(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rs, err := f.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for rs.Next() {
		r, err := rs.Columns()
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func tableFromRows(rows [][]string) analytics.Table {
	if len(rows) == 0 {
		return analytics.NewTable(nil, nil)
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "col" + strconv.Itoa(i)
		}
		headers[i] = h
	}
	cells := make(map[string][]string, len(headers))
	for j, h := range headers {
		col := make([]string, 0, len(rows)-1)
		for _, r := range rows[1:] {
			var v string
			if j < len(r) {
				v = strings.TrimSpace(r[j])
			}
			col = append(col, v)
		}
		cells[h] = col
	}
	return analytics.NewTable(headers, cells)
}
