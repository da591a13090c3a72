// Package excel exports a filtered view as an XLSX workbook for users who
// want the download directly in spreadsheet form.
package excel

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
)

// ExportFilename is the fixed name of the XLSX download.
const ExportFilename = "donnees_filtrees.xlsx"

const sheetName = "Sheet1"

// ExportXLSX writes the view to a single-sheet workbook: header row in
// schema order, one row per record. Numeric cells are written as numbers so
// spreadsheet formulas work on them.
func ExportXLSX(view survey.View) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(view.Schema.Columns))
	for i, column := range view.Schema.Columns {
		header[i] = column
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "xlsx export failed")
	}

	for rowIdx, rec := range view.Records {
		row := make([]interface{}, len(view.Schema.Columns))
		for i, column := range view.Schema.Columns {
			row[i] = cellValue(rec, column)
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx export failed")
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errors.Wrap(err, "xlsx export failed")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "xlsx export failed")
	}
	return buf.Bytes(), nil
}

func cellValue(rec survey.Record, column string) interface{} {
	switch survey.KindOf(column) {
	case survey.KindNumeric, survey.KindIdentifier:
		if f, ok := rec.Float(column); ok {
			return f
		}
	}
	value, _ := rec.String(column)
	return value
}
