package csvfile

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
)

// ExportFilename is the fixed name of the filtered-view download.
const ExportFilename = "donnees_filtrees.csv"

// Export serializes a view to CSV bytes in the source dialect: BOM-prefixed
// UTF-8, columns in schema order. The export is produced on demand and never
// persisted server-side.
func Export(view survey.View) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTable(&buf, view.Schema, view.Records); err != nil {
		return nil, errors.Wrap(err, "export failed")
	}
	return buf.Bytes(), nil
}

// Write rewrites the full table at path, BOM included. Any failure is a
// WRITE_FAILURE carrying the underlying cause.
func Write(path string, dataset survey.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WriteFailure(path, err)
	}

	if err := writeTable(f, dataset.Schema, dataset.Records); err != nil {
		f.Close()
		return errors.WriteFailure(path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WriteFailure(path, err)
	}
	return nil
}

func writeTable(w io.Writer, schema survey.Schema, records []survey.Record) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(schema.Columns); err != nil {
		return err
	}
	row := make([]string, len(schema.Columns))
	for _, rec := range records {
		for i, column := range schema.Columns {
			row[i] = rec[column]
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
