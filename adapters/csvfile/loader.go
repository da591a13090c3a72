// Package csvfile reads and writes the persisted survey table. The dialect
// is UTF-8 comma-separated values with an optional byte order mark, the
// encoding spreadsheet tools emit and expect.
package csvfile

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
)

// utf8BOM is the byte order mark written for spreadsheet compatibility and
// stripped on read.
const utf8BOM = "\uFEFF"

// Load reads the survey CSV at path into a dataset. A path that does not
// reference an existing file is a MISSING_FILE error; an unreadable table is
// a PARSE_FAILURE. Both halt the render cycle that requested the load.
func Load(path string) (survey.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return survey.Dataset{}, errors.MissingFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return survey.Dataset{}, errors.ParseFailure(path, err)
	}
	defer f.Close()

	dataset, err := Parse(f)
	if err != nil {
		return survey.Dataset{}, errors.ParseFailure(path, err)
	}
	return dataset, nil
}

// Parse reads a survey table from any reader, e.g. an uploaded file. Header
// names are trimmed of surrounding whitespace; rows shorter than the header
// are padded with missing markers.
func Parse(r io.Reader) (survey.Dataset, error) {
	buffered := bufio.NewReader(r)
	if err := skipBOM(buffered); err != nil {
		return survey.Dataset{}, err
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return survey.Dataset{}, err
	}
	if len(rows) == 0 {
		return survey.Dataset{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}
	schema := survey.Schema{Columns: header}

	records := make([]survey.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) > len(header) {
			return survey.Dataset{}, csv.ErrFieldCount
		}
		rec := make(survey.Record, len(header))
		for i, column := range header {
			if i < len(row) {
				rec[column] = row[i]
			} else {
				rec[column] = ""
			}
		}
		records = append(records, rec)
	}

	return survey.Dataset{Schema: schema, Records: records}, nil
}

func skipBOM(r *bufio.Reader) error {
	prefix, err := r.Peek(len(utf8BOM))
	if err != nil && err != io.EOF {
		return err
	}
	if string(prefix) == utf8BOM {
		if _, err := r.Discard(len(utf8BOM)); err != nil {
			return err
		}
	}
	return nil
}
