package survey

import (
	"strings"

	"github.com/spf13/cast"
)

// Record is one respondent's answers, keyed by column name. Cells hold the
// raw string from the source; the empty string is the missing marker.
type Record map[string]string

// IsMissing reports whether the record has no usable value for a column.
func (r Record) IsMissing(column string) bool {
	return strings.TrimSpace(r[column]) == ""
}

// String returns the trimmed cell value and whether it is present.
func (r Record) String(column string) (string, bool) {
	v := strings.TrimSpace(r[column])
	return v, v != ""
}

// Int returns the cell parsed as an integer. The second return is false for
// missing or unparseable values.
func (r Record) Int(column string) (int, bool) {
	v, ok := r.String(column)
	if !ok {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float returns the cell parsed as a float. The second return is false for
// missing or unparseable values.
func (r Record) Float(column string) (float64, bool) {
	v, ok := r.String(column)
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
