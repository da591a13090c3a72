package survey

import (
	"sort"

	"github.com/samber/lo"
)

// Schema is the ordered set of columns declared by the source header.
type Schema struct {
	Columns []string
}

// Has reports whether the schema declares a column.
func (s Schema) Has(column string) bool {
	return lo.Contains(s.Columns, column)
}

// Dataset is the full in-memory table for the current session. It is
// replaced wholesale on reload and never mutated in place.
type Dataset struct {
	Schema  Schema
	Records []Record
}

// View is an ordered subset of a dataset's records sharing its schema.
// Aggregations and keyword extraction run over views, never over the
// dataset directly.
type View struct {
	Schema  Schema
	Records []Record
}

// View returns the whole dataset as a view.
func (d Dataset) View() View {
	return View{Schema: d.Schema, Records: d.Records}
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.Records)
}

// Len returns the number of records in the view.
func (v View) Len() int {
	return len(v.Records)
}

// Column returns every present (non-missing) value of a column, in row order.
func (v View) Column(column string) []string {
	out := make([]string, 0, len(v.Records))
	for _, rec := range v.Records {
		if val, ok := rec.String(column); ok {
			out = append(out, val)
		}
	}
	return out
}

// NumericColumn returns every parseable numeric value of a column, in row
// order. Missing and unparseable cells are skipped, not zeroed.
func (v View) NumericColumn(column string) []float64 {
	out := make([]float64, 0, len(v.Records))
	for _, rec := range v.Records {
		if f, ok := rec.Float(column); ok {
			out = append(out, f)
		}
	}
	return out
}

// DistinctValues returns the sorted distinct present values of a column,
// the option lists for the filter widgets.
func (d Dataset) DistinctValues(column string) []string {
	values := lo.Uniq(d.View().Column(column))
	sort.Strings(values)
	return values
}

// TextColumns returns the columns eligible as a word-cloud source: every
// string-valued column, i.e. everything except identifiers and numerics.
func (d Dataset) TextColumns() []string {
	return lo.Filter(d.Schema.Columns, func(col string, _ int) bool {
		kind := KindOf(col)
		return kind == KindCategorical || kind == KindText
	})
}

// AgeBounds returns the observed min and max age, used to seed the range
// widget. ok is false when no record has a parseable age.
func (d Dataset) AgeBounds() (min, max int, ok bool) {
	for _, rec := range d.Records {
		age, present := rec.Int(ColAge)
		if !present {
			continue
		}
		if !ok || age < min {
			min = age
		}
		if !ok || age > max {
			max = age
		}
		ok = true
	}
	return min, max, ok
}

// MaxID returns the highest identifier present, 0 when the dataset is empty
// or has no identifier column.
func (d Dataset) MaxID() int {
	maxID := 0
	for _, rec := range d.Records {
		if id, ok := rec.Int(ColID); ok && id > maxID {
			maxID = id
		}
	}
	return maxID
}
