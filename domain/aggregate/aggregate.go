// Package aggregate computes the KPI and chart inputs of the dashboard.
// Every function is a pure, total pass over a view: empty views yield
// zero values and placeholders, never errors, and the view is never
// mutated. Missing cells are excluded from numeric denominators.
package aggregate

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// Entry is one row of a frequency table.
type Entry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FrequencyTable maps category values to occurrence counts, ordered by
// descending count with ties broken by first appearance in the view.
type FrequencyTable []Entry

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	total := 0
	for _, e := range t {
		total += e.Count
	}
	return total
}

// Count returns the number of rows in the view.
func Count(view survey.View) int {
	return view.Len()
}

// Mean returns the arithmetic mean of a numeric column over rows where a
// value is present. ok is false when there is nothing to average; callers
// render a zero placeholder in that case.
func Mean(view survey.View, column string) (mean float64, ok bool) {
	values := view.NumericColumn(column)
	if len(values) == 0 {
		return 0, false
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, false
	}
	return mean, true
}

// Rate returns the percentage (0-100) of rows whose column equals target.
// An empty view yields 0 rather than a division error.
func Rate(view survey.View, column, target string) float64 {
	if view.Len() == 0 {
		return 0
	}
	hits := 0
	for _, rec := range view.Records {
		if value, _ := rec.String(column); value == target {
			hits++
		}
	}
	return float64(hits) / float64(view.Len()) * 100
}

// RoundRate rounds a percentage to one decimal, the precision the KPI
// cards display.
func RoundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}

// ValueCounts counts occurrences per distinct present value of a column,
// ordered by descending count. Missing cells are not a category.
func ValueCounts(view survey.View, column string) FrequencyTable {
	counts := map[string]int{}
	order := []string{}
	for _, rec := range view.Records {
		value, ok := rec.String(column)
		if !ok {
			continue
		}
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	table := make(FrequencyTable, 0, len(order))
	for _, value := range order {
		table = append(table, Entry{Value: value, Count: counts[value]})
	}
	// Stable sort keeps first-encountered order among equal counts.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}

// TopN returns the n highest-count entries of ValueCounts.
func TopN(view survey.View, column string, n int) FrequencyTable {
	table := ValueCounts(view, column)
	if n < len(table) {
		table = table[:n]
	}
	return table
}

// PairCount is one (colA value, colB value) combination and its row count.
type PairCount struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// GroupPairCounts counts rows per combination of two categorical columns,
// in first-encountered order. Rows missing either value are skipped.
func GroupPairCounts(view survey.View, colA, colB string) []PairCount {
	type key struct{ a, b string }
	counts := map[key]int{}
	order := []key{}
	for _, rec := range view.Records {
		a, okA := rec.String(colA)
		b, okB := rec.String(colB)
		if !okA || !okB {
			continue
		}
		k := key{a, b}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	pairs := make([]PairCount, 0, len(order))
	for _, k := range order {
		pairs = append(pairs, PairCount{A: k.a, B: k.b, Count: counts[k]})
	}
	return pairs
}

// CrossTabTable is a contingency matrix: Counts[i][j] is the number of rows
// with RowValues[i] and ColValues[j]. Unobserved combinations are 0, never
// absent.
type CrossTabTable struct {
	RowValues []string `json:"row_values"`
	ColValues []string `json:"col_values"`
	Counts    [][]int  `json:"counts"`
}

// CrossTab lays out row counts per (rowCol value, colCol value) pair as a
// matrix over the distinct observed values of each column.
func CrossTab(view survey.View, rowCol, colCol string) CrossTabTable {
	rowValues := distinctSorted(view, rowCol)
	colValues := distinctSorted(view, colCol)

	rowIndex := indexOf(rowValues)
	colIndex := indexOf(colValues)

	counts := make([][]int, len(rowValues))
	for i := range counts {
		counts[i] = make([]int, len(colValues))
	}
	for _, rec := range view.Records {
		r, okR := rec.String(rowCol)
		c, okC := rec.String(colCol)
		if !okR || !okC {
			continue
		}
		counts[rowIndex[r]][colIndex[c]]++
	}

	return CrossTabTable{RowValues: rowValues, ColValues: colValues, Counts: counts}
}

func distinctSorted(view survey.View, column string) []string {
	seen := map[string]struct{}{}
	values := []string{}
	for _, rec := range view.Records {
		if v, ok := rec.String(column); ok {
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				values = append(values, v)
			}
		}
	}
	sort.Strings(values)
	return values
}

func indexOf(values []string) map[string]int {
	index := make(map[string]int, len(values))
	for i, v := range values {
		index[v] = i
	}
	return index
}
