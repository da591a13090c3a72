package aggregate

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// Histogram is the binned distribution of a numeric column. Edges has one
// more element than Counts.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// HistogramOf bins the present numeric values of a column into the given
// number of equal-width bins. An empty view or column yields a histogram
// with no bins.
func HistogramOf(view survey.View, column string, bins int) Histogram {
	values := view.NumericColumn(column)
	if len(values) == 0 || bins < 1 {
		return Histogram{}
	}

	min := floats.Min(values)
	max := floats.Max(values)
	if min == max {
		// Degenerate distribution: one bin holding everything.
		return Histogram{Edges: []float64{min, max}, Counts: []int{len(values)}}
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, min, max)
	// stat.Histogram treats the top edge as exclusive; nudge it so the
	// maximum value lands in the last bin.
	dividers[bins] = math.Nextafter(max, math.Inf(1))

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	weights := stat.Histogram(nil, dividers, sorted, nil)

	counts := make([]int, bins)
	for i, w := range weights {
		counts[i] = int(w)
	}
	dividers[bins] = max
	return Histogram{Edges: dividers, Counts: counts}
}

// NumericSummary holds the five-number summary plus mean of a column,
// the inputs of the box-plot chart.
type NumericSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// SummarizeNumeric computes the summary over present values of a column.
// ok is false when there is no numeric data to summarize.
func SummarizeNumeric(view survey.View, column string) (NumericSummary, bool) {
	values := view.NumericColumn(column)
	if len(values) == 0 {
		return NumericSummary{}, false
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	q1, _ := stats.Percentile(values, 25)
	q3, _ := stats.Percentile(values, 75)

	return NumericSummary{
		Count:  len(values),
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
		Mean:   mean,
	}, true
}
