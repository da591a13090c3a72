package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

func viewOf(records ...survey.Record) survey.View {
	return survey.View{
		Schema:  survey.Schema{Columns: []string{survey.ColDegree, survey.ColInternship, survey.ColSalary, survey.ColDifficulty}},
		Records: records,
	}
}

func TestEmptyViewAggregatesAreDefined(t *testing.T) {
	empty := viewOf()

	assert.Equal(t, 0, Count(empty))

	mean, ok := Mean(empty, survey.ColSalary)
	assert.False(t, ok)
	assert.Zero(t, mean)

	assert.Zero(t, Rate(empty, survey.ColInternship, "Oui"))
	assert.Empty(t, ValueCounts(empty, survey.ColDegree))
}

func TestMean_SkipsMissingValues(t *testing.T) {
	view := viewOf(
		survey.Record{survey.ColSalary: "10000"},
		survey.Record{survey.ColSalary: ""},
		survey.Record{survey.ColSalary: "20000"},
	)

	mean, ok := Mean(view, survey.ColSalary)
	require.True(t, ok)
	// Missing cells leave the denominator, they do not count as zero.
	assert.InDelta(t, 15000, mean, 1e-9)
}

func TestRate_RoundsToOneDecimal(t *testing.T) {
	view := viewOf(
		survey.Record{survey.ColInternship: "Oui"},
		survey.Record{survey.ColInternship: "Oui"},
		survey.Record{survey.ColInternship: "Non"},
	)

	assert.InDelta(t, 66.7, RoundRate(Rate(view, survey.ColInternship, "Oui")), 1e-9)
}

func TestValueCounts_SumEqualsCountAndOrderIsDescending(t *testing.T) {
	view := viewOf(
		survey.Record{survey.ColDegree: "Licence"},
		survey.Record{survey.ColDegree: "Master"},
		survey.Record{survey.ColDegree: "Licence"},
		survey.Record{survey.ColDegree: "Doctorat"},
		survey.Record{survey.ColDegree: "Licence"},
	)

	table := ValueCounts(view, survey.ColDegree)
	require.Len(t, table, 3)
	assert.Equal(t, Count(view), table.Total())
	assert.Equal(t, Entry{Value: "Licence", Count: 3}, table[0])
	for i := 1; i < len(table); i++ {
		assert.LessOrEqual(t, table[i].Count, table[i-1].Count)
	}
}

func TestValueCounts_TieBreakIsFirstEncountered(t *testing.T) {
	view := viewOf(
		survey.Record{survey.ColDegree: "Master"},
		survey.Record{survey.ColDegree: "Licence"},
		survey.Record{survey.ColDegree: "Master"},
		survey.Record{survey.ColDegree: "Licence"},
	)

	table := ValueCounts(view, survey.ColDegree)
	require.Len(t, table, 2)
	assert.Equal(t, "Master", table[0].Value)
	assert.Equal(t, "Licence", table[1].Value)
}

func TestTopN_IsPrefixOfValueCounts(t *testing.T) {
	view := viewOf(
		survey.Record{survey.ColDegree: "Licence"},
		survey.Record{survey.ColDegree: "Licence"},
		survey.Record{survey.ColDegree: "Master"},
		survey.Record{survey.ColDegree: "Doctorat"},
	)

	full := ValueCounts(view, survey.ColDegree)
	top := TopN(view, survey.ColDegree, 2)
	require.Len(t, top, 2)
	assert.Equal(t, full[:2], top)

	// n beyond the distinct count returns everything.
	assert.Equal(t, full, TopN(view, survey.ColDegree, 10))
}

func TestGroupPairCounts(t *testing.T) {
	view := viewOf(
		survey.Record{survey.ColDegree: "Licence", survey.ColInternship: "Oui"},
		survey.Record{survey.ColDegree: "Licence", survey.ColInternship: "Non"},
		survey.Record{survey.ColDegree: "Licence", survey.ColInternship: "Oui"},
		survey.Record{survey.ColDegree: "Master", survey.ColInternship: "Oui"},
	)

	pairs := GroupPairCounts(view, survey.ColDegree, survey.ColInternship)
	require.Len(t, pairs, 3)
	assert.Equal(t, PairCount{A: "Licence", B: "Oui", Count: 2}, pairs[0])
	assert.Equal(t, PairCount{A: "Licence", B: "Non", Count: 1}, pairs[1])
	assert.Equal(t, PairCount{A: "Master", B: "Oui", Count: 1}, pairs[2])
}

func TestCrossTab_UnobservedComboIsZeroNotAbsent(t *testing.T) {
	view := viewOf(
		survey.Record{survey.ColDifficulty: "A", survey.ColDegree: "X"},
		survey.Record{survey.ColDifficulty: "A", survey.ColDegree: "Y"},
		survey.Record{survey.ColDifficulty: "B", survey.ColDegree: "X"},
	)

	ct := CrossTab(view, survey.ColDifficulty, survey.ColDegree)
	require.Equal(t, []string{"A", "B"}, ct.RowValues)
	require.Equal(t, []string{"X", "Y"}, ct.ColValues)

	assert.Equal(t, 1, ct.Counts[0][0]) // (A, X)
	assert.Equal(t, 1, ct.Counts[0][1]) // (A, Y)
	assert.Equal(t, 1, ct.Counts[1][0]) // (B, X)
	assert.Equal(t, 0, ct.Counts[1][1]) // (B, Y) never co-occurs
}

func TestCrossTab_EmptyView(t *testing.T) {
	ct := CrossTab(viewOf(), survey.ColDifficulty, survey.ColDegree)
	assert.Empty(t, ct.RowValues)
	assert.Empty(t, ct.ColValues)
	assert.Empty(t, ct.Counts)
}
