package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

func testDataset() survey.Dataset {
	schema := survey.Schema{Columns: []string{
		survey.ColID, survey.ColAge, survey.ColSex, survey.ColDegree,
	}}
	return survey.Dataset{
		Schema: schema,
		Records: []survey.Record{
			{survey.ColID: "1", survey.ColAge: "22", survey.ColSex: "F", survey.ColDegree: "Licence"},
			{survey.ColID: "2", survey.ColAge: "25", survey.ColSex: "M", survey.ColDegree: "Master"},
			{survey.ColID: "3", survey.ColAge: "30", survey.ColSex: "F", survey.ColDegree: "Licence"},
		},
	}
}

func TestApply_NoPredicatesMatchesEverything(t *testing.T) {
	ds := testDataset()
	view := Apply(ds, NewState())
	assert.Equal(t, ds.Len(), view.Len())
}

func TestApply_AgeRangeInclusive(t *testing.T) {
	ds := testDataset()

	// Ages are [22, 25, 30]; the range [23, 30] keeps the last two rows.
	view := Apply(ds, NewState().WithAgeRange(23, 30))
	require.Equal(t, 2, view.Len())
	id1, _ := view.Records[0].String(survey.ColID)
	id2, _ := view.Records[1].String(survey.ColID)
	assert.Equal(t, "2", id1)
	assert.Equal(t, "3", id2)

	// Bounds are inclusive on both ends.
	exact := Apply(ds, NewState().WithAgeRange(22, 22))
	require.Equal(t, 1, exact.Len())
}

func TestApply_PreservesOrderAndSubsequence(t *testing.T) {
	ds := testDataset()
	view := Apply(ds, NewState().WithSelection(survey.ColDegree, "Licence"))

	require.Equal(t, 2, view.Len())
	// The view must be a subsequence of the dataset: same records, same
	// relative order, nothing fabricated.
	prev := -1
	for _, rec := range view.Records {
		found := -1
		for i, orig := range ds.Records {
			if orig[survey.ColID] == rec[survey.ColID] {
				found = i
			}
		}
		require.GreaterOrEqual(t, found, 0)
		assert.Greater(t, found, prev)
		prev = found
	}
}

func TestApply_EmptySelectionEqualsNoFilter(t *testing.T) {
	ds := testDataset()
	for _, col := range []string{survey.ColSex, survey.ColDegree} {
		unfiltered := Apply(ds, NewState())
		empty := Apply(ds, State{Selections: map[string][]string{col: {}}})
		assert.Equal(t, unfiltered.Records, empty.Records, "empty selection on %s must be a no-op", col)
	}
}

func TestApply_ConjunctionAcrossPredicates(t *testing.T) {
	ds := testDataset()
	state := NewState().
		WithAgeRange(23, 30).
		WithSelection(survey.ColSex, "F")

	view := Apply(ds, state)
	require.Equal(t, 1, view.Len())
	assert.Equal(t, "3", view.Records[0][survey.ColID])
}

func TestApply_ZeroMatchesIsValidView(t *testing.T) {
	ds := testDataset()
	view := Apply(ds, NewState().WithSelection(survey.ColDegree, "Doctorat"))
	assert.Equal(t, 0, view.Len())
	assert.Equal(t, ds.Schema, view.Schema)
}

func TestApply_MissingAgeFailsBoundedRange(t *testing.T) {
	ds := testDataset()
	ds.Records = append(ds.Records, survey.Record{
		survey.ColID: "4", survey.ColAge: "", survey.ColSex: "M", survey.ColDegree: "Master",
	})

	bounded := Apply(ds, NewState().WithAgeRange(18, 60))
	assert.Equal(t, 3, bounded.Len())

	unbounded := Apply(ds, NewState())
	assert.Equal(t, 4, unbounded.Len())
}

func TestWithSelection_DoesNotMutateOriginal(t *testing.T) {
	base := NewState().WithSelection(survey.ColSex, "F")
	derived := base.WithSelection(survey.ColSex, "M")

	assert.Equal(t, []string{"F"}, base.Selections[survey.ColSex])
	assert.Equal(t, []string{"M"}, derived.Selections[survey.ColSex])
}
