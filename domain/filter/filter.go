// Package filter evaluates the dashboard's global filters against a survey
// dataset. A State is an immutable value: widgets build a fresh State per
// interaction and Apply derives a view from it, so no mutable filter state
// is shared between requests.
package filter

import (
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// State holds the active predicates: one inclusive age range plus
// set-membership selections per categorical column. The zero value matches
// every record.
type State struct {
	AgeMin     int
	AgeMax     int
	AgeBounded bool

	// Selections maps column name to allowed values. An absent column or an
	// empty slice means the column is unconstrained.
	Selections map[string][]string
}

// NewState returns a State with no active predicates.
func NewState() State {
	return State{}
}

// WithAgeRange returns a copy of the state constrained to the inclusive
// [min, max] age range.
func (s State) WithAgeRange(min, max int) State {
	out := s.clone()
	out.AgeMin = min
	out.AgeMax = max
	out.AgeBounded = true
	return out
}

// WithSelection returns a copy of the state restricting a column to the
// given values. An empty values list removes the constraint.
func (s State) WithSelection(column string, values ...string) State {
	out := s.clone()
	if len(values) == 0 {
		delete(out.Selections, column)
		return out
	}
	out.Selections[column] = append([]string(nil), values...)
	return out
}

func (s State) clone() State {
	out := State{
		AgeMin:     s.AgeMin,
		AgeMax:     s.AgeMax,
		AgeBounded: s.AgeBounded,
		Selections: make(map[string][]string, len(s.Selections)),
	}
	for col, values := range s.Selections {
		out.Selections[col] = append([]string(nil), values...)
	}
	return out
}

// Matches reports whether a single record passes every active predicate.
func (s State) Matches(rec survey.Record) bool {
	if s.AgeBounded {
		age, ok := rec.Int(survey.ColAge)
		if !ok || age < s.AgeMin || age > s.AgeMax {
			return false
		}
	}
	for column, allowed := range s.Selections {
		if len(allowed) == 0 {
			// Empty multi-select means "no constraint", not "nothing".
			continue
		}
		value, _ := rec.String(column)
		if !contains(allowed, value) {
			return false
		}
	}
	return true
}

// Apply returns the ordered subsequence of dataset records satisfying the
// conjunction of all active predicates. The dataset is never mutated; an
// empty result is a valid view, not an error.
func Apply(dataset survey.Dataset, state State) survey.View {
	matched := make([]survey.Record, 0, len(dataset.Records))
	for _, rec := range dataset.Records {
		if state.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return survey.View{Schema: dataset.Schema, Records: matched}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
