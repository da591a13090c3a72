package ui

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/filter"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// filterParams maps query parameter names to the survey columns they
// constrain. Repeated parameters form the multi-select value set.
var filterParams = map[string]string{
	"sexe":     survey.ColSex,
	"diplome":  survey.ColDegree,
	"domaine":  survey.ColField,
	"stage":    survey.ColInternship,
	"mobilite": survey.ColMobility,
	"linkedin": survey.ColLinkedIn,
}

// stateFromQuery decodes the request's filter widgets into an immutable
// filter state. Absent parameters leave their predicate inactive; an absent
// or partial age range is unbounded on that side.
func stateFromQuery(r *http.Request) filter.State {
	query := r.URL.Query()
	state := filter.NewState()

	if min, max, ok := ageRange(query); ok {
		state = state.WithAgeRange(min, max)
	}
	for param, column := range filterParams {
		if values := query[param]; len(values) > 0 {
			state = state.WithSelection(column, values...)
		}
	}
	return state
}

func ageRange(query url.Values) (min, max int, ok bool) {
	minStr, maxStr := query.Get("age_min"), query.Get("age_max")
	if minStr == "" && maxStr == "" {
		return 0, 0, false
	}
	min = parseIntOr(minStr, 0)
	max = parseIntOr(maxStr, 200)
	return min, max, true
}

func parseIntOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
