package ui

import (
	"net/http"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/aggregate"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/filter"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// yes is the affirmative answer value of the survey's binary questions.
const yes = "Oui"

// kpiResponse carries the six KPI cards. Rates are percentages rounded to
// one decimal; MeanSalaryLabel is pre-formatted for display.
type kpiResponse struct {
	Respondents          int     `json:"respondents"`
	MeanSalary           float64 `json:"mean_salary"`
	MeanSalaryLabel      string  `json:"mean_salary_label"`
	InternshipRate       float64 `json:"internship_rate"`
	MobilityRate         float64 `json:"mobility_rate"`
	EntrepreneurshipRate float64 `json:"entrepreneurship_rate"`
	LinkedInRate         float64 `json:"linkedin_rate"`
}

func (a *App) handleKPIs(w http.ResponseWriter, r *http.Request) {
	dataset, err := a.currentDataset(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	view := filter.Apply(dataset, stateFromQuery(r))

	// Mean over an empty view renders as 0, never as an error.
	meanSalary, _ := aggregate.Mean(view, survey.ColSalary)

	a.writeJSON(w, http.StatusOK, kpiResponse{
		Respondents:          aggregate.Count(view),
		MeanSalary:           meanSalary,
		MeanSalaryLabel:      FormatThousands(meanSalary),
		InternshipRate:       aggregate.RoundRate(aggregate.Rate(view, survey.ColInternship, yes)),
		MobilityRate:         aggregate.RoundRate(aggregate.Rate(view, survey.ColMobility, yes)),
		EntrepreneurshipRate: aggregate.RoundRate(aggregate.Rate(view, survey.ColEntrepreneurship, yes)),
		LinkedInRate:         aggregate.RoundRate(aggregate.Rate(view, survey.ColLinkedIn, yes)),
	})
}
