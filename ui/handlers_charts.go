package ui

import (
	"net/http"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/aggregate"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/filter"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// Chart endpoints return the aggregate structures one dashboard tab needs.
// An empty filtered view produces empty tables and count 0; the front end
// shows its "no data after filtering" notice instead of a chart.

const (
	topFieldsLimit   = 10
	salaryBins       = 30
	trainingBins     = 5
	applicationsBins = 10
)

type profileCharts struct {
	Count        int                      `json:"count"`
	DegreeCounts aggregate.FrequencyTable `json:"degree_counts"`
	SexCounts    aggregate.FrequencyTable `json:"sex_counts"`
}

func (a *App) handleProfileCharts(w http.ResponseWriter, r *http.Request) {
	view, err := a.filteredView(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, profileCharts{
		Count:        aggregate.Count(view),
		DegreeCounts: aggregate.ValueCounts(view, survey.ColDegree),
		SexCounts:    aggregate.ValueCounts(view, survey.ColSex),
	})
}

type employmentCharts struct {
	Count               int                      `json:"count"`
	TopFields           aggregate.FrequencyTable `json:"top_fields"`
	SalaryHistogram     aggregate.Histogram      `json:"salary_histogram"`
	ApplicationsSummary aggregate.NumericSummary `json:"applications_summary"`
	HasApplications     bool                     `json:"has_applications"`
}

func (a *App) handleEmploymentCharts(w http.ResponseWriter, r *http.Request) {
	view, err := a.filteredView(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	summary, hasApps := aggregate.SummarizeNumeric(view, survey.ColApplications)
	a.writeJSON(w, http.StatusOK, employmentCharts{
		Count:               aggregate.Count(view),
		TopFields:           aggregate.TopN(view, survey.ColField, topFieldsLimit),
		SalaryHistogram:     aggregate.HistogramOf(view, survey.ColSalary, salaryBins),
		ApplicationsSummary: summary,
		HasApplications:     hasApps,
	})
}

type skillsCharts struct {
	Count             int                      `json:"count"`
	ComputerSkills    aggregate.FrequencyTable `json:"computer_skills"`
	TrainingHistogram aggregate.Histogram      `json:"training_histogram"`
	LinkedInCounts    aggregate.FrequencyTable `json:"linkedin_counts"`
}

func (a *App) handleSkillsCharts(w http.ResponseWriter, r *http.Request) {
	view, err := a.filteredView(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, skillsCharts{
		Count:             aggregate.Count(view),
		ComputerSkills:    aggregate.ValueCounts(view, survey.ColComputerSkill),
		TrainingHistogram: aggregate.HistogramOf(view, survey.ColTraining, trainingBins),
		LinkedInCounts:    aggregate.ValueCounts(view, survey.ColLinkedIn),
	})
}

type mobilityCharts struct {
	Count            int                      `json:"count"`
	MobilityCounts   aggregate.FrequencyTable `json:"mobility_counts"`
	MobilityByDegree []aggregate.PairCount    `json:"mobility_by_degree"`
	DifficultyMatrix aggregate.CrossTabTable  `json:"difficulty_matrix"`
}

func (a *App) handleMobilityCharts(w http.ResponseWriter, r *http.Request) {
	view, err := a.filteredView(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, mobilityCharts{
		Count:            aggregate.Count(view),
		MobilityCounts:   aggregate.ValueCounts(view, survey.ColMobility),
		MobilityByDegree: aggregate.GroupPairCounts(view, survey.ColDegree, survey.ColMobility),
		DifficultyMatrix: aggregate.CrossTab(view, survey.ColDifficulty, survey.ColDegree),
	})
}

func (a *App) filteredView(r *http.Request) (survey.View, error) {
	dataset, err := a.currentDataset(r)
	if err != nil {
		return survey.View{}, err
	}
	return filter.Apply(dataset, stateFromQuery(r)), nil
}
