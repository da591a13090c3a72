package ui

import (
	"net/http"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// indexData feeds the dashboard template: filter widget options derived
// from the full dataset plus the word-cloud column choices.
type indexData struct {
	Title              string
	AgeMin             int
	AgeMax             int
	SexOptions         []string
	DegreeOptions      []string
	FieldOptions       []string
	InternshipOptions  []string
	MobilityOptions    []string
	LinkedInOptions    []string
	DifficultyOptions  []string
	SkillOptions       []string
	LanguageOptions    []string
	TextColumns        []string
	DefaultCloudColumn string
	WordcloudAvailable bool
	RefreshEnabled     bool
	RefreshSeconds     int
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	dataset, err := a.currentDataset(r)
	if err != nil {
		// Load failures halt the render cycle; no partial dashboard.
		a.writeError(w, err)
		return
	}

	ageMin, ageMax, ok := dataset.AgeBounds()
	if !ok {
		ageMin, ageMax = 18, 60
	}

	data := indexData{
		Title:              "Dashboard – Enquête Jeunes Diplômés (Afrique du Sud)",
		AgeMin:             ageMin,
		AgeMax:             ageMax,
		SexOptions:         dataset.DistinctValues(survey.ColSex),
		DegreeOptions:      dataset.DistinctValues(survey.ColDegree),
		FieldOptions:       dataset.DistinctValues(survey.ColField),
		InternshipOptions:  dataset.DistinctValues(survey.ColInternship),
		MobilityOptions:    dataset.DistinctValues(survey.ColMobility),
		LinkedInOptions:    dataset.DistinctValues(survey.ColLinkedIn),
		DifficultyOptions:  dataset.DistinctValues(survey.ColDifficulty),
		SkillOptions:       dataset.DistinctValues(survey.ColComputerSkill),
		LanguageOptions:    dataset.DistinctValues(survey.ColLanguages),
		TextColumns:        dataset.TextColumns(),
		DefaultCloudColumn: a.cfg.Keywords.DefaultColumn,
		WordcloudAvailable: a.wordcloudAvailable,
		RefreshEnabled:     a.cfg.Refresh.Enabled,
		RefreshSeconds:     int(a.cfg.Refresh.Interval.Seconds()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		a.log.Error("failed to render dashboard: %v", err)
	}
}
