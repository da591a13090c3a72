package ui

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/adapters/csvfile"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
)

// formFields maps response-form field names to survey columns. The
// identifier is assigned by the appender, never by the form.
var formFields = map[string]string{
	"age":            survey.ColAge,
	"sexe":           survey.ColSex,
	"diplome":        survey.ColDegree,
	"domaine":        survey.ColField,
	"stage":          survey.ColInternship,
	"difficulte":     survey.ColDifficulty,
	"informatique":   survey.ColComputerSkill,
	"langues":        survey.ColLanguages,
	"salaire":        survey.ColSalary,
	"mobilite":       survey.ColMobility,
	"formation":      survey.ColTraining,
	"entreprenariat": survey.ColEntrepreneurship,
	"linkedin":       survey.ColLinkedIn,
	"candidatures":   survey.ColApplications,
	"mentorat":       survey.ColMentorship,
}

// handleAppendResponse appends one survey response to the persisted CSV and
// invalidates the cache so the next load observes it. Append and reload are
// deliberately two separate steps: the append only touches the file, never
// the in-memory dataset.
func (a *App) handleAppendResponse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.writeError(w, errors.InvalidInput("malformed form data"))
		return
	}

	candidate := survey.Record{}
	for field, column := range formFields {
		candidate[column] = r.PostFormValue(field)
	}

	id, err := csvfile.Append(a.cfg.Data.CSVPath, candidate)
	if err != nil {
		// Append failures are recoverable; the session dataset is intact
		// and the user may retry the form.
		a.writeError(w, err)
		return
	}

	a.cache.Invalidate(a.cfg.Data.CSVPath)
	a.log.Info("appended response %d to %s", id, a.cfg.Data.CSVPath)
	a.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     id,
		"status": "added",
	})
}

// handleUpload accepts a CSV file and serves it as the session dataset under
// a fresh upload ID, bypassing the path-based cache.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, errors.InvalidInput("missing uploaded file"))
		return
	}
	defer file.Close()

	dataset, err := csvfile.Parse(file)
	if err != nil {
		a.writeError(w, errors.ParseFailure("uploaded file", err))
		return
	}

	uploadID := uuid.NewString()
	a.uploadsMu.Lock()
	a.uploads[uploadID] = dataset
	a.uploadsMu.Unlock()

	a.log.Info("uploaded dataset %s (%d records)", uploadID, dataset.Len())
	a.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"dataset": uploadID,
		"records": dataset.Len(),
	})
}
