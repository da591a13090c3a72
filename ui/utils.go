package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
)

// FormatThousands renders a float as an integer with spaces as thousands
// separators, the KPI card format ("12 000").
func FormatThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, " ")
	if negative {
		out = "-" + out
	}
	return out
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.log.Error("failed to encode response: %v", err)
	}
}

// writeError maps application error codes to HTTP statuses and surfaces the
// full error message (underlying causes included) to the client.
func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeMissingFile, errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeParseFailure, errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeWriteFailure:
		status = http.StatusInternalServerError
	}
	a.log.Error("request failed (%s): %v", errors.GetCode(err), err)
	a.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

// currentDataset resolves the dataset a request operates on: an uploaded
// dataset when the request carries its upload ID, otherwise the configured
// CSV through the TTL cache.
func (a *App) currentDataset(r *http.Request) (survey.Dataset, error) {
	if uploadID := r.URL.Query().Get("dataset"); uploadID != "" {
		a.uploadsMu.RLock()
		dataset, ok := a.uploads[uploadID]
		a.uploadsMu.RUnlock()
		if !ok {
			return survey.Dataset{}, errors.NotFound(fmt.Sprintf("uploaded dataset %s", uploadID))
		}
		return dataset, nil
	}
	return a.cache.Get(a.cfg.Data.CSVPath)
}
