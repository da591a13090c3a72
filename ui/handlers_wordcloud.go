package ui

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/keywords"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
)

// maxCloudWords caps how many ranked keywords the panel receives.
const maxCloudWords = 150

type wordcloudResponse struct {
	Column    string             `json:"column"`
	Available bool               `json:"available"`
	Keywords  []keywords.Keyword `json:"keywords"`
}

// handleWordcloud returns keyword frequencies of the selected text column
// over the filtered view. An empty result is a valid response; the panel
// shows "not enough text" rather than an error.
func (a *App) handleWordcloud(w http.ResponseWriter, r *http.Request) {
	dataset, err := a.currentDataset(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	column := r.URL.Query().Get("column")
	if column == "" {
		column = a.cfg.Keywords.DefaultColumn
	}
	if !lo.Contains(dataset.TextColumns(), column) {
		a.writeError(w, errors.InvalidInput("column is not a text column: "+column))
		return
	}

	view, err := a.filteredView(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	freq := a.extractor.Extract(view, column)
	a.writeJSON(w, http.StatusOK, wordcloudResponse{
		Column:    column,
		Available: a.wordcloudAvailable,
		Keywords:  keywords.Rank(freq, maxCloudWords),
	})
}
