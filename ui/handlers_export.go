package ui

import (
	"fmt"
	"net/http"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/adapters/csvfile"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/adapters/excel"
)

// handleExportCSV streams the currently filtered view as a CSV download in
// the source dialect. Nothing is persisted server-side.
func (a *App) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	view, err := a.filteredView(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	payload, err := csvfile.Export(view)
	if err != nil {
		a.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvfile.ExportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		a.log.Error("csv export write failed: %v", err)
	}
}

// handleExportXLSX streams the filtered view as an XLSX workbook.
func (a *App) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	view, err := a.filteredView(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	payload, err := excel.ExportXLSX(view)
	if err != nil {
		a.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", excel.ExportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		a.log.Error("xlsx export write failed: %v", err)
	}
}
