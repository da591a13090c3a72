// Package ui is the presentation layer: a chi application serving the
// dashboard page, chart-data endpoints, exports and the response form. All
// derivations run through the domain packages; handlers only decode a
// filter state per request and encode results.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/keywords"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/config"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/datacache"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	cfg       *config.Config
	cache     *datacache.Cache
	extractor *keywords.Extractor
	templates *template.Template
	log       *internal.Logger

	// wordcloudAvailable is resolved at startup; when false the word-cloud
	// panel degrades to a ranked keyword list but extraction still runs.
	wordcloudAvailable bool

	// Uploaded datasets live for the session only, keyed by upload ID, and
	// bypass the path-based cache entirely.
	uploadsMu sync.RWMutex
	uploads   map[string]survey.Dataset
}

// NewApp creates a new UI application
func NewApp(cfg *config.Config, cache *datacache.Cache, log *internal.Logger) (*App, error) {
	extractor := keywords.NewExtractor()
	if cfg.Keywords.MinLength > 0 {
		extractor.MinLength = cfg.Keywords.MinLength
	}

	templates, err := template.New("").Funcs(template.FuncMap{
		"kfmt": FormatThousands,
	}).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:             chi.NewRouter(),
		cfg:                cfg,
		cache:              cache,
		extractor:          extractor,
		templates:          templates,
		log:                log.WithPrefix("UI"),
		wordcloudAvailable: resolveWordcloudCapability(),
		uploads:            make(map[string]survey.Dataset),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)

	a.router.Get("/api/kpis", a.handleKPIs)
	a.router.Get("/api/charts/profile", a.handleProfileCharts)
	a.router.Get("/api/charts/employment", a.handleEmploymentCharts)
	a.router.Get("/api/charts/skills", a.handleSkillsCharts)
	a.router.Get("/api/charts/mobility", a.handleMobilityCharts)
	a.router.Get("/api/wordcloud", a.handleWordcloud)

	a.router.Get("/export/csv", a.handleExportCSV)
	a.router.Get("/export/xlsx", a.handleExportXLSX)

	a.router.Post("/responses", a.handleAppendResponse)
	a.router.Post("/upload", a.handleUpload)
}

// Router exposes the chi mux for serving and for handler tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Run starts the HTTP server.
func (a *App) Run() error {
	addr := ":" + a.cfg.Server.Port
	a.log.Info("dashboard listening on %s (source %s)", addr, a.cfg.Data.CSVPath)
	return http.ListenAndServe(addr, a.router)
}

// resolveWordcloudCapability reports whether the browser-side word-cloud
// renderer is bundled. The extractor works either way; this only switches
// the panel between cloud and ranked list.
func resolveWordcloudCapability() bool {
	_, err := embeddedFiles.ReadFile("static/wordcloud.js")
	return err == nil
}
