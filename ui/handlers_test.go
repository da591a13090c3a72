package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/config"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/datacache"
)

const testCSV = "\uFEFFID,Âge,Sexe,Diplôme,Q1_Domaine,Q2_Stage,Q3_Difficulté,Q4_Informatique,Q5_Langues,Q6_Salaire_ZAR,Q7_Mobilité,Q8_Formation,Q9_Entreprenariat,Q10_LinkedIn,Q11_Candidatures,Q12_Mentorat\n" +
	"1,22,F,Licence,Informatique,Oui,Manque d'expérience,Avancé,Anglais,10000,Oui,4,Non,Oui,5,Oui\n" +
	"2,25,M,Master,Santé,Oui,Réseau limité,Moyen,Anglais;Zoulou,14000,Non,3,Oui,Oui,8,Non\n" +
	"3,30,F,Licence,Informatique,Non,Manque d'expérience,Faible,Anglais,12000,Oui,5,Non,Non,2,Oui\n"

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "0"},
		Data:     config.DataConfig{CSVPath: path, CacheTTL: time.Minute},
		Refresh:  config.RefreshConfig{Enabled: false, Interval: 30 * time.Second},
		Keywords: config.KeywordConfig{DefaultColumn: "Q1_Domaine", MinLength: 3},
	}

	app, err := NewApp(cfg, datacache.New(cfg.Data.CacheTTL), internal.NewLogger(internal.LogLevelError))
	require.NoError(t, err)
	return app, path
}

func getJSON(t *testing.T, app *App, target string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestHandleKPIs(t *testing.T) {
	app, _ := newTestApp(t)

	var kpis kpiResponse
	rec := getJSON(t, app, "/api/kpis", &kpis)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, kpis.Respondents)
	assert.InDelta(t, 12000, kpis.MeanSalary, 1e-9)
	assert.Equal(t, "12 000", kpis.MeanSalaryLabel)
	assert.InDelta(t, 66.7, kpis.InternshipRate, 1e-9)
	assert.InDelta(t, 66.7, kpis.MobilityRate, 1e-9)
	assert.InDelta(t, 33.3, kpis.EntrepreneurshipRate, 1e-9)
}

func TestHandleKPIs_FilteredByAgeRange(t *testing.T) {
	app, _ := newTestApp(t)

	var kpis kpiResponse
	getJSON(t, app, "/api/kpis?age_min=23&age_max=30", &kpis)
	assert.Equal(t, 2, kpis.Respondents)
}

func TestHandleKPIs_EmptyViewIsNotAnError(t *testing.T) {
	app, _ := newTestApp(t)

	var kpis kpiResponse
	rec := getJSON(t, app, "/api/kpis?diplome=Doctorat", &kpis)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, kpis.Respondents)
	assert.Zero(t, kpis.MeanSalary)
	assert.Zero(t, kpis.InternshipRate)
}

func TestHandleKPIs_MissingSource(t *testing.T) {
	app, path := newTestApp(t)
	require.NoError(t, os.Remove(path))

	rec := getJSON(t, app, "/api/kpis", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleMobilityCharts_CrossTabHasZeroCells(t *testing.T) {
	app, _ := newTestApp(t)

	var charts mobilityCharts
	rec := getJSON(t, app, "/api/charts/mobility", &charts)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, charts.DifficultyMatrix.RowValues)
	// "Réseau limité" × "Licence" never co-occurs; the cell must exist as 0.
	foundZero := false
	for _, row := range charts.DifficultyMatrix.Counts {
		for _, n := range row {
			if n == 0 {
				foundZero = true
			}
		}
	}
	assert.True(t, foundZero)
}

func TestHandleWordcloud(t *testing.T) {
	app, _ := newTestApp(t)

	var resp wordcloudResponse
	rec := getJSON(t, app, "/api/wordcloud", &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Q1_Domaine", resp.Column)
	require.NotEmpty(t, resp.Keywords)
	assert.Equal(t, "informatique", resp.Keywords[0].Word)
	assert.Equal(t, 2, resp.Keywords[0].Count)
}

func TestHandleWordcloud_RejectsNumericColumn(t *testing.T) {
	app, _ := newTestApp(t)
	rec := getJSON(t, app, "/api/wordcloud?column=Q6_Salaire_ZAR", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExportCSV_RoundTripsThroughFilters(t *testing.T) {
	app, _ := newTestApp(t)

	rec := getJSON(t, app, "/export/csv?diplome=Licence", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "donnees_filtrees.csv")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFF"))
	assert.Equal(t, 3, strings.Count(body, "\n"), "header plus the two Licence rows")
}

func TestHandleAppendResponse(t *testing.T) {
	app, path := newTestApp(t)

	form := url.Values{
		"age": {"24"}, "sexe": {"F"}, "diplome": {"Master"}, "domaine": {"Informatique"},
		"stage": {"Oui"}, "difficulte": {"Réseau limité"}, "informatique": {"Avancé"},
		"langues": {"Anglais"}, "salaire": {"15000"}, "mobilite": {"Oui"}, "formation": {"4"},
		"entreprenariat": {"Non"}, "linkedin": {"Oui"}, "candidatures": {"6"}, "mentorat": {"Non"},
	}
	req := httptest.NewRequest(http.MethodPost, "/responses", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 4, result.ID)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "4,24,F,Master")

	// The cache was invalidated: the next read observes the new row.
	var kpis kpiResponse
	getJSON(t, app, "/api/kpis", &kpis)
	assert.Equal(t, 4, kpis.Respondents)
}

func TestHandleAppendResponse_InvalidAge(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{"age": {"15"}, "sexe": {"F"}, "diplome": {"Master"}, "domaine": {"Santé"}}
	req := httptest.NewRequest(http.MethodPost, "/responses", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpload_ServesAlternateDataset(t *testing.T) {
	app, _ := newTestApp(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "upload.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("ID,Âge,Sexe,Diplôme\n1,40,F,Doctorat\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result struct {
		Dataset string `json:"dataset"`
		Records int    `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Records)

	var kpis kpiResponse
	getJSON(t, app, "/api/kpis?dataset="+result.Dataset, &kpis)
	assert.Equal(t, 1, kpis.Respondents)
}

func TestHandleIndex_RendersFilterOptions(t *testing.T) {
	app, _ := newTestApp(t)

	rec := getJSON(t, app, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	html := rec.Body.String()
	assert.Contains(t, html, "Licence")
	assert.Contains(t, html, "Q1_Domaine")
	assert.Contains(t, html, "Télécharger les données filtrées")
}
