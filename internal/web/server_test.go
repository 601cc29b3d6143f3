package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/dataset"
	"github.com/emiliopalmerini/polyglot/internal/domain"
	"github.com/emiliopalmerini/polyglot/internal/ports"
)

type MockMetricsExporter struct {
	mu                    sync.Mutex
	Interactions          []ports.Interaction
	ExportInteractionFunc func(ctx context.Context, i *ports.Interaction) error
}

func (m *MockMetricsExporter) ExportInteraction(ctx context.Context, i *ports.Interaction) error {
	m.mu.Lock()
	m.Interactions = append(m.Interactions, *i)
	m.mu.Unlock()
	if m.ExportInteractionFunc != nil {
		return m.ExportInteractionFunc(ctx, i)
	}
	return nil
}

func (m *MockMetricsExporter) Close(ctx context.Context) error {
	return nil
}

func (m *MockMetricsExporter) kinds() []ports.InteractionKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []ports.InteractionKind
	for _, i := range m.Interactions {
		out = append(out, i.Kind)
	}
	return out
}

func testServer(t *testing.T, svc *dashboard.Service) (*Server, *MockMetricsExporter) {
	t.Helper()

	if svc == nil {
		ds, err := dataset.Load()
		if err != nil {
			t.Fatalf("dataset.Load() error: %v", err)
		}
		svc = dashboard.NewService(ds.Records, ds.Languages)
	}

	exp := &MockMetricsExporter{}
	cfg := Config{
		Addr:               ":0",
		ShutdownTimeout:    time.Second,
		SessionKey:         []byte("0123456789abcdef0123456789abcdef"),
		SessionIdleTimeout: time.Hour,
	}
	return NewServer(cfg, svc, exp, zap.NewNop()), exp
}

func do(t *testing.T, s *Server, req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, values url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

// visit loads the page and returns the visitor cookie.
func visit(t *testing.T, s *Server) []*http.Cookie {
	t.Helper()
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Name != sessionName {
		t.Fatalf("expected %s cookie, got %v", sessionName, cookies)
	}
	return cookies
}

func countPhraseCards(html string) int {
	return strings.Count(html, `name="phrase"`)
}

func TestHealth(t *testing.T) {
	s, _ := testServer(t, nil)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/health", nil), nil)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected ok, got %q", rec.Body.String())
	}
}

func TestStaticStylesheet(t *testing.T) {
	s, _ := testServer(t, nil)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/static/style.css", nil), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".dashboard") {
		t.Error("expected stylesheet content")
	}
}

func TestDashboard_FullPage(t *testing.T) {
	s, exp := testServer(t, nil)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<!doctype html>", "Total Phrases", "Phrase Explorer", `<p class="metric-value">14</p>`, `<p class="metric-value">Dutch</p>`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
	if n := countPhraseCards(body); n != 14 {
		t.Errorf("expected 14 phrase cards, got %d", n)
	}
	if kinds := exp.kinds(); len(kinds) != 1 || kinds[0] != ports.InteractionView {
		t.Errorf("expected one view interaction, got %v", kinds)
	}
}

func TestSelectLanguage_HTMXReturnsFragment(t *testing.T) {
	s, _ := testServer(t, nil)
	cookies := visit(t, s)

	rec := do(t, s, postForm("/select/language", url.Values{"lang": {"fr"}}, true), cookies)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!doctype html>") {
		t.Error("expected a fragment, got a full page")
	}
	if !strings.Contains(body, "Phrase Explorer - French") {
		t.Error("expected French explorer title")
	}
	if n := countPhraseCards(body); n != 2 {
		t.Errorf("expected 2 French phrases, got %d", n)
	}
	if !strings.Contains(body, `<p class="metric-value">14</p>`) {
		t.Error("expected metrics to stay unfiltered")
	}
}

func TestSelectLanguage_FormPostRedirects(t *testing.T) {
	s, exp := testServer(t, nil)
	cookies := visit(t, s)

	rec := do(t, s, postForm("/select/language", url.Values{"lang": {"it"}}, false), cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}

	page := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil), cookies).Body.String()
	if !strings.Contains(page, "Phrase Explorer - Italian") {
		t.Error("expected the filter to persist for the visitor")
	}
	if n := countPhraseCards(page); n != 3 {
		t.Errorf("expected 3 Italian phrases, got %d", n)
	}

	var sawSelect bool
	for _, i := range exp.Interactions {
		if i.Kind == ports.InteractionSelectLanguage && i.Language == "it" && i.Surface == ports.SurfaceWeb {
			sawSelect = true
		}
	}
	if !sawSelect {
		t.Errorf("expected select_language interaction, got %+v", exp.Interactions)
	}
}

func TestSelectPhrase(t *testing.T) {
	s, _ := testServer(t, nil)
	cookies := visit(t, s)

	rec := do(t, s, postForm("/select/phrase", url.Values{"phrase": {"3"}}, true), cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Count(body, `class="phrase selected"`) != 1 {
		t.Error("expected exactly one selected phrase")
	}

	// Selecting the same phrase again keeps it selected.
	body = do(t, s, postForm("/select/phrase", url.Values{"phrase": {"3"}}, true), cookies).Body.String()
	if strings.Count(body, `class="phrase selected"`) != 1 {
		t.Error("expected repeated selection to keep the phrase selected")
	}
}

func TestSelect_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		values url.Values
	}{
		{name: "unknown language", path: "/select/language", values: url.Values{"lang": {"xx"}}},
		{name: "missing language", path: "/select/language", values: url.Values{}},
		{name: "non numeric phrase", path: "/select/phrase", values: url.Values{"phrase": {"abc"}}},
		{name: "phrase out of range", path: "/select/phrase", values: url.Values{"phrase": {"99"}}},
		{name: "negative phrase", path: "/select/phrase", values: url.Values{"phrase": {"-1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testServer(t, nil)
			rec := do(t, s, postForm(tt.path, tt.values, true), nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestVisitorsAreIsolated(t *testing.T) {
	s, _ := testServer(t, nil)
	alice := visit(t, s)
	bob := visit(t, s)

	do(t, s, postForm("/select/language", url.Values{"lang": {"de"}}, true), alice)

	page := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil), bob).Body.String()
	if strings.Contains(page, "Phrase Explorer - German") {
		t.Error("expected another visitor's filter not to leak")
	}
	if n := countPhraseCards(page); n != 14 {
		t.Errorf("expected 14 phrases for a fresh visitor, got %d", n)
	}
}

func TestExporterFailureDoesNotBreakRequests(t *testing.T) {
	s, exp := testServer(t, nil)
	exp.ExportInteractionFunc = func(ctx context.Context, i *ports.Interaction) error {
		return errors.New("collector down")
	}

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestAPIStats(t *testing.T) {
	s, _ := testServer(t, nil)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/api/stats", nil), nil)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var got dashboard.Stats
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 14 || got.Languages != 5 || got.TopLanguage != "Dutch" || got.ActiveDays != 3 {
		t.Errorf("unexpected stats: %+v", got)
	}
	if len(got.Summaries) != 5 || got.Summaries[0].Code != "nl" || got.Summaries[0].Count != 5 {
		t.Errorf("unexpected summaries: %+v", got.Summaries)
	}
}

func TestCharts(t *testing.T) {
	s, _ := testServer(t, nil)

	for _, path := range []string{"/charts/distribution.svg", "/charts/phrases-by-language.svg"} {
		t.Run(path, func(t *testing.T) {
			rec := do(t, s, httptest.NewRequest(http.MethodGet, path, nil), nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
				t.Errorf("expected image/svg+xml, got %s", ct)
			}
			if !strings.Contains(rec.Body.String(), "<svg") {
				t.Error("expected svg body")
			}
		})
	}
}

func TestEmptyDataset(t *testing.T) {
	s, _ := testServer(t, dashboard.NewService(nil, domain.NewCatalog()))

	page := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil), nil).Body.String()
	if !strings.Contains(page, "No data") {
		t.Error("expected chart placeholders")
	}
	if !strings.Contains(page, `<p class="metric-value">-</p>`) {
		t.Error("expected placeholder top language")
	}

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/charts/distribution.svg", nil), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for empty chart, got %d", rec.Code)
	}
}
