package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mediaplan/internal/adapter/scrape"
	"mediaplan/internal/adapter/usecase"
	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
	"mediaplan/internal/core/port/mocks"
	"mediaplan/internal/pkg/httpretry"
)

type env struct {
	countries *mocks.MockCountryDirectory
	social    *mocks.MockSocialMediaSource
	scraper   *mocks.MockPageScraper
	summ      *mocks.MockSummarizer
	server    *httptest.Server
}

func newEnv(t *testing.T) env {
	return newEnvWith(t, nil)
}

// newEnvWith serves the API; a non-nil scraper replaces the mocked one.
func newEnvWith(t *testing.T, scraper port.PageScraper) env {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	table, err := domain.NewBenchmarkTable([]domain.IndustryBenchmark{{
		Industry:              "E-commerce",
		AvgCPC:                1.2,
		CostPerConversion:     25,
		CTRPercent:            domain.Known(2.0),
		ConversionRate:        domain.Known(0.02),
		AverageSpendByCountry: map[string]float64{"India": 25000, domain.AverageKey: 31500},
	}})
	require.NoError(t, err)

	e := env{
		countries: mocks.NewMockCountryDirectory(t),
		social:    mocks.NewMockSocialMediaSource(t),
		scraper:   mocks.NewMockPageScraper(t),
		summ:      mocks.NewMockSummarizer(t),
	}
	if scraper == nil {
		scraper = e.scraper
	}
	svc := usecase.NewPlannerUseCase(table, usecase.Deps{
		Countries:  e.countries,
		Social:     e.social,
		Scraper:    scraper,
		Summarizer: e.summ,
	}, logger)

	h := NewHandler(svc, logger, Options{
		AllowedOrigins: []string{"http://localhost:5173"},
		Registry:       prometheus.NewRegistry(),
	})
	e.server = httptest.NewServer(h.Router())
	t.Cleanup(e.server.Close)
	return e
}

func (e env) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, e.server.URL+path, rd)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestHealthzAndRequestID(t *testing.T) {
	e := newEnv(t)

	resp, body := e.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))
}

func TestRequestIDIsPropagated(t *testing.T) {
	e := newEnv(t)

	req, err := http.NewRequest(http.MethodGet, e.server.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(requestIDHeader, "abc-123")
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(requestIDHeader))
}

func TestIndustries(t *testing.T) {
	e := newEnv(t)

	resp, body := e.do(t, http.MethodGet, "/api/v1/industries", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"industries":["E-commerce"]}`, string(body))
}

func TestCountries(t *testing.T) {
	e := newEnv(t)
	e.countries.EXPECT().Countries(mock.Anything).
		Return(domain.NewCountryCatalog(map[string]string{"India": "IN", "Peru": "PE"}), nil).Once()
	e.countries.EXPECT().Countries(mock.Anything).
		Return(domain.CountryCatalog{}, errors.New("down")).Once()

	resp, body := e.do(t, http.MethodGet, "/api/v1/countries", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"countries":["India","Peru"]}`, string(body))

	resp, _ = e.do(t, http.MethodGet, "/api/v1/countries", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestMediaPlanEndpoint(t *testing.T) {
	e := newEnv(t)

	resp, body := e.do(t, http.MethodPost, "/api/v1/media-plan", `{"industry":"E-commerce","country":"India","budget":1000}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Industry string `json:"industry"`
		Plan     struct {
			Impressions       float64 `json:"impressions"`
			Clicks            float64 `json:"clicks"`
			Conversions       float64 `json:"conversions"`
			CostPerConversion float64 `json:"cost_per_conversion"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "E-commerce", out.Industry)
	assert.InDelta(t, 833.33, out.Plan.Impressions, 0.01)
	assert.InDelta(t, 16.67, out.Plan.Clicks, 0.01)
	assert.InDelta(t, 0.33, out.Plan.Conversions, 0.01)
	assert.Equal(t, 25.0, out.Plan.CostPerConversion)
}

func TestMediaPlanEndpointErrors(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"bad json", `{"industry":`, http.StatusBadRequest},
		{"unknown field", `{"industry":"E-commerce","budget":1,"cpc":2}`, http.StatusBadRequest},
		{"zero budget", `{"industry":"E-commerce","budget":0}`, http.StatusBadRequest},
		{"unknown industry", `{"industry":"Mining","budget":100}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := e.do(t, http.MethodPost, "/api/v1/media-plan", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, string(body), `"error"`)
		})
	}
}

func TestProposalEndpoint(t *testing.T) {
	e := newEnv(t)
	e.countries.EXPECT().Countries(mock.Anything).
		Return(domain.NewCountryCatalog(map[string]string{"India": "IN"}), nil)
	e.countries.EXPECT().Population(mock.Anything, "India").Return(domain.Known(int64(1000)), nil)
	e.social.EXPECT().SocialMediaUsers(mock.Anything, "India").Return(domain.Unknown[float64](), nil)

	resp, body := e.do(t, http.MethodGet, "/api/v1/proposal?industry=E-commerce&country=India", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	p := out["proposal"]
	assert.Equal(t, "IN", p["country_code"])
	assert.Equal(t, 510.0, p["male_count"])
	assert.Nil(t, p["active_social_media_users_millions"])
	assert.Equal(t, -6500.0, p["spend_delta"])
	assert.Contains(t, out["charts"], "population")
	assert.NotContains(t, out["charts"], "social_media")
}

func TestProposalEndpointRequiresParams(t *testing.T) {
	e := newEnv(t)
	resp, _ := e.do(t, http.MethodGet, "/api/v1/proposal?industry=E-commerce", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContentEndpoints(t *testing.T) {
	e := newEnv(t)
	e.scraper.EXPECT().ScrapeText(mock.Anything, "https://bakery.example").Return("Fresh bread daily.", nil)
	e.summ.EXPECT().Summarize(mock.Anything, "Fresh bread daily.").Return("fresh bread", nil)

	resp, body := e.do(t, http.MethodPost, "/api/v1/content", `{"url":"https://bakery.example","country":"Canada"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Looking for fresh bread? Get the best services in Canada now!")

	resp, body = e.do(t, http.MethodPost, "/api/v1/content/render", `{"summary":"yoga classes","country":"Peru"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Blog string `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Are you looking for the best yoga classes? Look no further!\n\n"+
		"In Peru, our yoga classes services stand out for their quality and reliability.", out.Blog)

	resp, _ = e.do(t, http.MethodPost, "/api/v1/content", `{"url":"mailto:a@b.c"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContentEndpointUpstreamFailure(t *testing.T) {
	e := newEnv(t)
	e.scraper.EXPECT().ScrapeText(mock.Anything, "https://down.example").Return("", errors.New("503"))

	resp, body := e.do(t, http.MethodPost, "/api/v1/content", `{"url":"https://down.example"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.NotContains(t, string(body), "503")
}

func TestMetricsEndpoint(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodGet, "/api/v1/industries", "")

	resp, body := e.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `mediaplan_http_requests_total{method="GET",route="/api/v1/industries",status="200"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	e := newEnv(t)

	req, err := http.NewRequest(http.MethodOptions, e.server.URL+"/api/v1/media-plan", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestContentEndpointRefusesInternalURL(t *testing.T) {
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<p>root:x:0:0</p>"))
	}))
	defer internal.Close()

	e := newEnvWith(t, scrape.NewWebpage(httpretry.NewPublicClient(time.Second)))

	resp, body := e.do(t, http.MethodPost, "/api/v1/content", `{"url":"`+internal.URL+`","country":"India"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotContains(t, string(body), "root:x")
}
