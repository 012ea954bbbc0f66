package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

var testParams = weather.Params{Start: weather.DefaultStart, Days: weather.DefaultDays, Seed: 42}

type failingService struct{}

func (failingService) Generate(weather.Params) (weather.Series, error) {
	return weather.Series{}, errors.New("boom")
}

// flakyService succeeds until fail is set.
type flakyService struct {
	inner weather.Service
	fail  bool
}

func (f *flakyService) Generate(p weather.Params) (weather.Series, error) {
	if f.fail {
		return weather.Series{}, errors.New("boom")
	}
	return f.inner.Generate(p)
}

func newTestServer(t *testing.T, svc weather.Service) (*Server, *httptest.Server) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := NewServer(svc, testParams, "oberursel_weather_30days.csv", logger, NewMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	router := mux.NewRouter()
	srv.RegisterRoutes(router)
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return srv, ts
}

func getJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestNewServerGeneratesInitialSeries(t *testing.T) {
	srv, _ := newTestServer(t, weather.NewService())

	assert.Equal(t, weather.DefaultDays, srv.series.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.SeriesGenerated))
}

func TestNewServerPropagatesGenerateError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewServer(failingService{}, testParams, "x.csv", logger, NewMetrics(prometheus.NewRegistry()))
	assert.Error(t, err)
}

func TestGetSeries(t *testing.T) {
	srv, ts := newTestServer(t, weather.NewService())

	resp, err := ts.Client().Get(ts.URL + "/api/series")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body := getJSON[SeriesResponse](t, resp)
	require.Len(t, body.Records, weather.DefaultDays)
	assert.Equal(t, srv.series.ID, body.ID)
	assert.Equal(t, "2025-05-17", body.Start)
	assert.Equal(t, "2025-06-15", body.End)
	assert.Equal(t, "17/05/2025", body.Records[0].Date)
	assert.Equal(t, "15/06/2025", body.Records[29].Date)

	first := srv.series.Records[0]
	assert.Equal(t, first.VPD.StringFixed(3), body.Records[0].VPD)
	assert.Equal(t, weather.ClassifyVPD(first.VPD.InexactFloat64()).Label, body.Records[0].VPDBand)
	assert.Equal(t, srv.summary.AvgPAR, body.Summary.AvgPAR)
}

func TestGetSummaryMatchesSummarize(t *testing.T) {
	srv, ts := newTestServer(t, weather.NewService())

	resp, err := ts.Client().Get(ts.URL + "/api/summary")
	require.NoError(t, err)
	body := getJSON[SummaryResponse](t, resp)

	want, err := weather.Summarize(srv.series)
	require.NoError(t, err)
	assert.Equal(t, want.AvgTemp.InexactFloat64(), body.AvgTemp)
	assert.Equal(t, want.AvgHumidity.InexactFloat64(), body.AvgHumidity)
	assert.Equal(t, want.AvgVPD.InexactFloat64(), body.AvgVPD)
	assert.Equal(t, want.AvgPAR, body.AvgPAR)
}

func TestGetCSV(t *testing.T) {
	srv, ts := newTestServer(t, weather.NewService())

	resp, err := ts.Client().Get(ts.URL + "/api/series.csv")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="oberursel_weather_30days.csv"`, resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, weather.Serialize(srv.series, weather.Comma), string(data))
	assert.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.ExportsTotal.WithLabelValues("csv")))
}

func TestGetTSV(t *testing.T) {
	srv, ts := newTestServer(t, weather.NewService())

	resp, err := ts.Client().Get(ts.URL + "/api/series.tsv")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date\tTemp_Min_C\t"))
	assert.Len(t, strings.Split(string(data), "\n"), weather.DefaultDays+1)
	assert.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.ExportsTotal.WithLabelValues("tsv")))
	assert.Equal(t, 0.0, testutil.ToFloat64(srv.metrics.ExportsTotal.WithLabelValues("csv")))
}

func TestRegenerateWithQuery(t *testing.T) {
	srv, ts := newTestServer(t, weather.NewService())
	before := srv.series.ID

	resp, err := ts.Client().Post(ts.URL+"/api/series/regenerate?start=2025-01-01&days=7&seed=9", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := getJSON[SeriesResponse](t, resp)
	require.Len(t, body.Records, 7)
	assert.NotEqual(t, before, body.ID)
	assert.Equal(t, "01/01/2025", body.Records[0].Date)
	assert.Equal(t, "07/01/2025", body.Records[6].Date)
	assert.Equal(t, 2.0, testutil.ToFloat64(srv.metrics.SeriesGenerated))

	want, err := weather.Summarize(srv.series)
	require.NoError(t, err)
	assert.Equal(t, want, srv.summary)
}

func TestRegenerateRejectsBadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad start", "start=17/05/2025"},
		{"zero days", "days=0"},
		{"days not a number", "days=abc"},
		{"negative seed", "seed=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, ts := newTestServer(t, weather.NewService())
			before := srv.series.ID

			resp, err := ts.Client().Post(ts.URL+"/api/series/regenerate?"+tt.query, "", nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := getJSON[ErrorResponse](t, resp)
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.Message)
			assert.Equal(t, before, srv.series.ID)
		})
	}
}

func TestRegenerateFailureKeepsSeries(t *testing.T) {
	svc := &flakyService{inner: weather.NewService()}
	srv, ts := newTestServer(t, svc)
	before := srv.series
	svc.fail = true

	resp, err := ts.Client().Post(ts.URL+"/api/series/regenerate", "", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, before, srv.series)
}

func TestRecalculateVPD(t *testing.T) {
	srv, ts := newTestServer(t, weather.NewService())
	want := weather.RecomputeVPD(srv.series)

	resp, err := ts.Client().Post(ts.URL+"/api/series/vpd", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := getJSON[SeriesResponse](t, resp)
	for i, rec := range want.Records {
		assert.Equal(t, rec.VPD.StringFixed(3), body.Records[i].VPD, "day %d", i)
	}
	assert.Equal(t, want.Records, srv.series.Records)
	assert.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.VPDRecomputed))
}

func TestGetVPDBands(t *testing.T) {
	_, ts := newTestServer(t, weather.NewService())

	resp, err := ts.Client().Get(ts.URL + "/api/vpd-bands")
	require.NoError(t, err)
	bands := getJSON[[]VPDBandResponse](t, resp)

	require.Len(t, bands, len(weather.VPDBands()))
	assert.Equal(t, "very humid", bands[0].Label)
	assert.Equal(t, "0.8-1.2 kPa", bands[2].Range)
	assert.Equal(t, ">2.0 kPa", bands[len(bands)-1].Range)
}

func TestHealthCheck(t *testing.T) {
	_, ts := newTestServer(t, weather.NewService())

	resp, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	body := getJSON[map[string]any](t, resp)

	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(weather.DefaultDays), body["days"])
}

func TestMethodsAreEnforced(t *testing.T) {
	_, ts := newTestServer(t, weather.NewService())

	resp, err := ts.Client().Get(ts.URL + "/api/series/regenerate")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestInstrumentObservesDuration(t *testing.T) {
	srv, ts := newTestServer(t, weather.NewService())

	for range 3 {
		resp, err := ts.Client().Get(ts.URL + "/api/summary")
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 1, testutil.CollectAndCount(srv.metrics.APIRequestDuration))
}
