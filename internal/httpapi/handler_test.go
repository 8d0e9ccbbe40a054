package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/alexanderramin/worklog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*httptest.Server, repository.EntryRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteEntryRepo(database)
	uow := testutil.NewTestUoW(database)
	api := &API{
		Entries:   service.NewEntryService(repo, uow),
		Dashboard: service.NewDashboardService(repo, service.DashboardDefaults{Location: time.UTC}),
		Export:    service.NewExportService(repo),
		Now:       func() time.Time { return testutil.FixedNow },
	}
	srv := httptest.NewServer(api.Handler(nil))
	t.Cleanup(srv.Close)
	return srv, repo
}

func postEntry(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/entries", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateAndListEntries(t *testing.T) {
	srv, _ := testServer(t)

	resp := postEntry(t, srv, `{"date":"2024-01-09","worker":"James Chen","category":"Badges","hours":1,"minutes":30,"notes":"rush"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created domain.TimeEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.InDelta(t, 1.5, created.DurationHours, 1e-9)

	resp = postEntry(t, srv, `{"date":"2024-01-08","worker":"Emma Thompson","category":"Posters","durationHours":2.25}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	list, err := http.Get(srv.URL + "/entries?worker=James%20Chen")
	require.NoError(t, err)
	defer list.Body.Close()
	var body entryListResponse
	require.NoError(t, json.NewDecoder(list.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Entries, 1)
	assert.Equal(t, created.ID, body.Entries[0].ID)
}

func TestCreateEntry_Invalid(t *testing.T) {
	srv, _ := testServer(t)

	cases := []string{
		`{"date":"2024-01-09","worker":"","category":"Badges","hours":1}`,
		`{"date":"2024-01-09","worker":"A","category":"Badges","minutes":75}`,
		`{"date":"2024-01-09","worker":"A","category":"Badges","bogus":true}`,
		`{"date":"2024-01-09","worker":"A","category":"Badges"}`,
		`not json`,
	}
	for _, body := range cases {
		resp := postEntry(t, srv, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestGetAndDeleteEntry(t *testing.T) {
	srv, repo := testServer(t)
	e := testutil.NewTestEntry()
	require.NoError(t, repo.Create(t.Context(), e))

	resp, err := http.Get(srv.URL + "/entries/" + e.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/entries/"+e.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClearEntries(t *testing.T) {
	srv, repo := testServer(t)
	require.NoError(t, repo.Create(t.Context(), testutil.NewTestEntry()))
	require.NoError(t, repo.Create(t.Context(), testutil.NewTestEntry()))

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/entries", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body["deleted"])
}

func TestDashboard(t *testing.T) {
	srv, repo := testServer(t)
	for _, e := range []domain.TimeEntry{
		testutil.Entry("2024-01-08", "A", "X", 2),
		testutil.Entry("2024-01-09", "B", "Y", 1),
	} {
		require.NoError(t, repo.Create(t.Context(), &e))
	}

	resp, err := http.Get(srv.URL + "/dashboard?days=3")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body service.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-01-10", body.Today)
	assert.Len(t, body.Series, 3)
	assert.InDelta(t, 3, body.Metrics.WeeklyTotalHours, 1e-9)
	assert.Equal(t, "A", body.Metrics.TopWorker)
	assert.Equal(t, 2, body.EntryCount)
}

func TestDashboard_BadParams(t *testing.T) {
	srv, _ := testServer(t)
	for _, q := range []string{"days=0", "days=x", "days=367", "days=2000000000", "weekStart=someday", "today=2024-13-45"} {
		resp, err := http.Get(srv.URL + "/dashboard?" + q)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestDashboard_DaysAtLimit(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/dashboard?days=366")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body service.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Series, analytics.MaxSeriesDays)
}

func TestExportCSV(t *testing.T) {
	srv, repo := testServer(t)

	resp, err := http.Get(srv.URL + "/export.csv")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	e := testutil.Entry("2024-01-08", "A", "X", 0.5)
	require.NoError(t, repo.Create(t.Context(), &e))

	resp, err = http.Get(srv.URL + "/export.csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "worklog-export.csv")

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Date,Worker,Category,Hours,Minutes,Notes\n2024-01-08,A,X,0,30,\n", buf.String())
}

func TestHandler_AccessLog(t *testing.T) {
	var logBuf bytes.Buffer
	api := &API{}
	rec := httptest.NewRecorder()
	api.Handler(&logBuf).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logBuf.String(), `"GET /health HTTP/1.1" 200`)
}
