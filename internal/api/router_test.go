package api

import (
	"bytes"
	"context"
	"driver-training-service/internal/adapters/idgen"
	"driver-training-service/internal/adapters/persistence"
	"driver-training-service/internal/api/dto"
	"driver-training-service/internal/domain"
	"driver-training-service/internal/report"
	"driver-training-service/internal/store"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
	backend *persistence.MemoryStateBackend
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	backend := persistence.NewMemoryStateBackend()
	st, err := store.New(context.Background(), backend, idgen.NewUUIDGenerator(), zap.NewNop())
	require.NoError(t, err)

	return &testServer{
		t:       t,
		handler: NewRouter(st, report.NewGenerator(), zap.NewNop()),
		backend: backend,
	}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *testServer) createDriver(name string) dto.DriverResponse {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/drivers", `{"name":"`+name+`","start_date":"2024-01-08"}`)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.DriverResponse](s.t, rec)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = s.do(http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestDriverLifecycle(t *testing.T) {
	s := newTestServer(t)

	d := s.createDriver("Aoife Walsh")
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "trainee", d.Status)
	assert.Equal(t, "trainee", d.CurrentPhase)

	list := decode[dto.ListDriversResponse](t, s.do(http.MethodGet, "/drivers", ""))
	require.Len(t, list.Drivers, 1)
	assert.Equal(t, d, list.Drivers[0])

	rec := s.do(http.MethodPatch, "/drivers/"+d.ID, `{"current_phase":"appointed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "appointed", decode[dto.DriverResponse](t, rec).CurrentPhase)

	rec = s.do(http.MethodPatch, "/drivers/"+d.ID, `{"current_phase":"limerick"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "current_phase")

	rec = s.do(http.MethodDelete, "/drivers/"+d.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/drivers/"+d.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/drivers/"+d.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDriverRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"invalid json":   `{"name":`,
		"unknown field":  `{"name":"A","start_date":"2024-01-08","grade":3}`,
		"two objects":    `{"name":"A","start_date":"2024-01-08"}{}`,
		"missing name":   `{"start_date":"2024-01-08"}`,
		"bad start date": `{"name":"A","start_date":"08/01/2024"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/drivers", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	assert.Zero(t, s.backend.Saves)
}

func TestEntriesAndProgress(t *testing.T) {
	s := newTestServer(t)
	d := s.createDriver("Seán Byrne")

	rec := s.do(http.MethodPost, "/drivers/"+d.ID+"/entries",
		`{"date":"2024-01-08","duties":"Cork - Dublin - Cork","book_on_time":"07:00","book_off_time":"15:30"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entry := decode[dto.EntryResponse](t, rec)
	require.Len(t, entry.RouteSegments, 1)
	assert.Equal(t, "mainline", entry.RouteSegments[0].RouteType)
	assert.Equal(t, 8, entry.TotalDrivingHours)
	assert.Equal(t, 30, entry.TotalDrivingMinutes)

	rec = s.do(http.MethodGet, "/drivers/"+d.ID+"/progress", "")
	require.Equal(t, http.StatusOK, rec.Code)
	prog := decode[dto.ProgressResponse](t, rec)
	assert.Equal(t, 1, prog.Progress.TraineeDaysCompleted)
	assert.Equal(t, 1, prog.Progress.MainlineDaysCompleted)
	assert.InDelta(t, 8.5, prog.Progress.TraineeHoursCompleted, 1e-9)
	assert.Equal(t, "appointed", prog.NextPhase)
	assert.False(t, prog.CanAdvance)
	assert.Greater(t, prog.Percentage, 0.0)
	require.NotNil(t, prog.Requirements)
	assert.Equal(t, 70, prog.Requirements.TotalDays)

	rec = s.do(http.MethodPatch, "/entries/"+entry.ID,
		`{"segments":[{"route":"Cork - Cobh","driving_hours":1,"driving_minutes":45}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dto.EntryResponse](t, rec)
	assert.Equal(t, 1, updated.TotalDrivingHours)
	assert.Equal(t, 45, updated.TotalDrivingMinutes)
	assert.True(t, updated.RouteSegments[0].IsCorkEast)

	rec = s.do(http.MethodGet, "/entries/"+entry.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/entries/"+entry.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, "/entries/"+entry.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(http.MethodPatch, "/entries/"+entry.ID, `{"duties":"Yard"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditedDutiesRederiveSegment(t *testing.T) {
	s := newTestServer(t)
	d := s.createDriver("Ciara Lynch")

	rec := s.do(http.MethodPost, "/drivers/"+d.ID+"/entries",
		`{"date":"2024-01-08","duties":"Cork Yard","book_on_time":"07:00","book_off_time":"09:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entry := decode[dto.EntryResponse](t, rec)
	require.Len(t, entry.RouteSegments, 1)
	require.Equal(t, "pilot", entry.RouteSegments[0].RouteType)

	rec = s.do(http.MethodPatch, "/entries/"+entry.ID,
		`{"duties":"Cork - Dublin","book_on_time":"07:00","book_off_time":"15:00"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dto.EntryResponse](t, rec)
	require.Len(t, updated.RouteSegments, 1)
	assert.Equal(t, "mainline", updated.RouteSegments[0].RouteType)
	assert.Equal(t, "Cork - Dublin", updated.RouteSegments[0].Route)
	assert.Equal(t, 8, updated.TotalDrivingHours)
	assert.Equal(t, 0, updated.TotalDrivingMinutes)

	rec = s.do(http.MethodGet, "/drivers/"+d.ID+"/progress", "")
	require.Equal(t, http.StatusOK, rec.Code)
	prog := decode[dto.ProgressResponse](t, rec)
	assert.Equal(t, 1, prog.Progress.MainlineDaysCompleted)
	assert.Equal(t, 0, prog.Progress.PilotDaysCompleted)
	assert.InDelta(t, 8.0, prog.Progress.TraineeHoursCompleted, 1e-9)

	// date-only edits leave the segment alone
	rec = s.do(http.MethodPatch, "/entries/"+entry.ID, `{"date":"2024-01-09"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	moved := decode[dto.EntryResponse](t, rec)
	assert.Equal(t, updated.RouteSegments, moved.RouteSegments)
}

func TestEntriesForUnknownDriver(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/drivers/nope/entries", `{"date":"2024-01-08","duties":"Yard"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/drivers/nope/progress", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImportIsAllOrNothing(t *testing.T) {
	s := newTestServer(t)
	d := s.createDriver("Aoife Walsh")

	rec := s.do(http.MethodPost, "/drivers/"+d.ID+"/entries/import", `{"entries":[
		{"date":"2024-01-08","duties":"Cork - Mallow","book_on_time":"07:00","book_off_time":"12:00"},
		{"date":"2024-01-09","duties":"Cork - Cobh","book_on_time":"7am","book_off_time":"12:00"}
	]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "entries[1]")

	list := decode[dto.ListEntriesResponse](t, s.do(http.MethodGet, "/drivers/"+d.ID+"/entries", ""))
	assert.Empty(t, list.Entries)

	rec = s.do(http.MethodPost, "/drivers/"+d.ID+"/entries/import", `{"entries":[
		{"date":"2024-01-09","duties":"Cork - Cobh","book_on_time":"07:00","book_off_time":"12:00"},
		{"date":"2024-01-08","duties":"Cork - Mallow","book_on_time":"07:00","book_off_time":"12:00"}
	]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	list = decode[dto.ListEntriesResponse](t, s.do(http.MethodGet, "/drivers/"+d.ID+"/entries", ""))
	require.Len(t, list.Entries, 2)
	assert.Equal(t, "2024-01-08", list.Entries[0].Date)
}

func TestWeeksBuildAndIndex(t *testing.T) {
	s := newTestServer(t)
	d := s.createDriver("Aoife Walsh")

	rec := s.do(http.MethodPost, "/drivers/"+d.ID+"/weeks", `{"week_starting":"2024-01-08","days":[
		{"date":"2024-01-08","day_type":"work","duties":"Cork - Dublin","book_on_time":"06:00","book_off_time":"14:00",
		 "segments":[{"route":"Cork - Dublin","driving_hours":5,"driving_minutes":0}]},
		{"date":"2024-01-09","day_type":"rest"},
		{"date":""}
	]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	added := decode[dto.ListEntriesResponse](t, rec)
	require.Len(t, added.Entries, 2)
	assert.Equal(t, "06:00 Book On - Cork - Dublin - 14:00 Book Off", added.Entries[0].Duties)
	assert.Equal(t, "Rest Day - No Duties", added.Entries[1].Duties)

	weeks := decode[dto.ListWeeksResponse](t, s.do(http.MethodGet, "/drivers/"+d.ID+"/weeks", ""))
	require.Len(t, weeks.Weeks, 1)
	assert.Equal(t, "2024-01-14", weeks.Weeks[0].WeekEnding)
	assert.Equal(t, 2, weeks.Weeks[0].EntryCount)
	assert.InDelta(t, 5.0, weeks.Weeks[0].TotalHours, 1e-9)

	list := decode[dto.ListEntriesResponse](t, s.do(http.MethodGet, "/drivers/"+d.ID+"/entries?week_ending=2024-01-07", ""))
	assert.Empty(t, list.Entries)

	list = decode[dto.ListEntriesResponse](t, s.do(http.MethodGet, "/drivers/"+d.ID+"/entries?week_ending=2024-01-10", ""))
	assert.Len(t, list.Entries, 2, "mid-week date lists the same week the weekly report covers")

	rec = s.do(http.MethodPost, "/drivers/"+d.ID+"/weeks", `{"week_starting":"2024-01-09","days":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReports(t *testing.T) {
	s := newTestServer(t)
	d := s.createDriver("Seán Byrne")
	rec := s.do(http.MethodPost, "/drivers/"+d.ID+"/entries",
		`{"date":"2024-01-08","duties":"Cork - Dublin","book_on_time":"07:00","book_off_time":"15:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, path := range []string{
		"/drivers/" + d.ID + "/reports/weekly?week_ending=2024-01-14",
		"/drivers/" + d.ID + "/reports/training",
		"/drivers/" + d.ID + "/reports/history",
	} {
		rec := s.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")), path)
	}

	rec = s.do(http.MethodGet, "/drivers/"+d.ID+"/reports/weekly", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/drivers/"+d.ID+"/reports/weekly?week_ending=soon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/drivers/"+d.ID+"/reports/payroll", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/drivers/"+d.ID+"/reports/training/mailto", "")
	require.Equal(t, http.StatusOK, rec.Code)
	mail := decode[dto.MailtoResponse](t, rec)
	assert.Equal(t, report.TrainingReportMailto(mustDriver(t, s, d.ID)), mail.Mailto)
	assert.True(t, strings.HasPrefix(mail.Mailto, "mailto:?subject=Training%20Report%20-%20"))
}

func mustDriver(t *testing.T, s *testServer, id string) domain.Driver {
	t.Helper()
	res := decode[dto.DriverResponse](t, s.do(http.MethodGet, "/drivers/"+id, ""))
	return domain.Driver{ID: res.ID, Name: res.Name}
}
