package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaidikvista/panchang-api/config"
	"github.com/vaidikvista/panchang-api/internal/almanac"
	"github.com/vaidikvista/panchang-api/internal/location"
	"github.com/vaidikvista/panchang-api/internal/panchang"
	"github.com/vaidikvista/panchang-api/internal/reminder"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testServer(cfg config.Config, rt roundTripperFunc) *Server {
	client := almanac.New("http://upstream.test", "", &http.Client{Transport: rt})
	return New(cfg, nil, location.NewResolver(client), panchang.NewService(client), reminder.NewService(nil, nil), nil)
}

func noUpstream(t *testing.T) roundTripperFunc {
	return func(req *http.Request) (*http.Response, error) {
		t.Fatalf("unexpected upstream call to %s", req.URL.Path)
		return nil, nil
	}
}

func perform(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv := testServer(config.Config{}, noUpstream(t))
	rec := perform(srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBearerAuth(t *testing.T) {
	srv := testServer(config.Config{BearerToken: "sekrit"}, noUpstream(t))

	rec := perform(srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	authed := httptest.NewRecorder()
	srv.Engine().ServeHTTP(authed, req)
	assert.Equal(t, http.StatusOK, authed.Code)
}

func TestMonthValidation(t *testing.T) {
	srv := testServer(config.Config{}, noUpstream(t))

	rec := perform(srv, http.MethodGet, "/api/v1/panchang/month?year=abc&month=6", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = perform(srv, http.MethodGet, "/api/v1/panchang/month?year=2025&month=13", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = perform(srv, http.MethodGet, "/api/v1/panchang/month?year=2025&month=6&lat=bogus&tzone=5.5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMonthHappyPath(t *testing.T) {
	srv := testServer(config.Config{}, func(req *http.Request) (*http.Response, error) {
		body := `{"table": [{"date_name": "2025-06-01", "sort": 1, "tithi_name": "शु-6", "nakshatra_name": "पुष्य"}]}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     http.StatusText(http.StatusOK),
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
		}, nil
	})

	rec := perform(srv, http.MethodGet, "/api/v1/panchang/month?year=2025&month=6&lat=12.97&lon=77.59&tzone=5.5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))

	var payload struct {
		Data struct {
			Days []panchang.CalendarDay `json:"days"`
		} `json:"data"`
		Meta struct {
			Count  int  `json:"count"`
			Cached bool `json:"cached"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 30, payload.Meta.Count)
	assert.False(t, payload.Meta.Cached)
	assert.Equal(t, "शु-6", payload.Data.Days[0].Tithi)
}

func TestDayValidation(t *testing.T) {
	srv := testServer(config.Config{}, noUpstream(t))
	rec := perform(srv, http.MethodGet, "/api/v1/panchang/day/06-01-2025", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventIDValidation(t *testing.T) {
	srv := testServer(config.Config{}, noUpstream(t))
	rec := perform(srv, http.MethodGet, "/api/v1/events/zero?date=2025-06-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReminderValidation(t *testing.T) {
	srv := testServer(config.Config{}, noUpstream(t))

	rec := perform(srv, http.MethodPost, "/api/v1/reminders", `{"name": "A", "phone": "9876543210", "category": "tithi", "consent": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 2 characters")

	rec = perform(srv, http.MethodPost, "/api/v1/reminders", `{"name": "Asha", "phone": "9876543210", "category": "tithi", "consent": false}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "consent")

	rec = perform(srv, http.MethodPost, "/api/v1/reminders", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveLocationValidation(t *testing.T) {
	srv := testServer(config.Config{}, noUpstream(t))

	rec := perform(srv, http.MethodPost, "/api/v1/location/resolve", `{"latitude": "not-a-number"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = perform(srv, http.MethodPost, "/api/v1/location/resolve", `{"latitude": 12.97}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveLocationZeroCoordinates(t *testing.T) {
	// Zero is a valid coordinate: the equator and prime meridian must not
	// be rejected as missing fields.
	srv := testServer(config.Config{}, func(req *http.Request) (*http.Response, error) {
		body := `{"results": [{"country": "Nigeria", "state": "Kogi", "city": "Lokoja",
  "lat": 0, "lon": 6.6, "timezone": {"name": "Africa/Lagos", "offset_STD": "+01:00"}}]}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     http.StatusText(http.StatusOK),
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
		}, nil
	})

	rec := perform(srv, http.MethodPost, "/api/v1/location/resolve", `{"latitude": 0, "longitude": 6.6}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data location.Location `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Lokoja", payload.Data.City)
	assert.Equal(t, "1.0", payload.Data.TimezoneOffset)
}
