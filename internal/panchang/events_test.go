package panchang

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaidikvista/panchang-api/internal/almanac"
)

func TestEventTypes(t *testing.T) {
	var captured almanac.EventParams
	svc := stubService(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/Donor/GetEventTypeList", req.URL.Path)
		body, _ := io.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		return jsonResponse(http.StatusOK, `[
  {"event_id": 12, "event_name": "Ekadashi", "mode_id": 2, "default_event_id": 12},
  {"event_id": 31, "event_name": "Janmashtami", "mode_id": 3, "default_event_id": 31}
]`), nil
	})

	items := svc.EventTypes(context.Background(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, items, 2)
	assert.Equal(t, "Ekadashi", items[0].EventName)

	assert.Equal(t, "0", captured.EventID)
	assert.Equal(t, "01-Jun-2025", captured.EventDate)
	assert.Equal(t, "0", captured.SPMode)
}

func TestEventTypesErrorReturnsEmpty(t *testing.T) {
	svc := stubService(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("timeout")
	})

	items := svc.EventTypes(context.Background(), time.Now())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestEventDetails(t *testing.T) {
	var captured almanac.EventParams
	svc := stubService(func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		return jsonResponse(http.StatusOK, `[
  {"next_date": "2025-06-06", "day_name": "Friday", "hindu_month": "Jyeshtha",
   "tithi_name": "Ekadashi", "paksha": "Shukla", "tithi_id": 11, "month_id": "3", "frequency": "Monthly"}
]`), nil
	})

	details := svc.EventDetails(context.Background(), 12, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, details)
	assert.Equal(t, "2025-06-06", details.NextDate)
	assert.Equal(t, "Jyeshtha", details.HinduMonth)

	// Detail mode uses the slash-separated date layout.
	assert.Equal(t, "12", captured.EventID)
	assert.Equal(t, "01/Jun/2025", captured.EventDate)
	assert.Equal(t, "1", captured.SPMode)
}

func TestEventDetailsEmptyResponseReturnsNil(t *testing.T) {
	svc := stubService(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	assert.Nil(t, svc.EventDetails(context.Background(), 12, time.Now()))
}
