package almanac

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	geocodePath       = "/Donor/get_Place_by_lat_log"
	savePanchangPath  = "/ExternalApi/SavePanchangDetails"
	callPanchangPath  = "/ExternalApi/CallPanchangAPI"
	eventTypeListPath = "/Donor/GetEventTypeList"
)

// Client talks to the external almanac/geocoding service.
type Client struct {
	baseURL   string
	authToken string // basic-auth token for the daily endpoints, may be empty
	http      *http.Client
}

// New builds a client for the given upstream base URL. httpClient controls
// the transport and timeout.
func New(baseURL, authToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, authToken: authToken, http: httpClient}
}

// Geocode resolves a coordinate pair to candidate places. The upstream
// occasionally returns the JSON document wrapped in a JSON string; both
// encodings are accepted.
func (c *Client) Geocode(ctx context.Context, latitude, longitude float64) (*GeocodeResponse, error) {
	body := map[string]string{
		"latitude":  fmt.Sprintf("%v", latitude),
		"longitude": fmt.Sprintf("%v", longitude),
	}
	raw, err := c.postJSON(ctx, geocodePath, body, false)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		raw = []byte(wrapped)
	}

	var payload GeocodeResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode geocode payload: %w", err)
	}
	return &payload, nil
}

// MonthlyPanchang fetches the flat row list for the month containing
// params.BirthDate.
func (c *Client) MonthlyPanchang(ctx context.Context, params PanchangParams) (*MonthlyResponse, error) {
	raw, err := c.postJSON(ctx, savePanchangPath, params, false)
	if err != nil {
		return nil, fmt.Errorf("monthly panchang request: %w", err)
	}
	var payload MonthlyResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode monthly payload: %w", err)
	}
	return &payload, nil
}

// DailyPanchang fetches the per-date detail record from the primary
// endpoint.
func (c *Client) DailyPanchang(ctx context.Context, params PanchangParams) (*DailyResponse, error) {
	raw, err := c.postJSON(ctx, savePanchangPath, params, true)
	if err != nil {
		return nil, fmt.Errorf("daily panchang request: %w", err)
	}
	var payload DailyResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode daily payload: %w", err)
	}
	return &payload, nil
}

// DailyPanchangFallback fetches the detail record from the secondary
// endpoint, used when the primary response carries no embedded payload.
func (c *Client) DailyPanchangFallback(ctx context.Context, params PanchangParams) (*DailyResponse, error) {
	raw, err := c.postJSON(ctx, callPanchangPath, params, true)
	if err != nil {
		return nil, fmt.Errorf("daily panchang fallback request: %w", err)
	}
	var payload DailyResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode daily fallback payload: %w", err)
	}
	return &payload, nil
}

// EventTypeList fetches the selectable event types (params.SPMode "0").
func (c *Client) EventTypeList(ctx context.Context, params EventParams) ([]EventTypeItem, error) {
	raw, err := c.postJSON(ctx, eventTypeListPath, params, false)
	if err != nil {
		return nil, fmt.Errorf("event type list request: %w", err)
	}
	var items []EventTypeItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode event type list: %w", err)
	}
	return items, nil
}

// EventDetails fetches occurrence details for one event (params.SPMode "1").
// The upstream answers with an array; the caller takes the first element.
func (c *Client) EventDetails(ctx context.Context, params EventParams) ([]EventDetails, error) {
	raw, err := c.postJSON(ctx, eventTypeListPath, params, false)
	if err != nil {
		return nil, fmt.Errorf("event details request: %w", err)
	}
	var items []EventDetails
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode event details: %w", err)
	}
	return items, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any, authorized bool) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}

	// The upstream rejects requests that do not look like its own web
	// client, so mimic the browser headers it expects.
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Referer", c.baseURL+"/Donor/Panchang")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Safari/605.1.15")
	if authorized && c.authToken != "" {
		req.Header.Set("Authorization", "Basic "+c.authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, truncate(raw, 200))
	}
	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
