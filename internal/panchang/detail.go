package panchang

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/vaidikvista/panchang-api/internal/almanac"
	"github.com/vaidikvista/panchang-api/internal/location"
)

// DetailSource says which step of the two-step fetch produced the result.
type DetailSource string

const (
	// DetailFromPrimary: primary endpoint returned a parseable payload.
	DetailFromPrimary DetailSource = "primary"
	// DetailFromFallback: secondary endpoint returned a parseable payload.
	DetailFromFallback DetailSource = "fallback"
	// DetailPrimaryNoPayload: only the primary record is available, its
	// embedded payload missing or unparseable on both attempts.
	DetailPrimaryNoPayload DetailSource = "primary_no_payload"
	// DetailUnavailable: neither endpoint yielded anything usable.
	DetailUnavailable DetailSource = "unavailable"
)

// DetailResult is the discriminated outcome of FetchDetail.
type DetailResult struct {
	Source  DetailSource           `json:"source"`
	Detail  *almanac.DailyDetail   `json:"detail,omitempty"`
	Payload *almanac.DetailPayload `json:"payload,omitempty"`
}

// FetchDetail resolves the daily detail for a date: primary endpoint first,
// then the secondary one carrying forward the panchang id the primary
// returned. Transport and parse errors are logged, never propagated.
func (s *Service) FetchDetail(ctx context.Context, date time.Time, loc location.Location) DetailResult {
	params := requestParams(loc, date, dailyType)

	var primary *almanac.DailyDetail
	resp, err := s.client.DailyPanchang(ctx, params)
	if err != nil {
		log.Printf("daily detail %s: primary fetch failed: %v", params.BirthDate, err)
	} else if len(resp.Table) > 0 {
		primary = &resp.Table[0]
	}

	if primary != nil && hasPayload(primary) {
		if payload, ok := parsePayload(primary); ok {
			return DetailResult{Source: DetailFromPrimary, Detail: primary, Payload: payload}
		}
	}

	fallbackParams := params
	fallbackParams.SPMode = 1
	if primary != nil {
		fallbackParams.PanchangID = primary.DailyPanchangID
	}

	resp, err = s.client.DailyPanchangFallback(ctx, fallbackParams)
	if err != nil {
		log.Printf("daily detail %s: fallback fetch failed: %v", params.BirthDate, err)
	} else if len(resp.Table) > 0 {
		secondary := &resp.Table[0]
		if hasPayload(secondary) {
			if payload, ok := parsePayload(secondary); ok {
				return DetailResult{Source: DetailFromFallback, Detail: secondary, Payload: payload}
			}
			// Fallback payload present but unparseable: nothing better to offer.
			if primary == nil {
				return DetailResult{Source: DetailUnavailable}
			}
		}
	}

	if primary != nil {
		log.Printf("daily detail %s: no embedded payload from either endpoint, returning primary record", params.BirthDate)
		return DetailResult{Source: DetailPrimaryNoPayload, Detail: primary}
	}
	return DetailResult{Source: DetailUnavailable}
}

// hasPayload reports whether the record carries a non-trivial embedded
// document. "{}" counts as empty.
func hasPayload(d *almanac.DailyDetail) bool {
	trimmed := strings.TrimSpace(d.JSONData)
	return trimmed != "" && trimmed != "{}"
}

func parsePayload(d *almanac.DailyDetail) (*almanac.DetailPayload, bool) {
	var payload almanac.DetailPayload
	if err := json.Unmarshal([]byte(d.JSONData), &payload); err != nil {
		log.Printf("daily detail: cannot parse embedded payload: %v", err)
		return nil, false
	}
	return &payload, true
}
