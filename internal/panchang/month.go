package panchang

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/vaidikvista/panchang-api/internal/almanac"
	"github.com/vaidikvista/panchang-api/internal/location"
)

const (
	monthlyType = "2"
	dailyType   = "1"

	// The upstream requires a birth time even for calendar queries.
	defaultBirthTime = "07:00:00"

	dateKeyLayout = "2006-01-02" // yyyy-MM-dd, internal/display key
	apiDateLayout = "02-01-2006" // dd-MM-yyyy, outbound
)

// Service wraps the almanac client with the panchang-level operations.
type Service struct {
	client *almanac.Client
}

// NewService builds a Service on top of an almanac client.
func NewService(client *almanac.Client) *Service {
	return &Service{client: client}
}

// BuildMonth returns one CalendarDay per date of the given month (1-indexed),
// ascending, merging in whatever rows the upstream returned. Upstream
// failures and empty responses both yield an empty slice, never an error:
// the caller treats that as "no data".
func (s *Service) BuildMonth(ctx context.Context, year, month int, loc location.Location, now time.Time) []CalendarDay {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	params := requestParams(loc, monthStart, monthlyType)
	resp, err := s.client.MonthlyPanchang(ctx, params)
	if err != nil {
		log.Printf("build month %d-%02d: %v", year, month, err)
		return []CalendarDay{}
	}
	if resp == nil || len(resp.Table) == 0 {
		log.Printf("build month %d-%02d: upstream returned no rows", year, month)
		return []CalendarDay{}
	}

	grouped := make(map[string][]almanac.MonthlyRow)
	for _, row := range resp.Table {
		grouped[row.DateName] = append(grouped[row.DateName], row)
	}

	today := now.Format(dateKeyLayout)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		date := monthStart.AddDate(0, 0, i)
		key := date.Format(dateKeyLayout)

		day := CalendarDay{
			Date:           key,
			DayOfMonth:     date.Day(),
			FullDate:       date,
			IsToday:        key == today,
			IsCurrentMonth: true,
		}
		for _, row := range grouped[key] {
			classifyRow(row).apply(&day)
		}
		days = append(days, day)
	}
	return days
}

// RefreshToday recomputes the IsToday flags against now. Calendars can
// outlive the date they were built on (cache hits across midnight), so the
// flag must track the serving date, not the build date.
func RefreshToday(days []CalendarDay, now time.Time) {
	today := now.Format(dateKeyLayout)
	for i := range days {
		days[i].IsToday = days[i].Date == today
	}
}

// requestParams shapes the shared request body for the panchang endpoints.
func requestParams(loc location.Location, day time.Time, panchangType string) almanac.PanchangParams {
	lon := strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
	return almanac.PanchangParams{
		BirthDate:    day.Format(apiDateLayout),
		BirthTime:    defaultBirthTime,
		Lat:          strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		Lon:          lon,
		TZone:        loc.TimezoneOffset,
		Place:        orDefault(loc.City, "Unknown City"),
		Country:      orDefault(loc.Country, "India"),
		State:        orDefault(loc.State, "Unknown State"),
		CityLon:      lon,
		Lang:         "hi",
		PanchangType: panchangType,
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
