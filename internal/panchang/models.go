package panchang

import (
	"strings"
	"time"

	"github.com/vaidikvista/panchang-api/internal/almanac"
)

// CalendarDay is one cell of the monthly calendar. Optional fields stay
// empty for dates the upstream returned no rows for.
type CalendarDay struct {
	Date           string    `json:"date"` // yyyy-MM-dd
	DayOfMonth     int       `json:"day_of_month"`
	Tithi          string    `json:"tithi,omitempty"`
	Nakshatra      string    `json:"nakshatra,omitempty"`
	Sunrise        string    `json:"sunrise,omitempty"`
	Sunset         string    `json:"sunset,omitempty"`
	SpecialEvent   string    `json:"special_event,omitempty"`
	FullDate       time.Time `json:"full_date"`
	IsToday        bool      `json:"is_today"`
	IsCurrentMonth bool      `json:"is_current_month"`
}

// rowKind tags what a flat almanac row actually carries. The upstream
// overloads tithi_name per its sort code; rows are translated into this
// variant at the boundary so the overloading stops here.
type rowKind int

const (
	rowIgnored rowKind = iota
	rowTithi
	rowSunrise
	rowSunset
	rowEvent
)

type rowValue struct {
	kind      rowKind
	tithi     string
	nakshatra string
	clock     string
	text      string
}

// classifyRow maps the upstream sort discriminant onto a tagged value.
// Sort 4 rows with blank text become rowIgnored.
func classifyRow(row almanac.MonthlyRow) rowValue {
	switch row.Sort {
	case 1:
		return rowValue{kind: rowTithi, tithi: row.TithiName, nakshatra: row.NakshatraName}
	case 2:
		return rowValue{kind: rowSunrise, clock: row.TithiName}
	case 3:
		return rowValue{kind: rowSunset, clock: row.TithiName}
	case 4:
		text := strings.TrimSpace(row.TithiName)
		if text == "" {
			return rowValue{kind: rowIgnored}
		}
		return rowValue{kind: rowEvent, text: text}
	default:
		return rowValue{kind: rowIgnored}
	}
}

// apply folds a tagged row value into a calendar day. Later rows win over
// earlier ones for the same field.
func (v rowValue) apply(day *CalendarDay) {
	switch v.kind {
	case rowTithi:
		day.Tithi = v.tithi
		day.Nakshatra = v.nakshatra
	case rowSunrise:
		day.Sunrise = v.clock
	case rowSunset:
		day.Sunset = v.clock
	case rowEvent:
		day.SpecialEvent = v.text
	}
}
