package location

import (
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultOffset is India Standard Time in decimal hours, the fallback
// whenever an upstream offset cannot be parsed.
const DefaultOffset = "5.5"

var hhmmPattern = regexp.MustCompile(`^([+-])?(\d{1,2}):(\d{2})$`)

// ParseUTCOffset normalizes a UTC offset into the decimal-hour string the
// almanac API expects ("+05:30" -> "5.5", "5" -> "5.0"). It is total: every
// input yields a usable offset, unparseable ones fall back to DefaultOffset.
func ParseUTCOffset(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		log.Printf("offset parse: empty input, using default %s", DefaultOffset)
		return DefaultOffset
	}

	if m := hhmmPattern.FindStringSubmatch(s); m != nil {
		sign := ""
		if m[1] == "-" {
			sign = "-"
		}
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		switch minutes {
		case 0:
			return sign + strconv.Itoa(hours) + ".0"
		case 15:
			return sign + strconv.Itoa(hours) + ".25"
		case 30:
			return sign + strconv.Itoa(hours) + ".5"
		case 45:
			return sign + strconv.Itoa(hours) + ".75"
		}
		log.Printf("offset parse: unhandled minute value %d in %q, using default %s", minutes, s, DefaultOffset)
		return DefaultOffset
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("offset parse: cannot parse %q, using default %s", s, DefaultOffset)
		return DefaultOffset
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	if math.Mod(math.Abs(f)*100, 25) == 0 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Quarter-hour offsets are the finest granularity the almanac API is
	// known to accept; anything else goes through as-is but is flagged.
	log.Printf("offset parse: %q is not a quarter-hour offset, passing through", s)
	return strconv.FormatFloat(f, 'f', -1, 64)
}
