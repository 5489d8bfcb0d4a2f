package location

import (
	"context"
	"log"

	"github.com/vaidikvista/panchang-api/internal/almanac"
)

// Default coordinates: Bengaluru.
const (
	DefaultLatitude  = 12.9716
	DefaultLongitude = 77.5946
)

// Location is the resolved place record threaded through every panchang
// call. TimezoneOffset is always set after resolution.
type Location struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Country        string  `json:"country"`
	TimezoneName   string  `json:"timezone_name,omitempty"`
	TimezoneOffset string  `json:"timezone_offset"`
}

// Resolver turns coordinates into a Location via the geocoding endpoint.
type Resolver struct {
	client *almanac.Client
}

// NewResolver wraps an almanac client.
func NewResolver(client *almanac.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve never fails outwardly: on any transport or parse error it returns
// a fallback location built from the input coordinates, with the city tagged
// so logs can tell the fallback paths apart.
func (r *Resolver) Resolve(ctx context.Context, latitude, longitude float64) Location {
	payload, err := r.client.Geocode(ctx, latitude, longitude)
	if err != nil {
		log.Printf("location resolve: geocode failed for %.4f,%.4f: %v", latitude, longitude, err)
		return fallback(latitude, longitude, "Bengaluru (Error)")
	}
	if len(payload.Results) == 0 {
		log.Printf("location resolve: no results for %.4f,%.4f", latitude, longitude)
		return fallback(latitude, longitude, "Bengaluru (Fallback)")
	}

	primary := payload.Results[0]

	var offsetSTD, tzName string
	if primary.Timezone != nil {
		offsetSTD = primary.Timezone.OffsetSTD
		tzName = primary.Timezone.Name
	}

	return Location{
		Latitude:       primary.Lat,
		Longitude:      primary.Lon,
		City:           firstNonEmpty(primary.City, primary.Name, primary.Suburb, primary.District, "Unknown City"),
		State:          firstNonEmpty(primary.State, "Unknown State"),
		Country:        firstNonEmpty(primary.Country, "Unknown Country"),
		TimezoneName:   tzName,
		TimezoneOffset: ParseUTCOffset(offsetSTD),
	}
}

func fallback(latitude, longitude float64, city string) Location {
	return Location{
		Latitude:       latitude,
		Longitude:      longitude,
		City:           city,
		State:          "Karnataka",
		Country:        "India",
		TimezoneOffset: DefaultOffset,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
