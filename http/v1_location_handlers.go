package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaidikvista/panchang-api/internal/location"
)

// Pointer fields: zero is a valid coordinate (equator, prime meridian), so
// presence is checked via nil rather than a required binding.
type resolveLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// handleV1ResolveLocation resolves coordinates to a place record
// POST /api/v1/location/resolve
func (s *Server) handleV1ResolveLocation(c *gin.Context) {
	var req resolveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	loc := s.resolver.Resolve(ctx, *req.Latitude, *req.Longitude)
	c.JSON(http.StatusOK, gin.H{"data": loc})
}

// locationFromQuery builds the request location from query parameters.
// Coordinates default to Bengaluru. When tzone is supplied the location is
// taken verbatim (offset normalized); otherwise a geocode round-trip
// resolves place and offset.
func (s *Server) locationFromQuery(c *gin.Context) (location.Location, bool) {
	lat := location.DefaultLatitude
	lon := location.DefaultLongitude

	if latStr := c.Query("lat"); latStr != "" {
		parsed, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
			return location.Location{}, false
		}
		lat = parsed
	}
	if lonStr := c.Query("lon"); lonStr != "" {
		parsed, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lon"})
			return location.Location{}, false
		}
		lon = parsed
	}

	if tzone := c.Query("tzone"); tzone != "" {
		return location.Location{
			Latitude:       lat,
			Longitude:      lon,
			City:           c.DefaultQuery("city", "Unknown City"),
			State:          c.DefaultQuery("state", "Unknown State"),
			Country:        c.DefaultQuery("country", "India"),
			TimezoneOffset: location.ParseUTCOffset(tzone),
		}, true
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()
	return s.resolver.Resolve(ctx, lat, lon), true
}
