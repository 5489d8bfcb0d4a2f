package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaidikvista/panchang-api/internal/cache"
	"github.com/vaidikvista/panchang-api/internal/panchang"
)

// handleV1Month returns the reconciled calendar for one month
// GET /api/v1/panchang/month?year=2025&month=6&lat=..&lon=..[&tzone=..]
func (s *Server) handleV1Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1900 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	loc, ok := s.locationFromQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	key := cache.Key(year, month, loc)
	days, hit := s.months.Get(ctx, key)
	if hit {
		// Cached entries may predate midnight; the flag tracks the
		// serving date.
		panchang.RefreshToday(days, time.Now())
	} else {
		days = s.panchang.BuildMonth(ctx, year, month, loc, time.Now())
		if len(days) > 0 {
			s.months.Set(ctx, key, days)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"year":     year,
			"month":    month,
			"location": loc,
			"days":     days,
		},
		"meta": gin.H{
			"count":  len(days),
			"cached": hit,
		},
	})
}

// handleV1Day returns the daily detail for one date
// GET /api/v1/panchang/day/:date (yyyy-MM-dd)
func (s *Server) handleV1Day(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected yyyy-MM-dd"})
		return
	}

	loc, ok := s.locationFromQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result := s.panchang.FetchDetail(ctx, date, loc)
	if result.Source == panchang.DetailUnavailable {
		c.JSON(http.StatusNotFound, gin.H{"error": "no details available for this date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result,
		"meta": gin.H{
			"date":     date.Format("2006-01-02"),
			"location": loc,
		},
	})
}
