package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// eventDate reads the optional date query parameter, defaulting to today.
func eventDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected yyyy-MM-dd"})
		return time.Time{}, false
	}
	return date, true
}

// handleV1ListEventTypes returns the selectable reminder events
// GET /api/v1/events?date=2025-06-01
func (s *Server) handleV1ListEventTypes(c *gin.Context) {
	date, ok := eventDate(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	items := s.panchang.EventTypes(ctx, date)
	c.JSON(http.StatusOK, gin.H{
		"data": items,
		"meta": gin.H{
			"count": len(items),
		},
	})
}

// handleV1GetEventDetails returns the next occurrence of one event
// GET /api/v1/events/:id?date=2025-06-01
func (s *Server) handleV1GetEventDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	date, ok := eventDate(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	details := s.panchang.EventDetails(ctx, id, date)
	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": details})
}
