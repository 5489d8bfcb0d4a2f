package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the v1 API structure.
// Groups: /api/v1/location, /api/v1/panchang, /api/v1/events, /api/v1/reminders
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Location endpoints - coordinate to place resolution
	loc := v1.Group("/location")
	{
		loc.POST("/resolve", s.handleV1ResolveLocation)
	}

	// Panchang endpoints - monthly calendar and daily detail
	panchang := v1.Group("/panchang")
	{
		panchang.GET("/month", s.handleV1Month)
		panchang.GET("/day/:date", s.handleV1Day)
	}

	// Event endpoints - reminder event catalog
	events := v1.Group("/events")
	{
		events.GET("", s.handleV1ListEventTypes)
		events.GET("/:id", s.handleV1GetEventDetails)
	}

	// Reminder endpoints - submission and audit listing
	reminders := v1.Group("/reminders")
	{
		reminders.POST("", s.handleV1CreateReminder)
		reminders.GET("", s.handleV1ListReminders)
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
