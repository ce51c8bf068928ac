// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/http/handlers"
	"yatra/internal/http/middleware"
)

func NewRouter(plan *handlers.PlanHandler, hist *handlers.HistoryHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.POST("/generate", plan.Generate)
	r.POST("/local-info", plan.LocalInfo)
	r.POST("/schedule-trip", plan.ScheduleTrip)
	r.POST("/safety-info", plan.SafetyInfo)
	r.POST("/packing-list", plan.PackingList)
	r.POST("/budget-breakdown", plan.BudgetBreakdown)
	r.POST("/transport-options", plan.TransportOptions)
	r.POST("/accommodation-suggestions", plan.AccommodationSuggestions)
	r.POST("/reviews", plan.Reviews)

	if hist != nil {
		r.GET("/history", hist.Recent)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
