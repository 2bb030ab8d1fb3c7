package analytics

import (
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(router *gin.RouterGroup, controller Controller) {
	reports := router.Group("/tickets/user/:userId")
	{
		reports.GET("/statistics", controller.GetStatistics)         // GET /api/tickets/user/:userId/statistics?year=
		reports.GET("/year-in-review", controller.GetYearInReview)   // GET /api/tickets/user/:userId/year-in-review?year=
	}
}
