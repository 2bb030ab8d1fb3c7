package likes

import (
	"ticketlog/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupLikeRoutes(router *gin.RouterGroup, controller Controller) {
	likes := router.Group("/tickets/:ticketId")
	{
		likes.POST("/like", middleware.RequireUserHeader(), controller.ToggleLike)            // POST /api/tickets/:ticketId/like
		likes.GET("/like/count", controller.GetLikeCount)                                     // GET /api/tickets/:ticketId/like/count
		likes.GET("/like/status", middleware.RequireUserHeader(), controller.GetLikeStatus)   // GET /api/tickets/:ticketId/like/status
		likes.GET("/likes", middleware.RequireUserHeader(), controller.GetLikedUsers)         // GET /api/tickets/:ticketId/likes
	}
}
