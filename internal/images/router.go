package images

import (
	"ticketlog/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupImageRoutes(router *gin.RouterGroup, controller Controller) {
	images := router.Group("/images")
	{
		images.POST("/generate", middleware.RequireUserHeader(), controller.GenerateImage) // POST /api/images/generate
	}
}
