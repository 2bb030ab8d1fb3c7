package prompts

import (
	"github.com/gin-gonic/gin"
)

func SetupPromptRoutes(router *gin.RouterGroup, controller Controller) {
	prompts := router.Group("/prompts")
	{
		prompts.POST("/generate", controller.GeneratePrompt) // POST /api/prompts/generate
	}
}
