package images

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketlog/internal/prompts"
	"ticketlog/internal/shared/middleware"
	"ticketlog/internal/shared/utils/response"
)

type Controller interface {
	GenerateImage(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GenerateImage(c *gin.Context) {
	var req prompts.GeneratePromptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := ctrl.service.GenerateImage(c.Request.Context(), userID, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, prompts.ErrUnsupportedGenre) {
			statusCode = http.StatusBadRequest
		} else if errors.Is(err, ErrNotConfigured) {
			statusCode = http.StatusServiceUnavailable
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Image generated successfully", result, nil)
}
