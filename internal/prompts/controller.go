package prompts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketlog/internal/shared/utils/response"
)

type Controller interface {
	GeneratePrompt(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GeneratePrompt(c *gin.Context) {
	var req GeneratePromptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.GeneratePrompt(c.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrUnsupportedGenre) {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Prompt generated successfully", result, nil)
}
