package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketlog/internal/shared/utils/response"
)

type Controller interface {
	GetStatistics(c *gin.Context)
	GetYearInReview(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetStatistics(c *gin.Context) {
	userID := c.Param("userId")

	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	report, err := ctrl.service.GetStatistics(c.Request.Context(), userID, year)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Statistics retrieved successfully", report, nil)
}

func (ctrl *controller) GetYearInReview(c *gin.Context) {
	userID := c.Param("userId")

	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	report, err := ctrl.service.GetYearInReview(c.Request.Context(), userID, year)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Year in review retrieved successfully", report, nil)
}

// parseYearParam validates the optional year query parameter. The engine
// itself accepts any integer; rejecting garbage is this layer's job.
func parseYearParam(c *gin.Context) (*int, bool) {
	yearStr := c.Query("year")
	if yearStr == "" {
		return nil, true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid year parameter", nil, err.Error())
		return nil, false
	}
	return &year, true
}
