package likes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketlog/internal/shared/middleware"
	"ticketlog/internal/shared/utils/response"
)

type Controller interface {
	ToggleLike(c *gin.Context)
	GetLikeCount(c *gin.Context)
	GetLikeStatus(c *gin.Context)
	GetLikedUsers(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ToggleLike(c *gin.Context) {
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := ctrl.service.ToggleLike(c.Request.Context(), ticketID, userID)
	if err != nil {
		response.RespondJSON(c, "error", likeErrorStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Like toggled successfully", result, nil)
}

func (ctrl *controller) GetLikeCount(c *gin.Context) {
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	result, err := ctrl.service.GetLikeCount(c.Request.Context(), ticketID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Like count retrieved successfully", result, nil)
}

func (ctrl *controller) GetLikeStatus(c *gin.Context) {
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := ctrl.service.GetLikeStatus(c.Request.Context(), ticketID, userID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Like status retrieved successfully", result, nil)
}

func (ctrl *controller) GetLikedUsers(c *gin.Context) {
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	userIDs, err := ctrl.service.GetLikedUsers(c.Request.Context(), ticketID, userID)
	if err != nil {
		response.RespondJSON(c, "error", likeErrorStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Liked users retrieved successfully", userIDs, nil)
}

func parseTicketID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("ticketId"), 10, 32)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return 0, false
	}
	return uint(id), true
}

func likeErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotTicketOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrTicketNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
