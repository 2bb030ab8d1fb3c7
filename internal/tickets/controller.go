package tickets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketlog/internal/shared/middleware"
	"ticketlog/internal/shared/utils/response"
)

type Controller interface {
	CreateTicket(c *gin.Context)
	GetTicketsByUser(c *gin.Context)
	SearchTickets(c *gin.Context)
	UpdateTicket(c *gin.Context)
	DeleteTicket(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	ticket, err := ctrl.service.CreateTicket(c.Request.Context(), userID, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Ticket created successfully", ticket, nil)
}

// GetTicketsByUser returns the owner's full list when the caller is the
// profile owner, and the public decorated list otherwise.
func (ctrl *controller) GetTicketsByUser(c *gin.Context) {
	userID := c.Param("userId")
	viewerID, _ := middleware.GetUserID(c)

	if viewerID == userID {
		tickets, err := ctrl.service.GetTicketsByUser(c.Request.Context(), userID)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", tickets, nil)
		return
	}

	tickets, err := ctrl.service.GetPublicTicketsByUser(c.Request.Context(), userID, viewerID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", tickets, nil)
}

func (ctrl *controller) SearchTickets(c *gin.Context) {
	userID := c.Param("userId")

	viewerID, ok := middleware.GetUserID(c)
	if !ok || viewerID != userID {
		response.RespondJSON(c, "error", http.StatusForbidden, "You can only search your own tickets", nil, nil)
		return
	}

	var req SearchTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	tickets, err := ctrl.service.SearchTickets(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", tickets, nil)
}

func (ctrl *controller) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	ticket, err := ctrl.service.UpdateTicket(c.Request.Context(), ticketID, userID, req)
	if err != nil {
		response.RespondJSON(c, "error", ticketErrorStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket updated successfully", ticket, nil)
}

func (ctrl *controller) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := ctrl.service.DeleteTicket(c.Request.Context(), ticketID, userID); err != nil {
		response.RespondJSON(c, "error", ticketErrorStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket deleted successfully", nil, nil)
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("ticketId"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func ticketErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrTicketNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
