package tickets

import (
	"ticketlog/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTicketRoutes(router *gin.RouterGroup, controller Controller) {
	tickets := router.Group("/tickets")
	{
		tickets.POST("", middleware.RequireUserHeader(), controller.CreateTicket)                        // POST /api/tickets
		tickets.GET("/user/:userId", middleware.OptionalUserHeader(), controller.GetTicketsByUser)       // GET /api/tickets/user/:userId
		tickets.POST("/user/:userId/search", middleware.RequireUserHeader(), controller.SearchTickets)   // POST /api/tickets/user/:userId/search
		tickets.PATCH("/:ticketId", middleware.RequireUserHeader(), controller.UpdateTicket)             // PATCH /api/tickets/:ticketId
		tickets.DELETE("/:ticketId", middleware.RequireUserHeader(), controller.DeleteTicket)            // DELETE /api/tickets/:ticketId
	}
}
