package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"callsmith/handlers"
)

// RegisterAppointmentRoutes registers the appointment-call endpoint.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api")
	{
		api.POST("/appointments", h.CreateAppointmentCall)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CallSmith"})
	})
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, h)
}
