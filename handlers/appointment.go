package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"callsmith/services/appointment"
)

// AppointmentHandler exposes the appointment-call pipeline over HTTP.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

func NewAppointmentHandler(svc appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// CreateAppointmentCall handles POST /api/appointments. The body is decoded
// leniently: a malformed or non-object body becomes an empty object, which
// then fails required-field validation instead of crashing the request.
func (h *AppointmentHandler) CreateAppointmentCall(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		payload = map[string]any{}
	}

	resp, err := h.Service.ProcessAppointment(c.Request.Context(), payload)
	if err != nil {
		var verr *appointment.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
			return
		}

		var perr *appointment.PlanningError
		var cerr *appointment.CallInitiationError
		if errors.As(err, &perr) || errors.As(err, &cerr) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		h.Logger.Error("unexpected appointment failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": appointment.GenericErrorMessage})
		return
	}

	c.JSON(http.StatusOK, resp)
}
