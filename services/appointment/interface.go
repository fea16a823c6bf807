package appointment

import (
	"context"

	"callsmith/models"
)

// AppointmentService runs the full appointment-to-call pipeline for one
// request: sanitize, validate, plan, call, summarize, assemble. Failures are
// terminal per request; there are no retries and no partial responses.
type AppointmentService interface {
	ProcessAppointment(ctx context.Context, payload map[string]any) (*models.AppointmentResponse, error)
}
