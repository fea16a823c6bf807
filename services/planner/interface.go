package planner

import (
	"context"

	"callsmith/models"
)

// CallPlanner produces a call script, itinerary and optional summary for a
// validated appointment request. Implementations bound their own latency; the
// orchestrator never retries.
type CallPlanner interface {
	GenerateCallPlan(ctx context.Context, req *models.AppointmentRequest) (*models.CallPlan, error)
}
