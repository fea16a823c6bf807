package telephony

import (
	"context"
	"time"

	"github.com/google/uuid"

	"callsmith/models"
)

// SimulatedProvider stands in when no voice gateway is configured. It reports
// a "simulated" call without placing one, so the pipeline stays usable in
// development.
type SimulatedProvider struct {
	Clock func() time.Time
}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

func (p *SimulatedProvider) InitiateCall(_ context.Context, req CallRequest) (*models.CallResult, error) {
	now := time.Now
	if p.Clock != nil {
		now = p.Clock
	}
	return &models.CallResult{
		CallID:      uuid.New().String(),
		Status:      models.CallStatusSimulated,
		Provider:    "simulated",
		InitiatedAt: now().UTC().Format(time.RFC3339),
	}, nil
}
