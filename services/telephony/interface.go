package telephony

import (
	"context"

	"callsmith/models"
)

// CallRequest is the provider-agnostic input for placing one outbound call.
type CallRequest struct {
	To             string
	Script         string
	VoiceProfile   string
	CallbackNumber string
}

// CallProvider places a single outbound call. A "simulated" result is a
// legitimate success, not an error. Implementations bound their own latency.
type CallProvider interface {
	InitiateCall(ctx context.Context, req CallRequest) (*models.CallResult, error)
}
