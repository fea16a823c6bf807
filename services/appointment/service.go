package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"callsmith/models"
	"callsmith/services/planner"
	"callsmith/services/telephony"
)

// DefaultAppointmentService is the sequential orchestrator. It owns nothing
// beyond the lifetime of a single request and keeps no state across requests.
type DefaultAppointmentService struct {
	Planner   planner.CallPlanner
	Telephony telephony.CallProvider
	Logger    *zap.Logger

	// Clock is overridable for tests; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultAppointmentService) ProcessAppointment(ctx context.Context, payload map[string]any) (*models.AppointmentResponse, error) {
	sanitized := SanitizeAppointmentPayload(payload)

	req, verr := ValidateAppointmentRequest(sanitized)
	if verr != nil {
		s.logger().Warn("appointment request rejected",
			zap.String("field", verr.Fields[0].Field),
			zap.Int("violations", len(verr.Fields)))
		return nil, verr
	}

	plan, err := s.Planner.GenerateCallPlan(ctx, req)
	if err != nil {
		s.logger().Error("call plan generation failed",
			zap.String("business", req.BusinessName), zap.Error(err))
		return nil, &PlanningError{Err: err}
	}

	call, err := s.Telephony.InitiateCall(ctx, telephony.CallRequest{
		To:             req.PhoneNumber,
		Script:         plan.Script,
		VoiceProfile:   req.VoiceProfile,
		CallbackNumber: req.CallBackNumber,
	})
	if err != nil {
		s.logger().Error("call initiation failed",
			zap.String("business", req.BusinessName), zap.Error(err))
		return nil, &CallInitiationError{Err: err}
	}

	summary := plan.Summary
	if summary == "" {
		summary = SummarizeCallOutcome(req, plan.Script)
	}

	itinerary := plan.Itinerary
	if itinerary == nil {
		itinerary = []string{}
	}

	return &models.AppointmentResponse{
		Script:    plan.Script,
		Call:      *call,
		Summary:   summary,
		Itinerary: itinerary,
		Metadata: models.ResponseMetadata{
			BusinessName:     req.BusinessName,
			RequestTimestamp: s.now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func (s *DefaultAppointmentService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
