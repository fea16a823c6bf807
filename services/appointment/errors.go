package appointment

import "fmt"

// GenericErrorMessage is returned to the client when a failure carries no
// safe, message-bearing cause.
const GenericErrorMessage = "Unable to process appointment request."

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field violation found in a request. The HTTP
// layer surfaces only the first message, but the full set stays available for
// field-level consumers such as the form UI.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return e.Fields[0].Message
	}
	return "Invalid request payload."
}

// PlanningError wraps an upstream planner failure. Not retried.
type PlanningError struct {
	Err error
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("failed to generate call plan: %v", e.Err)
}

func (e *PlanningError) Unwrap() error { return e.Err }

// CallInitiationError wraps an upstream telephony failure. Not retried.
type CallInitiationError struct {
	Err error
}

func (e *CallInitiationError) Error() string {
	return fmt.Sprintf("failed to initiate call: %v", e.Err)
}

func (e *CallInitiationError) Unwrap() error { return e.Err }
