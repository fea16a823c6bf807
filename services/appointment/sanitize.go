package appointment

import "strings"

// appointmentFields lists every recognized payload key, in validation order.
var appointmentFields = []string{
	"businessName",
	"phoneNumber",
	"contactName",
	"timezone",
	"preferredDate",
	"preferredTimeWindow",
	"reason",
	"specialInstructions",
	"voiceProfile",
	"callBackNumber",
	"email",
}

// optionalFields marks the keys that may legitimately be absent.
var optionalFields = map[string]bool{
	"contactName":         true,
	"specialInstructions": true,
	"callBackNumber":      true,
	"email":               true,
}

// SanitizeAppointmentPayload normalizes a loosely-typed request body: foreign
// keys are stripped, string values are trimmed, and empty optional strings
// become absent. The input is never mutated; a nil payload is treated as an
// empty object. Sanitizing an already-sanitized payload yields an identical
// result.
func SanitizeAppointmentPayload(payload map[string]any) map[string]any {
	out := make(map[string]any, len(appointmentFields))
	if payload == nil {
		return out
	}

	for _, key := range appointmentFields {
		raw, ok := payload[key]
		if !ok || raw == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			// Non-string values pass through so validation can report the
			// exact type violation.
			out[key] = raw
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" && optionalFields[key] {
			continue
		}
		out[key] = value
	}
	return out
}
