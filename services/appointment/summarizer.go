package appointment

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"callsmith/models"
)

// SummarizeCallOutcome builds a short human-readable summary of the requested
// call when the planner did not supply one. Pure and deterministic; it always
// returns a non-empty sentence naming the business and phone number.
func SummarizeCallOutcome(req *models.AppointmentRequest, script string) string {
	if req == nil {
		return "The assistant will place the requested call on your behalf."
	}
	if req.Reason == "" || req.PreferredDate == "" {
		return fmt.Sprintf(
			"The assistant will call %s at %s to arrange your appointment.",
			req.BusinessName, req.PhoneNumber,
		)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The assistant will call %s at %s to %s",
		req.BusinessName, req.PhoneNumber, lowerFirst(req.Reason))
	if req.PreferredTimeWindow != "" {
		fmt.Fprintf(&b, ", aiming for %s on %s", req.PreferredTimeWindow, req.PreferredDate)
	} else {
		fmt.Fprintf(&b, ", aiming for %s", req.PreferredDate)
	}
	if req.Timezone != "" {
		fmt.Fprintf(&b, " (%s)", req.Timezone)
	}
	b.WriteString(".")
	if req.CallBackNumber != "" {
		fmt.Fprintf(&b, " A callback number (%s) will be left with the business.", req.CallBackNumber)
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
