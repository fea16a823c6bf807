package planner

import (
	"context"
	"fmt"
	"strings"

	"callsmith/models"
)

// greetings keys every supported voice profile to an opening line.
var greetings = map[string]string{
	"friendly":     "Hi there!",
	"professional": "Good day.",
	"warm":         "Hello, lovely to speak with you.",
	"concise":      "Hello.",
}

// LocalPlanner builds a deterministic call plan from templates. It is used
// when no Gemini API key is configured and never fails. It deliberately
// leaves the summary empty so the outcome summarizer produces it.
type LocalPlanner struct{}

func NewLocalPlanner() *LocalPlanner {
	return &LocalPlanner{}
}

func (p *LocalPlanner) GenerateCallPlan(_ context.Context, req *models.AppointmentRequest) (*models.CallPlan, error) {
	greeting, ok := greetings[req.VoiceProfile]
	if !ok {
		greeting = greetings["friendly"]
	}

	var script strings.Builder
	script.WriteString(greeting)
	if req.ContactName != "" {
		fmt.Fprintf(&script, " May I speak with %s?", req.ContactName)
	}
	fmt.Fprintf(&script, " I'm an assistant calling on behalf of a client to reach %s.\n", req.BusinessName)
	fmt.Fprintf(&script, "The client would like to %s.\n", strings.TrimSuffix(req.Reason, "."))
	fmt.Fprintf(&script, "Their preferred date is %s, ideally %s %s time.\n",
		req.PreferredDate, req.PreferredTimeWindow, req.Timezone)
	if req.SpecialInstructions != "" {
		fmt.Fprintf(&script, "One more note: %s\n", req.SpecialInstructions)
	}
	if req.CallBackNumber != "" {
		fmt.Fprintf(&script, "If anything changes, the client can be reached at %s.\n", req.CallBackNumber)
	}
	script.WriteString("Could you confirm a time that works? Thank you so much.")

	itinerary := []string{
		"Introduce the assistant and the client",
		fmt.Sprintf("State the reason: %s", req.Reason),
		fmt.Sprintf("Propose %s within %s", req.PreferredDate, req.PreferredTimeWindow),
	}
	if req.SpecialInstructions != "" {
		itinerary = append(itinerary, "Relay the special instructions")
	}
	if req.CallBackNumber != "" {
		itinerary = append(itinerary, fmt.Sprintf("Leave the callback number %s", req.CallBackNumber))
	}
	itinerary = append(itinerary, "Confirm the appointment and close the call")

	return &models.CallPlan{
		Script:    script.String(),
		Itinerary: itinerary,
	}, nil
}
