package planner

import (
	"context"
	"strings"
	"testing"

	"callsmith/models"
)

func localRequest() *models.AppointmentRequest {
	return &models.AppointmentRequest{
		BusinessName:        "Sunrise Dental",
		PhoneNumber:         "+15551234567",
		Timezone:            "America/New_York",
		PreferredDate:       "2024-06-01",
		PreferredTimeWindow: "9am-12pm",
		Reason:              "Book cleaning",
		VoiceProfile:        "friendly",
	}
}

func TestLocalPlanner_ScriptCoversRequest(t *testing.T) {
	plan, err := NewLocalPlanner().GenerateCallPlan(context.Background(), localRequest())
	if err != nil {
		t.Fatalf("GenerateCallPlan() error = %v", err)
	}
	if plan.Script == "" {
		t.Fatal("script is empty")
	}
	for _, want := range []string{"Sunrise Dental", "Book cleaning", "2024-06-01", "9am-12pm"} {
		if !strings.Contains(plan.Script, want) {
			t.Errorf("script does not mention %q:\n%s", want, plan.Script)
		}
	}
}

func TestLocalPlanner_ItineraryOrder(t *testing.T) {
	req := localRequest()
	req.SpecialInstructions = "Ask for Dr. Smith"
	req.CallBackNumber = "+15559876543"

	plan, err := NewLocalPlanner().GenerateCallPlan(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateCallPlan() error = %v", err)
	}
	if len(plan.Itinerary) != 6 {
		t.Fatalf("itinerary has %d steps, want 6: %v", len(plan.Itinerary), plan.Itinerary)
	}
	if !strings.Contains(plan.Itinerary[0], "Introduce") {
		t.Errorf("first step = %q, want the introduction", plan.Itinerary[0])
	}
	last := plan.Itinerary[len(plan.Itinerary)-1]
	if !strings.Contains(last, "close") {
		t.Errorf("last step = %q, want the closing step", last)
	}
}

func TestLocalPlanner_NoSummary(t *testing.T) {
	plan, err := NewLocalPlanner().GenerateCallPlan(context.Background(), localRequest())
	if err != nil {
		t.Fatalf("GenerateCallPlan() error = %v", err)
	}
	// The outcome summarizer owns the summary for local plans.
	if plan.Summary != "" {
		t.Errorf("Summary = %q, want empty", plan.Summary)
	}
}

func TestLocalPlanner_VoiceProfileGreeting(t *testing.T) {
	req := localRequest()
	req.VoiceProfile = "concise"

	plan, err := NewLocalPlanner().GenerateCallPlan(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateCallPlan() error = %v", err)
	}
	if !strings.HasPrefix(plan.Script, "Hello.") {
		t.Errorf("concise script starts with %q, want the concise greeting", firstLine(plan.Script))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
