package models

// VoiceProfiles is the fixed set of voice tones the assistant can use on a
// call. The form presents exactly these options.
var VoiceProfiles = []string{"friendly", "professional", "warm", "concise"}

// SupportedTimezones is the fixed set of IANA timezone identifiers the form
// offers for the appointment's local time.
var SupportedTimezones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Asia/Singapore",
	"Asia/Tokyo",
	"Australia/Sydney",
}

// Call statuses reported by telephony providers.
const (
	CallStatusInitiated = "initiated"
	CallStatusCompleted = "completed"
	CallStatusSimulated = "simulated"
	CallStatusFailed    = "failed"
)

// AppointmentRequest is a validated appointment-call request. Required fields
// are always non-empty; optional fields are either empty or trimmed non-empty.
type AppointmentRequest struct {
	BusinessName        string `json:"businessName"`
	PhoneNumber         string `json:"phoneNumber"`
	ContactName         string `json:"contactName,omitempty"`
	Timezone            string `json:"timezone"`
	PreferredDate       string `json:"preferredDate"`
	PreferredTimeWindow string `json:"preferredTimeWindow"`
	Reason              string `json:"reason"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
	VoiceProfile        string `json:"voiceProfile"`
	CallBackNumber      string `json:"callBackNumber,omitempty"`
	Email               string `json:"email,omitempty"`
}

// CallPlan is what the planner produces for a single appointment call.
type CallPlan struct {
	// Script is the literal text/outline the assistant speaks.
	Script string `json:"script"`
	// Itinerary lists the discrete topics to cover, in order. May be empty.
	Itinerary []string `json:"itinerary"`
	// Summary is set only when the planner pre-computed an outcome summary.
	Summary string `json:"summary,omitempty"`
}

// CallResult is the telephony provider's report of a placed call. The
// orchestrator inspects only Status; everything else is provider-defined.
type CallResult struct {
	CallID      string `json:"callId"`
	Status      string `json:"status"`
	Provider    string `json:"provider,omitempty"`
	InitiatedAt string `json:"initiatedAt,omitempty"`
}

// ResponseMetadata accompanies every successful appointment response.
type ResponseMetadata struct {
	BusinessName     string `json:"businessName"`
	RequestTimestamp string `json:"requestTimestamp"`
}

// AppointmentResponse is the final payload returned to the client.
type AppointmentResponse struct {
	Script    string           `json:"script"`
	Call      CallResult       `json:"call"`
	Summary   string           `json:"summary"`
	Itinerary []string         `json:"itinerary"`
	Metadata  ResponseMetadata `json:"metadata"`
}
