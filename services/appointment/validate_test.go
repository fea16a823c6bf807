package appointment

import (
	"strings"
	"testing"
)

func validPayload() map[string]any {
	return map[string]any{
		"businessName":        "Sunrise Dental",
		"phoneNumber":         "+15551234567",
		"reason":              "Book cleaning",
		"preferredDate":       "2024-06-01",
		"preferredTimeWindow": "9am-12pm",
		"timezone":            "America/New_York",
		"voiceProfile":        "friendly",
	}
}

func firstErrorFor(t *testing.T, verr *ValidationError, field string) FieldError {
	t.Helper()
	if verr == nil {
		t.Fatal("expected a validation error, got nil")
	}
	for _, fe := range verr.Fields {
		if fe.Field == field {
			return fe
		}
	}
	t.Fatalf("no violation recorded for field %q, got %v", field, verr.Fields)
	return FieldError{}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	for _, field := range []string{"businessName", "phoneNumber", "reason"} {
		payload := validPayload()
		delete(payload, field)

		req, verr := ValidateAppointmentRequest(payload)
		if req != nil {
			t.Errorf("missing %s: expected rejection, got request %+v", field, req)
			continue
		}
		fe := firstErrorFor(t, verr, field)
		if !strings.Contains(fe.Message, field) {
			t.Errorf("missing %s: message %q does not reference the field", field, fe.Message)
		}
	}
}

func TestValidate_EmptyObject(t *testing.T) {
	req, verr := ValidateAppointmentRequest(map[string]any{})
	if req != nil {
		t.Fatalf("empty object: expected rejection, got %+v", req)
	}
	if len(verr.Fields) < 3 {
		t.Errorf("empty object: got %d violations, want at least the required fields", len(verr.Fields))
	}
	// The first surfaced message belongs to the first field in order.
	if verr.Fields[0].Field != "businessName" {
		t.Errorf("first violation field = %q, want businessName", verr.Fields[0].Field)
	}
	if verr.Error() != verr.Fields[0].Message {
		t.Errorf("Error() = %q, want first field message %q", verr.Error(), verr.Fields[0].Message)
	}
}

func TestValidate_UnsupportedVoiceProfile(t *testing.T) {
	payload := validPayload()
	payload["voiceProfile"] = "robotic-unsupported"

	_, verr := ValidateAppointmentRequest(payload)
	fe := firstErrorFor(t, verr, "voiceProfile")
	if !strings.Contains(fe.Message, "voiceProfile") {
		t.Errorf("voiceProfile message %q does not name the field", fe.Message)
	}
}

func TestValidate_UnsupportedTimezone(t *testing.T) {
	payload := validPayload()
	payload["timezone"] = "Mars/Olympus_Mons"

	_, verr := ValidateAppointmentRequest(payload)
	firstErrorFor(t, verr, "timezone")
}

func TestValidate_BadFormats(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"malformed phone", "phoneNumber", "not-a-phone"},
		{"short phone", "phoneNumber", "12"},
		{"malformed date", "preferredDate", "June 1st"},
		{"malformed email", "email", "not-an-email"},
		{"malformed callback", "callBackNumber", "call me maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			payload[tt.field] = tt.value

			req, verr := ValidateAppointmentRequest(payload)
			if req != nil {
				t.Fatalf("expected rejection, got %+v", req)
			}
			firstErrorFor(t, verr, tt.field)
		})
	}
}

func TestValidate_WrongTypes(t *testing.T) {
	payload := validPayload()
	payload["businessName"] = 42
	payload["email"] = true

	req, verr := ValidateAppointmentRequest(payload)
	if req != nil {
		t.Fatalf("expected rejection, got %+v", req)
	}
	for _, field := range []string{"businessName", "email"} {
		fe := firstErrorFor(t, verr, field)
		if !strings.Contains(fe.Message, "must be a string") {
			t.Errorf("%s: message %q, want a type violation", field, fe.Message)
		}
	}
}

func TestValidate_ValidRequest(t *testing.T) {
	payload := validPayload()
	payload["contactName"] = "Dr. Smith"
	payload["specialInstructions"] = "Ask for the morning slot"
	payload["callBackNumber"] = "+1 555 987 6543"
	payload["email"] = "client@example.com"

	req, verr := ValidateAppointmentRequest(payload)
	if verr != nil {
		t.Fatalf("valid payload rejected: %v", verr.Fields)
	}
	if req.BusinessName != "Sunrise Dental" || req.PhoneNumber != "+15551234567" || req.Reason != "Book cleaning" {
		t.Errorf("required fields not carried over: %+v", req)
	}
	if req.ContactName != "Dr. Smith" || req.Email != "client@example.com" {
		t.Errorf("optional fields not carried over: %+v", req)
	}
}

func TestValidate_OptionalFieldsAbsent(t *testing.T) {
	req, verr := ValidateAppointmentRequest(validPayload())
	if verr != nil {
		t.Fatalf("valid payload rejected: %v", verr.Fields)
	}
	if req.ContactName != "" || req.SpecialInstructions != "" || req.CallBackNumber != "" || req.Email != "" {
		t.Errorf("absent optional fields should be empty, got %+v", req)
	}
}
