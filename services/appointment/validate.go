package appointment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"callsmith/models"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const dateLayout = "2006-01-02"

// ValidateAppointmentRequest checks a sanitized payload against the
// appointment contract and returns either a well-formed request or the full
// ordered set of field violations.
func ValidateAppointmentRequest(payload map[string]any) (*models.AppointmentRequest, *ValidationError) {
	v := &validator{payload: payload}

	req := &models.AppointmentRequest{
		BusinessName:        v.required("businessName", "businessName is required."),
		PhoneNumber:         v.required("phoneNumber", "phoneNumber is required."),
		ContactName:         v.optional("contactName"),
		Timezone:            v.required("timezone", "timezone is required."),
		PreferredDate:       v.required("preferredDate", "preferredDate is required."),
		PreferredTimeWindow: v.required("preferredTimeWindow", "preferredTimeWindow is required."),
		Reason:              v.required("reason", "reason is required."),
		SpecialInstructions: v.optional("specialInstructions"),
		VoiceProfile:        v.required("voiceProfile", "voiceProfile is required."),
		CallBackNumber:      v.optional("callBackNumber"),
		Email:               v.optional("email"),
	}

	if req.PhoneNumber != "" && !phoneRe.MatchString(req.PhoneNumber) {
		v.fail("phoneNumber", "phoneNumber must be a valid phone number.")
	}
	if req.Timezone != "" && !contains(models.SupportedTimezones, req.Timezone) {
		v.fail("timezone", "timezone must be one of the supported timezones.")
	}
	if req.PreferredDate != "" {
		if _, err := time.Parse(dateLayout, req.PreferredDate); err != nil {
			v.fail("preferredDate", "preferredDate must be a date in YYYY-MM-DD format.")
		}
	}
	if req.VoiceProfile != "" && !contains(models.VoiceProfiles, req.VoiceProfile) {
		v.fail("voiceProfile", fmt.Sprintf("voiceProfile must be one of: %s.", strings.Join(models.VoiceProfiles, ", ")))
	}
	if req.CallBackNumber != "" && !phoneRe.MatchString(req.CallBackNumber) {
		v.fail("callBackNumber", "callBackNumber must be a valid phone number.")
	}
	if req.Email != "" && !emailRe.MatchString(req.Email) {
		v.fail("email", "email must be a valid email address.")
	}

	if len(v.errs) > 0 {
		return nil, &ValidationError{Fields: v.errs}
	}
	return req, nil
}

type validator struct {
	payload map[string]any
	errs    []FieldError
}

func (v *validator) fail(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// required returns the field's string value, recording a violation when the
// field is missing, empty, or not a string.
func (v *validator) required(field, missingMsg string) string {
	raw, ok := v.payload[field]
	if !ok {
		v.fail(field, missingMsg)
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		v.fail(field, fmt.Sprintf("%s must be a string.", field))
		return ""
	}
	if value == "" {
		v.fail(field, missingMsg)
		return ""
	}
	return value
}

// optional returns the field's string value, or "" when absent. Only a
// non-string value is a violation.
func (v *validator) optional(field string) string {
	raw, ok := v.payload[field]
	if !ok {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		v.fail(field, fmt.Sprintf("%s must be a string.", field))
		return ""
	}
	return value
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
