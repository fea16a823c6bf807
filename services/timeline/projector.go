// Package timeline projects appointment-call outcomes onto the linear status
// timeline the client renders. It is pure presentation: no orchestrator state
// leaks in, and every projection replaces the previous entries wholesale.
package timeline

import (
	"fmt"

	"callsmith/models"
)

// Ready is the idle timeline shown before any submission.
func Ready() []models.TimelineEntry {
	return []models.TimelineEntry{
		{
			ID:          "init",
			Label:       "Ready",
			Status:      models.TimelineDone,
			Description: "Provide appointment details to start a call.",
		},
	}
}

// InFlight is the single active entry shown while a request is being
// processed.
func InFlight() []models.TimelineEntry {
	return []models.TimelineEntry{
		{
			ID:          "collecting",
			Label:       "Collecting details",
			Status:      models.TimelineActive,
			Description: "Crafting call script and preparing the assistant.",
		},
	}
}

// Success maps a completed appointment response onto the three result
// entries: finalized script, call status, and summary.
func Success(resp *models.AppointmentResponse) []models.TimelineEntry {
	scriptDesc := resp.Script
	if scriptDesc == "" {
		scriptDesc = "Assistant prepared a call script based on your preferences."
	}

	callStatus := models.TimelineActive
	if resp.Call.Status == models.CallStatusCompleted {
		callStatus = models.TimelineDone
	}
	callDesc := fmt.Sprintf("Call %s.", resp.Call.Status)
	if resp.Call.Status == "" {
		callDesc = "Call initiated."
	}
	if resp.Call.Status == models.CallStatusSimulated {
		callDesc = "Simulated call created. Configure telephony credentials to enable live calling."
	}

	summaryDesc := resp.Summary
	if summaryDesc == "" {
		summaryDesc = "Waiting for the assistant to return the appointment summary."
	}

	return []models.TimelineEntry{
		{ID: "script", Label: "Script finalized", Status: models.TimelineDone, Description: scriptDesc},
		{ID: "call", Label: "Call status", Status: callStatus, Description: callDesc},
		{ID: "summary", Label: "Summary", Status: models.TimelinePending, Description: summaryDesc},
	}
}

// Failure replaces any in-flight entry with a single error entry carrying the
// surfaced message.
func Failure(message string) []models.TimelineEntry {
	if message == "" {
		message = "Submission failed."
	}
	return []models.TimelineEntry{
		{
			ID:          "collecting",
			Label:       "Collecting details",
			Status:      models.TimelineError,
			Description: message,
		},
	}
}
