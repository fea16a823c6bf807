package models

// TimelineStatus is the display state of a single timeline entry.
type TimelineStatus string

const (
	TimelinePending TimelineStatus = "pending"
	TimelineActive  TimelineStatus = "active"
	TimelineDone    TimelineStatus = "done"
	TimelineError   TimelineStatus = "error"
)

// TimelineEntry is one row of the client status timeline. Entries are
// replaced wholesale per request, never patched across requests.
type TimelineEntry struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Status      TimelineStatus `json:"status"`
}
