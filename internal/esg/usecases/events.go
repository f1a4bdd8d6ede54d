package usecases

import (
	"time"

	"esg-server/internal/infra/async"
)

const TopicSessionEvents async.BrokerTopicName = "form.session_events"

const (
	EventValueSet           = "value_set"
	EventValuesCleared      = "values_cleared"
	EventSubmissionAccepted = "submission_accepted"
	EventSubmissionFailed   = "submission_failed"
	EventSnapshotRefreshed  = "snapshot_refreshed"
)

// SessionEvent is broadcast on the internal broker for every notable state
// change of a form session. The websocket controller relays it to connected
// clients; the snapshot worker reacts to accepted submissions.
type SessionEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	CompanyID int       `json:"company_id"`
	Field     string    `json:"field,omitempty"`
	Kind      string    `json:"kind,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
