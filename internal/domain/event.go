package domain

// EventAction tags a change event published to downstream consumers.
type EventAction string

const (
	EventCreated EventAction = "created"
	EventUpdated EventAction = "updated"
	EventDeleted EventAction = "deleted"
)

// Event describes one committed change to a tracked entity.
type Event struct {
	Entity  string      `json:"entity"`
	Action  EventAction `json:"action"`
	Payload any         `json:"payload,omitempty"`
}
