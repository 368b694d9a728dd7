package store

import "civicreport-be/models"

// EventType enum
type EventType string

const (
	EventCreated       EventType = "created"
	EventStatusChanged EventType = "status_changed"
	EventAssigned      EventType = "assigned"
	EventUpdateAdded   EventType = "update_added"
	EventDeleted       EventType = "deleted"
)

// Event describes a committed issue mutation. Subscribers receive a
// copy of the post-mutation record (pre-deletion copy for EventDeleted).
type Event struct {
	Type  EventType
	Issue models.Issue
}
