// Package notify keeps an in-memory notification feed per citizen,
// generated from issue store mutation events. Delivery beyond this
// process is someone else's job; the feed only accumulates and tracks
// read state.
package notify

import (
	"fmt"
	"sync"
	"time"

	"civicreport-be/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a feed entry addressed to the reporter of an issue.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IssueID   string    `json:"issueId"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Feed accumulates notifications per user, newest first.
type Feed struct {
	mu     sync.RWMutex
	byUser map[string][]*Notification
	owner  map[string]string // notification id -> user id

	now   func() time.Time
	newID func() string
}

func NewFeed() *Feed {
	return &Feed{
		byUser: make(map[string][]*Notification),
		owner:  make(map[string]string),
		now:    time.Now,
		newID:  func() string { return primitive.NewObjectID().Hex() },
	}
}

// HandleEvent translates a store mutation into a feed entry for the
// issue's reporter. Register it with IssueStore.Subscribe.
func (f *Feed) HandleEvent(ev store.Event) {
	issue := ev.Issue
	if issue.ReportedBy == "" {
		return
	}

	var kind, title, message string
	switch ev.Type {
	case store.EventCreated:
		kind = "confirmation"
		title = "Report Received"
		message = fmt.Sprintf("We received your report %q", issue.Title)
	case store.EventStatusChanged:
		kind = "status_update"
		title = "Issue Status Updated"
		message = fmt.Sprintf("Your report %q is now %s", issue.Title, issue.Status.Label())
	case store.EventAssigned:
		kind = "assignment"
		title = "Issue Assigned"
		message = fmt.Sprintf("Your report %q was assigned to a department", issue.Title)
	default:
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	n := &Notification{
		ID:        f.newID(),
		Type:      kind,
		Title:     title,
		Message:   message,
		IssueID:   issue.ID,
		CreatedAt: f.now(),
	}
	f.byUser[issue.ReportedBy] = append([]*Notification{n}, f.byUser[issue.ReportedBy]...)
	f.owner[n.ID] = issue.ReportedBy
}

// List returns the user's notifications, newest first.
func (f *Feed) List(userID string) []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Notification, 0, len(f.byUser[userID]))
	for _, n := range f.byUser[userID] {
		out = append(out, *n)
	}
	return out
}

func (f *Feed) UnreadCount(userID string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	count := 0
	for _, n := range f.byUser[userID] {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marks one of the user's notifications as read.
func (f *Feed) MarkRead(userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.owner[id] != userID {
		return &store.NotFoundError{Kind: "notification", ID: id}
	}
	for _, n := range f.byUser[userID] {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return &store.NotFoundError{Kind: "notification", ID: id}
}

func (f *Feed) MarkAllRead(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.byUser[userID] {
		n.Read = true
	}
}
