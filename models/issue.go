package models

import "time"

// IssueCategory enum
type IssueCategory string

const (
	Pothole     IssueCategory = "pothole"
	Streetlight IssueCategory = "streetlight"
	Graffiti    IssueCategory = "graffiti"
	Park        IssueCategory = "park"
	Water       IssueCategory = "water"
	Trash       IssueCategory = "trash"
	Road        IssueCategory = "road"
	Noise       IssueCategory = "noise"
)

// Categories returns every recognized category in display order.
func Categories() []IssueCategory {
	return []IssueCategory{Pothole, Streetlight, Graffiti, Park, Water, Trash, Road, Noise}
}

func (c IssueCategory) Valid() bool {
	switch c {
	case Pothole, Streetlight, Graffiti, Park, Water, Trash, Road, Noise:
		return true
	}
	return false
}

// IssuePriority enum
type IssuePriority string

const (
	Low    IssuePriority = "low"
	Medium IssuePriority = "medium"
	High   IssuePriority = "high"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case Low, Medium, High:
		return true
	}
	return false
}

// IssueStatus enum
type IssueStatus string

const (
	Submitted    IssueStatus = "submitted"
	Acknowledged IssueStatus = "acknowledged"
	InProgress   IssueStatus = "in_progress"
	Resolved     IssueStatus = "resolved"
	Closed       IssueStatus = "closed"
)

// Statuses returns every recognized status in lifecycle order.
func Statuses() []IssueStatus {
	return []IssueStatus{Submitted, Acknowledged, InProgress, Resolved, Closed}
}

func (s IssueStatus) Valid() bool {
	switch s {
	case Submitted, Acknowledged, InProgress, Resolved, Closed:
		return true
	}
	return false
}

// Label returns the human-readable form of a status, e.g. "In Progress".
func (s IssueStatus) Label() string {
	switch s {
	case Submitted:
		return "Submitted"
	case Acknowledged:
		return "Acknowledged"
	case InProgress:
		return "In Progress"
	case Resolved:
		return "Resolved"
	case Closed:
		return "Closed"
	}
	return string(s)
}

// Location is a free-text address, optionally with coordinates.
type Location struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Address string   `json:"address"`
}

// Update is an immutable audit entry on an issue's timeline.
type Update struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    IssueCategory `json:"category"`
	Priority    IssuePriority `json:"priority"`
	Status      IssueStatus   `json:"status"`
	Location    Location      `json:"location"`
	ReportedBy  string        `json:"reportedBy"`
	ReportedAt  time.Time     `json:"reportedAt"`
	ResolvedAt  *time.Time    `json:"resolvedAt,omitempty"`
	AssignedTo  *string       `json:"assignedTo,omitempty"`
	Images      []string      `json:"images"`
	Updates     []Update      `json:"updates"`
}

// Clone returns a deep copy so callers never alias store-internal state.
func (i Issue) Clone() Issue {
	out := i
	out.Images = append([]string{}, i.Images...)
	out.Updates = append([]Update{}, i.Updates...)
	if i.ResolvedAt != nil {
		t := *i.ResolvedAt
		out.ResolvedAt = &t
	}
	if i.AssignedTo != nil {
		d := *i.AssignedTo
		out.AssignedTo = &d
	}
	if i.Location.Lat != nil {
		v := *i.Location.Lat
		out.Location.Lat = &v
	}
	if i.Location.Lng != nil {
		v := *i.Location.Lng
		out.Location.Lng = &v
	}
	return out
}
