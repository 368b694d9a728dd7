package store

import (
	"strings"
	"sync"
	"time"

	"civicreport-be/models"
	"civicreport-be/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clock supplies timestamps for store mutations.
type Clock func() time.Time

// IDFunc mints fresh identifiers for issues and updates.
type IDFunc func() string

func newObjectID() string {
	return primitive.NewObjectID().Hex()
}

// IssueStore owns the authoritative issue collection. All mutation
// goes through it; reads return deep copies. Mutations are serialized
// by the store's lock and applied atomically.
type IssueStore struct {
	mu          sync.RWMutex
	issues      map[string]*models.Issue
	order       []string // issue ids, newest first
	departments *DepartmentStore

	now   Clock
	newID IDFunc
	subs  []func(Event)
}

func NewIssueStore(departments *DepartmentStore) *IssueStore {
	return &IssueStore{
		issues:      make(map[string]*models.Issue),
		departments: departments,
		now:         time.Now,
		newID:       newObjectID,
	}
}

// SetClock overrides the timestamp source. Intended for tests and seeding.
func (s *IssueStore) SetClock(c Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = c
}

// SetIDFunc overrides the identifier source. Intended for tests.
func (s *IssueStore) SetIDFunc(f IDFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newID = f
}

// Subscribe registers fn to receive every committed mutation. fn is
// called synchronously after the store's lock is released and must not
// retain the record beyond the call.
func (s *IssueStore) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *IssueStore) emit(ev Event) {
	s.mu.RLock()
	subs := append([]func(Event){}, s.subs...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// CreatePayload carries the citizen-supplied fields for a new issue.
type CreatePayload struct {
	Title       string
	Description string
	Category    models.IssueCategory
	Priority    models.IssuePriority
	Location    models.Location
	ReportedBy  string
	Images      []string
}

const maxImages = 5

// Create validates the payload and inserts a new issue with status
// "submitted", an empty timeline, and a fresh unique id.
func (s *IssueStore) Create(p CreatePayload) (models.Issue, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.Issue{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(p.Description) == "" {
		return models.Issue{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if strings.TrimSpace(p.Location.Address) == "" {
		return models.Issue{}, &ValidationError{Field: "location", Reason: "must not be empty"}
	}
	if !p.Category.Valid() {
		return models.Issue{}, &ValidationError{Field: "category", Reason: "unrecognized category " + string(p.Category)}
	}
	priority := p.Priority
	if priority == "" {
		priority = models.Medium
	}
	if !priority.Valid() {
		return models.Issue{}, &ValidationError{Field: "priority", Reason: "unrecognized priority " + string(p.Priority)}
	}
	if len(p.Images) > maxImages {
		return models.Issue{}, &ValidationError{Field: "images", Reason: "at most 5 images per issue"}
	}

	s.mu.Lock()
	issue := &models.Issue{
		ID:          s.newID(),
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Priority:    priority,
		Status:      models.Submitted,
		Location:    p.Location,
		ReportedBy:  p.ReportedBy,
		ReportedAt:  s.now(),
		Images:      append([]string{}, p.Images...),
		Updates:     []models.Update{},
	}
	s.issues[issue.ID] = issue
	s.order = append([]string{issue.ID}, s.order...)
	created := issue.Clone()
	s.mu.Unlock()

	s.emit(Event{Type: EventCreated, Issue: created})
	return created, nil
}

// Get returns a copy of the issue with the given id.
func (s *IssueStore) Get(id string) (models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	issue, ok := s.issues[id]
	if !ok {
		return models.Issue{}, &NotFoundError{Kind: "issue", ID: id}
	}
	return issue.Clone(), nil
}

// Snapshot returns a copy of the full collection, newest first.
func (s *IssueStore) Snapshot() []models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Issue, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.issues[id].Clone())
	}
	return out
}

// List returns the issues matching criteria, newest first.
func (s *IssueStore) List(criteria query.Criteria) []models.Issue {
	return query.SortByRecency(query.Filter(s.Snapshot(), criteria))
}

// SetStatus moves an issue to the given status. Any recognized status
// is reachable from any other; only an unrecognized name fails. The
// first transition into "resolved" stamps resolvedAt, and later
// re-resolutions leave the original stamp intact. A non-empty message
// is appended to the timeline authored by "System".
func (s *IssueStore) SetStatus(id string, status models.IssueStatus, message string) (models.Issue, error) {
	if !status.Valid() {
		return models.Issue{}, &InvalidTransitionError{Status: string(status)}
	}

	s.mu.Lock()
	issue, ok := s.issues[id]
	if !ok {
		s.mu.Unlock()
		return models.Issue{}, &NotFoundError{Kind: "issue", ID: id}
	}
	issue.Status = status
	if status == models.Resolved && issue.ResolvedAt == nil {
		t := s.now()
		issue.ResolvedAt = &t
	}
	if message != "" {
		issue.Updates = append(issue.Updates, models.Update{
			ID:        s.newID(),
			Message:   message,
			Author:    "System",
			CreatedAt: s.now(),
		})
	}
	updated := issue.Clone()
	s.mu.Unlock()

	s.emit(Event{Type: EventStatusChanged, Issue: updated})
	return updated, nil
}

// Assign routes an issue to a known department. An issue still in
// "submitted" advances to "acknowledged" as a side effect; any other
// status is left untouched.
func (s *IssueStore) Assign(id, departmentID string) (models.Issue, error) {
	if !s.departments.Has(departmentID) {
		return models.Issue{}, &NotFoundError{Kind: "department", ID: departmentID}
	}

	s.mu.Lock()
	issue, ok := s.issues[id]
	if !ok {
		s.mu.Unlock()
		return models.Issue{}, &NotFoundError{Kind: "issue", ID: id}
	}
	dept := departmentID
	issue.AssignedTo = &dept
	if issue.Status == models.Submitted {
		issue.Status = models.Acknowledged
	}
	updated := issue.Clone()
	s.mu.Unlock()

	s.emit(Event{Type: EventAssigned, Issue: updated})
	return updated, nil
}

// AppendUpdate adds an audit entry to an issue's timeline.
func (s *IssueStore) AppendUpdate(id, message, author string) (models.Update, error) {
	if strings.TrimSpace(message) == "" {
		return models.Update{}, &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	s.mu.Lock()
	issue, ok := s.issues[id]
	if !ok {
		s.mu.Unlock()
		return models.Update{}, &NotFoundError{Kind: "issue", ID: id}
	}
	update := models.Update{
		ID:        s.newID(),
		Message:   message,
		Author:    author,
		CreatedAt: s.now(),
	}
	issue.Updates = append(issue.Updates, update)
	updated := issue.Clone()
	s.mu.Unlock()

	s.emit(Event{Type: EventUpdateAdded, Issue: updated})
	return update, nil
}

// Delete removes an issue and its timeline entirely.
func (s *IssueStore) Delete(id string) error {
	s.mu.Lock()
	issue, ok := s.issues[id]
	if !ok {
		s.mu.Unlock()
		return &NotFoundError{Kind: "issue", ID: id}
	}
	deleted := issue.Clone()
	delete(s.issues, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.emit(Event{Type: EventDeleted, Issue: deleted})
	return nil
}
