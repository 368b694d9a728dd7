// Package session bridges the presentation layer to the issue store
// and query engine. A Session mirrors every store operation, tracks
// loading and error cursors, keeps the fetched list, active filter,
// and selected issue in sync, and simulates backend latency so the
// surface contract stays identical when a real backend replaces the
// in-memory store.
package session

import (
	"sync"
	"time"

	"civicreport-be/models"
	"civicreport-be/query"
	"civicreport-be/store"
)

type Session struct {
	store *store.IssueStore
	delay time.Duration
	now   func() time.Time

	mu       sync.Mutex
	issues   []models.Issue
	selected *models.Issue
	filters  query.Criteria
	loading  bool
	errMsg   string
}

func New(st *store.IssueStore, delay time.Duration) *Session {
	return &Session{store: st, delay: delay, now: time.Now}
}

// SetClock overrides the time source used for trend windows. Intended
// for tests.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// State is a point-in-time copy of the session cursors.
type State struct {
	Issues   []models.Issue `json:"issues"`
	Selected *models.Issue  `json:"selected,omitempty"`
	Filters  query.Criteria `json:"filters"`
	Loading  bool           `json:"loading"`
	Error    string         `json:"error,omitempty"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := State{
		Issues:  append([]models.Issue{}, s.issues...),
		Filters: s.filters,
		Loading: s.loading,
		Error:   s.errMsg,
	}
	if s.selected != nil {
		sel := s.selected.Clone()
		out.Selected = &sel
	}
	return out
}

// begin marks the session busy, clears the previous error, and then
// sleeps the simulated network latency. Once begun an operation always
// runs to completion; there is no cancellation or timeout.
func (s *Session) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.loading = false
	s.mu.Unlock()
}

// FetchIssues replaces the in-memory list with the filtered view and
// records the filter used.
func (s *Session) FetchIssues(criteria query.Criteria) ([]models.Issue, error) {
	s.begin()
	issues := s.store.List(criteria)
	s.mu.Lock()
	s.issues = issues
	s.filters = criteria
	s.loading = false
	s.mu.Unlock()
	return issues, nil
}

// FetchIssueByID loads one issue and selects it.
func (s *Session) FetchIssueByID(id string) (models.Issue, error) {
	s.begin()
	issue, err := s.store.Get(id)
	if err != nil {
		s.fail(err)
		return models.Issue{}, err
	}
	s.mu.Lock()
	s.selected = &issue
	s.loading = false
	s.mu.Unlock()
	return issue, nil
}

// CreateIssue submits a new report and prepends it to the list.
func (s *Session) CreateIssue(p store.CreatePayload) (models.Issue, error) {
	s.begin()
	issue, err := s.store.Create(p)
	if err != nil {
		s.fail(err)
		return models.Issue{}, err
	}
	s.mu.Lock()
	s.issues = append([]models.Issue{issue}, s.issues...)
	s.loading = false
	s.mu.Unlock()
	return issue, nil
}

// UpdateStatus moves an issue to a new status and syncs the cursors.
func (s *Session) UpdateStatus(id string, status models.IssueStatus, message string) (models.Issue, error) {
	s.begin()
	issue, err := s.store.SetStatus(id, status, message)
	if err != nil {
		s.fail(err)
		return models.Issue{}, err
	}
	s.replace(issue)
	return issue, nil
}

// AssignIssue routes an issue to a department and syncs the cursors.
func (s *Session) AssignIssue(id, departmentID string) (models.Issue, error) {
	s.begin()
	issue, err := s.store.Assign(id, departmentID)
	if err != nil {
		s.fail(err)
		return models.Issue{}, err
	}
	s.replace(issue)
	return issue, nil
}

// AddUpdate appends a timeline entry and syncs the refreshed record.
func (s *Session) AddUpdate(id, message, author string) (models.Update, error) {
	s.begin()
	update, err := s.store.AppendUpdate(id, message, author)
	if err != nil {
		s.fail(err)
		return models.Update{}, err
	}
	if issue, err := s.store.Get(id); err == nil {
		s.replace(issue)
	}
	return update, nil
}

// DeleteIssue removes an issue; a matching selection is cleared.
func (s *Session) DeleteIssue(id string) error {
	s.begin()
	if err := s.store.Delete(id); err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	for i, issue := range s.issues {
		if issue.ID == id {
			s.issues = append(s.issues[:i], s.issues[i+1:]...)
			break
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// replace swaps the updated record into the list and, when it is the
// selected issue, into the selection as well.
func (s *Session) replace(issue models.Issue) {
	s.mu.Lock()
	for i := range s.issues {
		if s.issues[i].ID == issue.ID {
			s.issues[i] = issue
			break
		}
	}
	if s.selected != nil && s.selected.ID == issue.ID {
		sel := issue.Clone()
		s.selected = &sel
	}
	s.loading = false
	s.mu.Unlock()
}

func (s *Session) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *Session) ClearSelected() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// Stats recomputes the per-status counts over the fetched list. The
// result is never stored, so it cannot drift from the collection.
func (s *Session) Stats() query.Stats {
	s.mu.Lock()
	issues := append([]models.Issue{}, s.issues...)
	s.mu.Unlock()
	return query.ComputeStats(issues)
}

// The analytics views below run over the full store snapshot rather
// than the fetched list, so admin dashboards see the whole city even
// while a filtered list is loaded.

func (s *Session) Overview() query.Overview {
	return query.ComputeOverview(s.store.Snapshot())
}

func (s *Session) StatusCounts() map[models.IssueStatus]int {
	return query.ComputeStats(s.store.Snapshot()).ByStatus
}

func (s *Session) CategoryStats() []query.CategoryCount {
	return query.ComputeCategoryHistogram(s.store.Snapshot())
}

func (s *Session) DepartmentPerformance(departments []models.Department) []query.DepartmentPerformance {
	return query.ComputeDepartmentPerformance(s.store.Snapshot(), departments)
}

func (s *Session) Trend(days int) []query.TrendPoint {
	return query.ComputeDailyTrend(s.store.Snapshot(), days, s.now())
}

func (s *Session) Contribution(userID string) query.UserContribution {
	return query.ComputeUserContribution(s.store.Snapshot(), userID)
}
