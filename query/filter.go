// Package query computes filtered views and derived statistics over a
// snapshot of the issue collection. Every function is pure: same
// inputs, same outputs, no wall-clock reads.
package query

import (
	"sort"
	"strings"

	"civicreport-be/models"
)

// Criteria narrows an issue query. Absent fields impose no constraint,
// and unrecognized enum values are ignored rather than failing.
type Criteria struct {
	Status     *models.IssueStatus   `json:"status,omitempty"`
	Category   *models.IssueCategory `json:"category,omitempty"`
	Priority   *models.IssuePriority `json:"priority,omitempty"`
	ReportedBy string                `json:"reportedBy,omitempty"`
	AssignedTo string                `json:"assignedTo,omitempty"`
	Search     string                `json:"search,omitempty"`
}

// Filter returns the issues matching every provided criterion.
func Filter(issues []models.Issue, c Criteria) []models.Issue {
	out := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if matches(issue, c) {
			out = append(out, issue)
		}
	}
	return out
}

func matches(issue models.Issue, c Criteria) bool {
	if c.Status != nil && c.Status.Valid() && issue.Status != *c.Status {
		return false
	}
	if c.Category != nil && c.Category.Valid() && issue.Category != *c.Category {
		return false
	}
	if c.Priority != nil && c.Priority.Valid() && issue.Priority != *c.Priority {
		return false
	}
	if c.ReportedBy != "" && issue.ReportedBy != c.ReportedBy {
		return false
	}
	if c.AssignedTo != "" {
		if issue.AssignedTo == nil || *issue.AssignedTo != c.AssignedTo {
			return false
		}
	}
	if c.Search != "" && !matchesSearch(issue, c.Search) {
		return false
	}
	return true
}

func matchesSearch(issue models.Issue, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(issue.Title), term) ||
		strings.Contains(strings.ToLower(issue.Description), term) ||
		strings.Contains(strings.ToLower(issue.ReportedBy), term)
}

// SortByRecency returns a copy sorted newest first by reportedAt.
// Issues with equal timestamps keep their relative order.
func SortByRecency(issues []models.Issue) []models.Issue {
	out := append([]models.Issue{}, issues...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReportedAt.After(out[j].ReportedAt)
	})
	return out
}
