package query

import (
	"testing"
	"time"

	"civicreport-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func sampleIssues() []models.Issue {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []models.Issue{
		{
			ID: "issue_1", Title: "Pothole on 5th Ave", Description: "Large pothole",
			Category: models.Pothole, Priority: models.High, Status: models.InProgress,
			ReportedBy: "user_1", AssignedTo: ptr("dept_2"), ReportedAt: base.Add(-2 * time.Hour),
		},
		{
			ID: "issue_2", Title: "Graffiti in Central Park", Description: "Vandalism on walls",
			Category: models.Graffiti, Priority: models.Medium, Status: models.Resolved,
			ReportedBy: "user_1", AssignedTo: ptr("dept_5"), ReportedAt: base.Add(-24 * time.Hour),
		},
		{
			ID: "issue_3", Title: "Street Light Out", Description: "Safety concern at night",
			Category: models.Streetlight, Priority: models.Medium, Status: models.Submitted,
			ReportedBy: "user_2", ReportedAt: base.Add(-48 * time.Hour),
		},
	}
}

func TestFilterEmptyCriteriaMatchesAll(t *testing.T) {
	issues := sampleIssues()
	assert.Len(t, Filter(issues, Criteria{}), len(issues))
}

func TestFilterByEachDimension(t *testing.T) {
	issues := sampleIssues()

	byStatus := Filter(issues, Criteria{Status: ptr(models.Resolved)})
	require.Len(t, byStatus, 1)
	assert.Equal(t, "issue_2", byStatus[0].ID)

	byCategory := Filter(issues, Criteria{Category: ptr(models.Pothole)})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "issue_1", byCategory[0].ID)

	byPriority := Filter(issues, Criteria{Priority: ptr(models.Medium)})
	assert.Len(t, byPriority, 2)

	byReporter := Filter(issues, Criteria{ReportedBy: "user_2"})
	require.Len(t, byReporter, 1)
	assert.Equal(t, "issue_3", byReporter[0].ID)

	byAssignee := Filter(issues, Criteria{AssignedTo: "dept_5"})
	require.Len(t, byAssignee, 1)
	assert.Equal(t, "issue_2", byAssignee[0].ID)
}

func TestFilterCombinesWithAnd(t *testing.T) {
	issues := sampleIssues()

	out := Filter(issues, Criteria{Priority: ptr(models.Medium), ReportedBy: "user_1"})
	require.Len(t, out, 1)
	assert.Equal(t, "issue_2", out[0].ID)

	none := Filter(issues, Criteria{Status: ptr(models.Resolved), ReportedBy: "user_2"})
	assert.Empty(t, none)
}

func TestFilterSearch(t *testing.T) {
	issues := sampleIssues()

	byTitle := Filter(issues, Criteria{Search: "POTHOLE"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, "issue_1", byTitle[0].ID)

	byDescription := Filter(issues, Criteria{Search: "safety"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "issue_3", byDescription[0].ID)

	byReporter := Filter(issues, Criteria{Search: "user_2"})
	require.Len(t, byReporter, 1)
	assert.Equal(t, "issue_3", byReporter[0].ID)

	assert.Empty(t, Filter(issues, Criteria{Search: "sinkhole"}))
}

func TestFilterIgnoresUnrecognizedEnumValues(t *testing.T) {
	issues := sampleIssues()

	bogusStatus := models.IssueStatus("escalated")
	assert.Len(t, Filter(issues, Criteria{Status: &bogusStatus}), len(issues))

	bogusCategory := models.IssueCategory("sinkhole")
	assert.Len(t, Filter(issues, Criteria{Category: &bogusCategory}), len(issues))
}

func TestFilterSoundness(t *testing.T) {
	issues := sampleIssues()
	criteria := Criteria{Priority: ptr(models.Medium), Search: "central"}

	matched := Filter(issues, criteria)
	inResult := make(map[string]bool)
	for _, issue := range matched {
		inResult[issue.ID] = true
		assert.Equal(t, models.Medium, issue.Priority)
	}
	for _, issue := range issues {
		if !inResult[issue.ID] {
			violates := issue.Priority != models.Medium || !matchesSearch(issue, criteria.Search)
			assert.True(t, violates, "excluded issue %s satisfies all criteria", issue.ID)
		}
	}
}

func TestSortByRecency(t *testing.T) {
	issues := sampleIssues() // ids 1, 2, 3 from newest to oldest

	sorted := SortByRecency([]models.Issue{issues[2], issues[0], issues[1]})
	require.Len(t, sorted, 3)
	assert.Equal(t, "issue_1", sorted[0].ID)
	assert.Equal(t, "issue_2", sorted[1].ID)
	assert.Equal(t, "issue_3", sorted[2].ID)
}

func TestSortByRecencyStableOnTies(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issues := []models.Issue{
		{ID: "a", ReportedAt: at},
		{ID: "b", ReportedAt: at},
		{ID: "c", ReportedAt: at.Add(time.Hour)},
	}

	sorted := SortByRecency(issues)
	assert.Equal(t, "c", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID, "equal timestamps keep input order")
	assert.Equal(t, "b", sorted[2].ID)

	// input is left untouched
	assert.Equal(t, "a", issues[0].ID)
}
