package query

import (
	"testing"
	"time"

	"civicreport-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuesWithStatuses(statuses ...models.IssueStatus) []models.Issue {
	out := make([]models.Issue, len(statuses))
	for i, s := range statuses {
		out[i] = models.Issue{ID: string(rune('a' + i)), Status: s, Category: models.Pothole}
	}
	return out
}

func TestComputeStats(t *testing.T) {
	issues := issuesWithStatuses(
		models.Submitted, models.Submitted, models.InProgress, models.Resolved, models.Closed,
	)

	s := ComputeStats(issues)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.ByStatus[models.Submitted])
	assert.Equal(t, 0, s.ByStatus[models.Acknowledged])
	assert.Equal(t, 1, s.ByStatus[models.InProgress])
	assert.Equal(t, 1, s.ByStatus[models.Resolved])
	assert.Equal(t, 1, s.ByStatus[models.Closed])
	assert.Equal(t, 1, s.Resolved)
	assert.Equal(t, 40, s.ResolutionRate, "(resolved+closed)/total")

	sum := 0
	for _, c := range s.ByStatus {
		sum += c
	}
	assert.Equal(t, s.Total, sum)
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.ResolutionRate)
	assert.Len(t, s.ByStatus, len(models.Statuses()), "every status has a bucket")
}

func TestComputeCategoryHistogram(t *testing.T) {
	issues := []models.Issue{
		{Category: models.Pothole},
		{Category: models.Pothole},
		{Category: models.Pothole},
		{Category: models.Graffiti},
	}

	hist := ComputeCategoryHistogram(issues)
	require.Len(t, hist, 8, "all categories present, zero buckets included")

	byCategory := make(map[models.IssueCategory]CategoryCount)
	for _, bucket := range hist {
		byCategory[bucket.Category] = bucket
	}
	assert.Equal(t, 3, byCategory[models.Pothole].Count)
	assert.Equal(t, 75, byCategory[models.Pothole].Percent)
	assert.Equal(t, 1, byCategory[models.Graffiti].Count)
	assert.Equal(t, 25, byCategory[models.Graffiti].Percent)
	for _, c := range []models.IssueCategory{
		models.Streetlight, models.Park, models.Water, models.Trash, models.Road, models.Noise,
	} {
		assert.Equal(t, 0, byCategory[c].Count)
		assert.Equal(t, 0, byCategory[c].Percent)
	}
}

func TestComputeCategoryHistogramEmpty(t *testing.T) {
	hist := ComputeCategoryHistogram(nil)
	require.Len(t, hist, 8)
	for _, bucket := range hist {
		assert.Equal(t, 0, bucket.Count)
		assert.Equal(t, 0, bucket.Percent)
	}
}

func TestComputeDepartmentPerformance(t *testing.T) {
	departments := []models.Department{
		{ID: "dept_1", Name: "Sanitation"},
		{ID: "dept_2", Name: "Public Works"},
	}
	issues := []models.Issue{
		{AssignedTo: ptr("dept_1"), Status: models.Resolved},
		{AssignedTo: ptr("dept_1"), Status: models.Resolved},
		{AssignedTo: ptr("dept_1"), Status: models.InProgress},
		{Status: models.Submitted},
	}

	perf := ComputeDepartmentPerformance(issues, departments)
	require.Len(t, perf, 2)

	assert.Equal(t, "dept_1", perf[0].DepartmentID)
	assert.Equal(t, 3, perf[0].Total)
	assert.Equal(t, 2, perf[0].Resolved)
	assert.Equal(t, 67, perf[0].ResolutionRate)

	assert.Equal(t, "dept_2", perf[1].DepartmentID)
	assert.Equal(t, 0, perf[1].Total)
	assert.Equal(t, 0, perf[1].ResolutionRate)
}

func TestComputeUserContribution(t *testing.T) {
	issues := []models.Issue{
		{ReportedBy: "user_1", Status: models.Resolved},
		{ReportedBy: "user_1", Status: models.Submitted},
		{ReportedBy: "user_1", Status: models.Closed},
		{ReportedBy: "user_2", Status: models.Submitted},
	}

	c := ComputeUserContribution(issues, "user_1")
	assert.Equal(t, 3, c.TotalReports)
	assert.Equal(t, 1, c.Resolved)
	assert.Equal(t, 1, c.Active, "closed issues are not active")
	assert.Equal(t, 3*50+1*100, c.ImpactScore)
}

func TestComputeDailyTrend(t *testing.T) {
	now := time.Date(2025, 6, 3, 15, 30, 0, 0, time.UTC)

	trend := ComputeDailyTrend([]models.Issue{
		{ReportedAt: now.Add(-time.Hour)},
		{ReportedAt: now.AddDate(0, 0, -1)},
		{ReportedAt: now.AddDate(0, 0, -2)},
		{ReportedAt: now.AddDate(0, 0, -2).Add(2 * time.Hour)},
		{ReportedAt: now.AddDate(0, 0, -10)}, // outside the window
	}, 3, now)

	require.Len(t, trend, 3)
	assert.Equal(t, "2025-06-01", trend[0].Date)
	assert.Equal(t, 2, trend[0].Count)
	assert.Equal(t, "2025-06-02", trend[1].Date)
	assert.Equal(t, 1, trend[1].Count)
	assert.Equal(t, "2025-06-03", trend[2].Date)
	assert.Equal(t, 1, trend[2].Count)
}

func TestAvgResolutionHours(t *testing.T) {
	reported := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	issues := []models.Issue{
		{ReportedAt: reported, ResolvedAt: ptr(reported.Add(4 * time.Hour))},
		{ReportedAt: reported, ResolvedAt: ptr(reported.Add(8 * time.Hour))},
		{ReportedAt: reported}, // unresolved, excluded
	}

	assert.InDelta(t, 6.0, AvgResolutionHours(issues), 1e-9)
	assert.Equal(t, 0.0, AvgResolutionHours(nil))
}

func TestComputeOverview(t *testing.T) {
	reported := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	issues := []models.Issue{
		{Status: models.Submitted, ReportedAt: reported},
		{Status: models.Acknowledged, ReportedAt: reported},
		{Status: models.InProgress, ReportedAt: reported},
		{Status: models.Resolved, ReportedAt: reported, ResolvedAt: ptr(reported.Add(2 * time.Hour))},
	}

	o := ComputeOverview(issues)
	assert.Equal(t, 4, o.TotalIssues)
	assert.Equal(t, 3, o.OpenIssues)
	assert.Equal(t, 1, o.ResolvedIssues)
	assert.Equal(t, 25, o.ResolutionRate)
	assert.InDelta(t, 2.0, o.AvgResolutionHours, 1e-9)
}
