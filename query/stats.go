package query

import (
	"math"
	"time"

	"civicreport-be/models"

	"github.com/montanaflynn/stats"
)

// Stats summarizes an issue collection by status. ResolutionRate is
// the percentage of resolved-or-closed issues, 0 for an empty
// collection.
type Stats struct {
	Total          int                        `json:"total"`
	ByStatus       map[models.IssueStatus]int `json:"byStatus"`
	Resolved       int                        `json:"resolved"`
	ResolutionRate int                        `json:"resolutionRate"`
}

func ComputeStats(issues []models.Issue) Stats {
	byStatus := make(map[models.IssueStatus]int, len(models.Statuses()))
	for _, s := range models.Statuses() {
		byStatus[s] = 0
	}
	for _, issue := range issues {
		byStatus[issue.Status]++
	}
	out := Stats{
		Total:    len(issues),
		ByStatus: byStatus,
		Resolved: byStatus[models.Resolved],
	}
	if out.Total > 0 {
		out.ResolutionRate = roundPct(out.Resolved+byStatus[models.Closed], out.Total)
	}
	return out
}

func roundPct(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

// CategoryCount is one bucket of the category histogram.
type CategoryCount struct {
	Category models.IssueCategory `json:"category"`
	Count    int                  `json:"count"`
	Percent  int                  `json:"percent"`
}

// ComputeCategoryHistogram counts issues per category across the full
// enumeration, zero buckets included.
func ComputeCategoryHistogram(issues []models.Issue) []CategoryCount {
	counts := make(map[models.IssueCategory]int)
	for _, issue := range issues {
		counts[issue.Category]++
	}
	total := len(issues)
	out := make([]CategoryCount, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		bucket := CategoryCount{Category: c, Count: counts[c]}
		if total > 0 {
			bucket.Percent = roundPct(bucket.Count, total)
		}
		out = append(out, bucket)
	}
	return out
}

// DepartmentPerformance summarizes one department's workload.
type DepartmentPerformance struct {
	DepartmentID   string `json:"departmentId"`
	Name           string `json:"name"`
	Total          int    `json:"total"`
	Resolved       int    `json:"resolved"`
	ResolutionRate int    `json:"resolutionRate"`
}

func ComputeDepartmentPerformance(issues []models.Issue, departments []models.Department) []DepartmentPerformance {
	out := make([]DepartmentPerformance, 0, len(departments))
	for _, dept := range departments {
		perf := DepartmentPerformance{DepartmentID: dept.ID, Name: dept.Name}
		for _, issue := range issues {
			if issue.AssignedTo == nil || *issue.AssignedTo != dept.ID {
				continue
			}
			perf.Total++
			if issue.Status == models.Resolved {
				perf.Resolved++
			}
		}
		if perf.Total > 0 {
			perf.ResolutionRate = roundPct(perf.Resolved, perf.Total)
		}
		out = append(out, perf)
	}
	return out
}

// UserContribution summarizes one citizen's reporting activity.
type UserContribution struct {
	TotalReports int `json:"totalReports"`
	Resolved     int `json:"resolved"`
	Active       int `json:"active"`
	ImpactScore  int `json:"impactScore"`
}

func ComputeUserContribution(issues []models.Issue, userID string) UserContribution {
	var out UserContribution
	for _, issue := range issues {
		if issue.ReportedBy != userID {
			continue
		}
		out.TotalReports++
		switch issue.Status {
		case models.Resolved:
			out.Resolved++
		case models.Closed:
		default:
			out.Active++
		}
	}
	out.ImpactScore = out.TotalReports*50 + out.Resolved*100
	return out
}

// TrendPoint is one day's submission count.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ComputeDailyTrend buckets submissions per calendar day for the
// `days` days ending at now, oldest first. now is an input so the
// function stays deterministic.
func ComputeDailyTrend(issues []models.Issue, days int, now time.Time) []TrendPoint {
	out := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		next := day.AddDate(0, 0, 1)

		count := 0
		for _, issue := range issues {
			if !issue.ReportedAt.Before(day) && issue.ReportedAt.Before(next) {
				count++
			}
		}
		out = append(out, TrendPoint{Date: day.Format("2006-01-02"), Count: count})
	}
	return out
}

// AvgResolutionHours returns the mean hours between report and first
// resolution across issues that have been resolved, 0 when none have.
func AvgResolutionHours(issues []models.Issue) float64 {
	var durations []float64
	for _, issue := range issues {
		if issue.ResolvedAt != nil {
			durations = append(durations, issue.ResolvedAt.Sub(issue.ReportedAt).Hours())
		}
	}
	if len(durations) == 0 {
		return 0
	}
	mean, err := stats.Mean(durations)
	if err != nil {
		return 0
	}
	return mean
}

// Overview aggregates the city-wide dashboard metrics.
type Overview struct {
	TotalIssues        int                        `json:"totalIssues"`
	OpenIssues         int                        `json:"openIssues"`
	ResolvedIssues     int                        `json:"resolvedIssues"`
	ResolutionRate     int                        `json:"resolutionRate"`
	AvgResolutionHours float64                    `json:"avgResolutionHours"`
	ByStatus           map[models.IssueStatus]int `json:"byStatus"`
}

func ComputeOverview(issues []models.Issue) Overview {
	s := ComputeStats(issues)
	return Overview{
		TotalIssues:        s.Total,
		OpenIssues:         s.ByStatus[models.Submitted] + s.ByStatus[models.Acknowledged] + s.ByStatus[models.InProgress],
		ResolvedIssues:     s.Resolved,
		ResolutionRate:     s.ResolutionRate,
		AvgResolutionHours: AvgResolutionHours(issues),
		ByStatus:           s.ByStatus,
	}
}
