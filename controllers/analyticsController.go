package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetOverview returns the city-wide dashboard metrics.
func GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, issueSession.Overview())
}

// GetStatusCounts returns issue counts keyed by status.
func GetStatusCounts(c *gin.Context) {
	c.JSON(http.StatusOK, issueSession.StatusCounts())
}

// GetCategoryStats returns the per-category histogram across the full
// category enumeration, zero buckets included.
func GetCategoryStats(c *gin.Context) {
	c.JSON(http.StatusOK, issueSession.CategoryStats())
}

// GetDepartmentPerformance returns per-department workload metrics.
func GetDepartmentPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, issueSession.DepartmentPerformance(departments.List()))
}

// GetTrend returns daily submission counts for the trailing window
// (7 days unless ?days= says otherwise, capped at 90).
func GetTrend(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		days = 7
	}
	if days > 90 {
		days = 90
	}
	c.JSON(http.StatusOK, issueSession.Trend(days))
}

// GetMyContributions returns the authenticated user's reporting stats.
func GetMyContributions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, issueSession.Contribution(userID))
}
