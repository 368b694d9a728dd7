package controllers

import (
	"net/http"

	"civicreport-be/models"

	"github.com/gin-gonic/gin"
)

// ListDepartments returns the department roster.
func ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, departments.List())
}

// GetDepartment returns a single department by ID.
func GetDepartment(c *gin.Context) {
	dept, err := departments.Get(c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dept)
}

// GetDepartmentStats returns the department's derived workload
// counters, recomputed from the issue collection on every call.
func GetDepartmentStats(c *gin.Context) {
	dept, err := departments.Get(c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	perf := issueSession.DepartmentPerformance([]models.Department{dept})[0]
	c.JSON(http.StatusOK, gin.H{
		"id":             dept.ID,
		"name":           dept.Name,
		"issueCount":     perf.Total,
		"resolvedCount":  perf.Resolved,
		"resolutionRate": perf.ResolutionRate,
		"pendingCount":   perf.Total - perf.Resolved,
	})
}
