package controllers

import (
	"net/http"

	"civicreport-be/models"
	"civicreport-be/query"
	"civicreport-be/store"

	"github.com/gin-gonic/gin"
)

// CreateIssue handles the creation of a new issue
func CreateIssue(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title       string   `json:"title" binding:"required,max=200"`
		Description string   `json:"description" binding:"required,max=1000"`
		Category    string   `json:"category" binding:"required,issuecategory"`
		Priority    string   `json:"priority,omitempty"`
		Address     string   `json:"address" binding:"required,max=200"`
		Latitude    *float64 `json:"latitude,omitempty"`
		Longitude   *float64 `json:"longitude,omitempty"`
		Images      []string `json:"images,omitempty" binding:"omitempty,max=5"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := issueSession.CreateIssue(store.CreatePayload{
		Title:       input.Title,
		Description: input.Description,
		Category:    models.IssueCategory(input.Category),
		Priority:    models.IssuePriority(input.Priority),
		Location: models.Location{
			Lat:     input.Latitude,
			Lng:     input.Longitude,
			Address: input.Address,
		},
		ReportedBy: userID,
		Images:     input.Images,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// ListIssues retrieves issues filtered by the query parameters.
// "all" and absent parameters impose no constraint; mine=true narrows
// to the authenticated user's reports.
func ListIssues(c *gin.Context) {
	criteria := query.Criteria{
		ReportedBy: c.Query("reportedBy"),
		AssignedTo: c.Query("assignedTo"),
		Search:     c.Query("search"),
	}
	if v := c.Query("status"); v != "" && v != "all" {
		status := models.IssueStatus(v)
		criteria.Status = &status
	}
	if v := c.Query("category"); v != "" && v != "all" {
		category := models.IssueCategory(v)
		criteria.Category = &category
	}
	if v := c.Query("priority"); v != "" && v != "all" {
		priority := models.IssuePriority(v)
		criteria.Priority = &priority
	}
	if c.Query("mine") == "true" {
		if userID, ok := currentUserID(c); ok {
			criteria.ReportedBy = userID
		}
	}

	issues, err := issueSession.FetchIssues(criteria)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
		"stats":       issueSession.Stats(),
	})
}

// GetIssue retrieves an issue by its ID and selects it in the session.
func GetIssue(c *gin.Context) {
	issue, err := issueSession.FetchIssueByID(c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// UpdateIssueStatus moves an issue to a new lifecycle status, with an
// optional progress message recorded on the timeline.
func UpdateIssueStatus(c *gin.Context) {
	var input struct {
		Status  string `json:"status" binding:"required"`
		Message string `json:"message,omitempty" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := issueSession.UpdateStatus(c.Param("id"), models.IssueStatus(input.Status), input.Message)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// AssignIssue routes an issue to a department.
func AssignIssue(c *gin.Context) {
	var input struct {
		DepartmentID string `json:"departmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := issueSession.AssignIssue(c.Param("id"), input.DepartmentID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// AddIssueUpdate appends a progress note to an issue's timeline,
// authored by the authenticated user.
func AddIssueUpdate(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author := currentUserName(c)
	if author == "" {
		author, _ = currentUserID(c)
	}

	update, err := issueSession.AddUpdate(c.Param("id"), input.Message, author)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

// DeleteIssue removes an issue and its timeline entirely.
func DeleteIssue(c *gin.Context) {
	if err := issueSession.DeleteIssue(c.Param("id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}
