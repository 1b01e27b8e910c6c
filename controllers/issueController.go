package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"neighborwatch-be/middlewares"
	"neighborwatch-be/models"
	"neighborwatch-be/store"
	"neighborwatch-be/utils"
)

type IssueController struct {
	store    *store.IssueStore
	accounts *store.AccountRegistry
}

func NewIssueController(issues *store.IssueStore, accounts *store.AccountRegistry) *IssueController {
	return &IssueController{store: issues, accounts: accounts}
}

// issueView joins reporter info onto an issue for responses.
type issueView struct {
	models.Issue
	ReportedBy map[string]interface{} `json:"reportedBy"`
}

func (ic *IssueController) view(issue models.Issue) issueView {
	reportedBy := map[string]interface{}{
		"email": issue.ReportedBy,
	}
	if account, found := ic.accounts.FindByEmail(issue.ReportedBy); found {
		reportedBy["name"] = account.Name
	}
	return issueView{Issue: issue, ReportedBy: reportedBy}
}

// CreateIssue handles the submission of a new report
func (ic *IssueController) CreateIssue(c *gin.Context) {
	email, ok := middlewares.ActorEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title       string  `json:"title" binding:"required,max=200"`
		Description string  `json:"description" binding:"required,max=1000"`
		Category    string  `json:"category" binding:"required,issuecategory"`
		Location    string  `json:"location" binding:"max=200"`
		Media       *string `json:"media,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := input.Location
	if location == "" {
		location = "Unknown Location"
	}

	issue := ic.store.Create(store.IssueDraft{
		Title:       input.Title,
		Description: input.Description,
		Category:    models.IssueCategory(input.Category),
		Location:    location,
		Media:       input.Media,
		ReportedBy:  email,
	})

	c.JSON(http.StatusCreated, ic.view(issue))
}

// GetAllIssues returns the feed with filtering, search, sorting and
// pagination
func (ic *IssueController) GetAllIssues(c *gin.Context) {
	query := store.IssueQuery{
		Search: c.Query("search"),
		Sort:   c.DefaultQuery("sort", "newest"),
	}

	if category := c.Query("category"); category != "" && category != "all" {
		query.Category = models.IssueCategory(category)
	}
	if status := c.Query("status"); status != "" && status != "all" {
		query.Status = models.IssueStatus(status)
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	issues, total := ic.store.Query(query)

	views := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, ic.view(issue))
	}

	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 10
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"issues":      views,
		"totalIssues": total,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// GetIssue retrieves a single issue by id
func (ic *IssueController) GetIssue(c *gin.Context) {
	issue, found := ic.store.Get(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	c.JSON(http.StatusOK, ic.view(issue))
}

// UpdateIssueStatus sets an issue's status. Any status may be set from
// any other; a miss on the id is deliberately silent.
func (ic *IssueController) UpdateIssueStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.IssueStatus(input.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	id := c.Param("id")
	if !ic.store.UpdateStatus(id, status) {
		log.Printf("Status update for unknown issue %s ignored", id)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue status updated"})
}

// GetTemplates returns the category catalog with pre-fill descriptions
func (ic *IssueController) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, models.CategoryTemplates)
}

// RecentMapIssues returns the most recent issues whose location parses
// as coordinates
func (ic *IssueController) RecentMapIssues(c *gin.Context) {
	limit := 19

	type mapIssue struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Location  string    `json:"location"`
		Category  string    `json:"category,omitempty"`
		CreatedAt time.Time `json:"createdAt,omitempty"`
	}

	response := make([]mapIssue, 0, limit)
	for _, issue := range ic.store.List() {
		coords, ok := utils.ParseCoordinates(issue.Location)
		if !ok {
			continue
		}
		response = append(response, mapIssue{
			ID:        issue.ID,
			Title:     issue.Title,
			Latitude:  coords.Latitude,
			Longitude: coords.Longitude,
			Location:  issue.Location,
			Category:  string(issue.Category),
			CreatedAt: issue.CreatedAt,
		})
		if len(response) == limit {
			break
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetIssueAnalytics returns aggregate counts for the authority dashboard
func (ic *IssueController) GetIssueAnalytics(c *gin.Context) {
	issues := ic.store.List()

	byCategory := make(map[models.IssueCategory]int)
	openIssues := 0
	resolvedIssues := 0
	for _, issue := range issues {
		byCategory[issue.Category]++
		switch issue.Status {
		case models.Pending, models.InProgress:
			openIssues++
		case models.Resolved:
			resolvedIssues++
		}
	}

	// Catalog order keeps the chart stable across refreshes.
	issuesByCategory := make([]gin.H, 0, len(byCategory))
	for _, t := range models.CategoryTemplates {
		if count, present := byCategory[t.Category]; present {
			issuesByCategory = append(issuesByCategory, gin.H{
				"name":  t.Category,
				"value": count,
			})
		}
	}

	var last7Days []gin.H
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		nextDate := date.AddDate(0, 0, 1)

		count := 0
		for _, issue := range issues {
			if !issue.CreatedAt.Before(date) && issue.CreatedAt.Before(nextDate) {
				count++
			}
		}

		last7Days = append(last7Days, gin.H{
			"date":  date.Format("2006-01-02"),
			"count": count,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"issuesByCategory": issuesByCategory,
		"last7Days":        last7Days,
		"totalIssues":      len(issues),
		"openIssues":       openIssues,
		"resolvedIssues":   resolvedIssues,
	})
}
