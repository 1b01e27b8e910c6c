package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"neighborwatch-be/middlewares"
	"neighborwatch-be/models"
	"neighborwatch-be/rewards"
	"neighborwatch-be/store"
)

type CommunityController struct {
	store    *store.IssueStore
	accounts *store.AccountRegistry
	ledger   *rewards.Ledger
}

func NewCommunityController(issues *store.IssueStore, accounts *store.AccountRegistry, ledger *rewards.Ledger) *CommunityController {
	return &CommunityController{store: issues, accounts: accounts, ledger: ledger}
}

// GetLeaderboard ranks residents by points derived from their reported
// issues
func (cc *CommunityController) GetLeaderboard(c *gin.Context) {
	type entry struct {
		Rank           int    `json:"rank"`
		Name           string `json:"name"`
		Points         int    `json:"points"`
		IssuesReported int    `json:"issuesReported"`
	}

	counts := make(map[string]int)
	for _, issue := range cc.store.List() {
		counts[issue.ReportedBy]++
	}

	entries := make([]entry, 0)
	for _, account := range cc.accounts.Residents() {
		reported := counts[account.Email]
		if reported == 0 {
			continue
		}
		entries = append(entries, entry{
			Name:           account.Name,
			Points:         cc.ledger.TotalPoints(account.Email),
			IssuesReported: reported,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	c.JSON(http.StatusOK, gin.H{"leaders": entries})
}

// GetProfile returns the authenticated actor's activity stats
func (cc *CommunityController) GetProfile(c *gin.Context) {
	email, ok := middlewares.ActorEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	account, found := cc.accounts.FindByEmail(email)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	reported := 0
	resolved := 0
	for _, issue := range cc.store.List() {
		if issue.ReportedBy != email {
			continue
		}
		reported++
		if issue.Status == models.Resolved {
			resolved++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"name":           account.Name,
		"email":          account.Email,
		"role":           account.Role,
		"totalPoints":    cc.ledger.TotalPoints(email),
		"issuesReported": reported,
		"issuesResolved": resolved,
	})
}
