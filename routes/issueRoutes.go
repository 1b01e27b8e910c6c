package routes

import (
	"github.com/gin-gonic/gin"

	"neighborwatch-be/controllers"
)

// IssueRoutes sets up the issue routes. The feed, templates and map are
// public reads; submission requires auth plus the daily rate limit, and
// lifecycle transitions and analytics are authority-only.
func IssueRoutes(r *gin.Engine, ctrl *controllers.IssueController, auth, authority, limiter gin.HandlerFunc) {
	group := r.Group("/api/issues")
	{
		group.GET("", ctrl.GetAllIssues)
		group.GET("/templates", ctrl.GetTemplates)
		group.GET("/map", ctrl.RecentMapIssues)
		group.GET("/analytics", auth, authority, ctrl.GetIssueAnalytics)
		group.GET("/:id", ctrl.GetIssue)
		group.POST("", auth, limiter, ctrl.CreateIssue)
		group.PATCH("/:id/status", auth, authority, ctrl.UpdateIssueStatus)
	}
}
