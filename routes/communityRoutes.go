package routes

import (
	"github.com/gin-gonic/gin"

	"neighborwatch-be/controllers"
)

// CommunityRoutes sets up the leaderboard and profile routes
func CommunityRoutes(r *gin.Engine, ctrl *controllers.CommunityController, auth gin.HandlerFunc) {
	group := r.Group("/api")
	{
		group.GET("/leaderboard", ctrl.GetLeaderboard)
		group.GET("/profile", auth, ctrl.GetProfile)
	}
}
