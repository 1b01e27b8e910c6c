package routes

import (
	"github.com/gin-gonic/gin"

	"neighborwatch-be/controllers"
)

// RewardRoutes sets up the rewards routes, all authenticated
func RewardRoutes(r *gin.Engine, ctrl *controllers.RewardController, auth gin.HandlerFunc) {
	group := r.Group("/api/rewards", auth)
	{
		group.GET("/vouchers", ctrl.GetVouchers)
		group.POST("/redeem", ctrl.Redeem)
		group.GET("/history", ctrl.GetHistory)
	}
}
