package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"neighborwatch-be/middlewares"
	"neighborwatch-be/rewards"
)

type RewardController struct {
	ledger *rewards.Ledger
}

func NewRewardController(ledger *rewards.Ledger) *RewardController {
	return &RewardController{ledger: ledger}
}

// GetVouchers returns the reward catalog with the actor's point total
func (rc *RewardController) GetVouchers(c *gin.Context) {
	email, ok := middlewares.ActorEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vouchers":    rc.ledger.Catalog(),
		"totalPoints": rc.ledger.TotalPoints(email),
	})
}

// Redeem exchanges a voucher for the actor's points
func (rc *RewardController) Redeem(c *gin.Context) {
	email, ok := middlewares.ActorEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		VoucherID string `json:"voucherId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	redemption, err := rc.ledger.Redeem(email, input.VoucherID)
	switch {
	case errors.Is(err, rewards.ErrVoucherNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		return
	case errors.Is(err, rewards.ErrInsufficientPoints):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient points"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Voucher redeemed successfully",
		"redemption":  redemption,
		"totalPoints": rc.ledger.TotalPoints(email),
	})
}

// GetHistory returns the actor's session redemption history
func (rc *RewardController) GetHistory(c *gin.Context) {
	email, ok := middlewares.ActorEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": rc.ledger.History(email),
	})
}
