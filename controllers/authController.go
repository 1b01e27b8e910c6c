package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"neighborwatch-be/config"
	"neighborwatch-be/middlewares"
	"neighborwatch-be/rewards"
	"neighborwatch-be/session"
	"neighborwatch-be/store"
	"neighborwatch-be/utils"
)

type AuthController struct {
	accounts *store.AccountRegistry
	ledger   *rewards.Ledger
	cfg      *config.Config
}

func NewAuthController(accounts *store.AccountRegistry, ledger *rewards.Ledger, cfg *config.Config) *AuthController {
	return &AuthController{accounts: accounts, ledger: ledger, cfg: cfg}
}

// Register creates a resident account. Accounts are in-memory only and
// reset on restart.
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := ac.accounts.Create(input.Name, input.Email, input.Password, session.RoleResident)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}
		log.Println("Error creating account:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"name":      account.Name,
		"email":     account.Email,
		"role":      account.Role,
		"createdAt": account.CreatedAt,
	})
}

// Login compares credentials against the registry and, on success, sets
// the auth_token cookie carrying the actor's role.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, found := ac.accounts.FindByEmail(input.Email)
	if !found || !account.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(ac.cfg.JWTSecret, utils.TokenClaims{
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	})
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	domain := ac.cfg.Domain
	// For production, don't set domain to allow cross-origin cookies
	if ac.cfg.Production() {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600,
		Path:     "/",
		Domain:   domain,
		Secure:   ac.cfg.Production(),
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"name":      account.Name,
		"email":     account.Email,
		"role":      account.Role,
		"createdAt": account.CreatedAt,
	})
}

// Logout clears the auth_token cookie and discards the actor's
// session-local redemption history.
func (ac *AuthController) Logout(c *gin.Context) {
	if email, ok := middlewares.ActorEmail(c); ok {
		ac.ledger.ClearHistory(email)
	}
	middlewares.Session(c).Logout()

	c.SetCookie("auth_token", "", -1, "/", ac.cfg.Domain, ac.cfg.Production(), true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated actor's profile.
func (ac *AuthController) Me(c *gin.Context) {
	email, ok := middlewares.ActorEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	account, found := ac.accounts.FindByEmail(email)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":      account.Name,
		"email":     account.Email,
		"role":      account.Role,
		"createdAt": account.CreatedAt,
	})
}
