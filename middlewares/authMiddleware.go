package middlewares

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"neighborwatch-be/session"
	"neighborwatch-be/utils"
)

// Context keys set by AuthMiddleware.
const (
	ActorNameKey  = "actor_name"
	ActorEmailKey = "actor_email"
	SessionKey    = "session"
)

// AuthMiddleware validates the auth token from the Authorization header
// or the auth_token cookie and attaches the actor's identity and a
// logged-in session context to the request.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.Request.Header.Get("Authorization")
		if authHeader != "" {
			tokenString = authHeader
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = authHeader[7:]
			}
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(jwtSecret, tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		sess := session.NewContext()
		sess.Login(claims.Role)

		c.Set(ActorNameKey, claims.Name)
		c.Set(ActorEmailKey, claims.Email)
		c.Set(SessionKey, sess)

		c.Next()
	}
}

// ActorEmail reads the authenticated actor's email from the context.
func ActorEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ActorEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

// Session reads the request's session context. Missing or foreign values
// yield a fresh logged-out context.
func Session(c *gin.Context) *session.Context {
	v, exists := c.Get(SessionKey)
	if !exists {
		return session.NewContext()
	}
	sess, ok := v.(*session.Context)
	if !ok {
		return session.NewContext()
	}
	return sess
}
