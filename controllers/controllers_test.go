package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"neighborwatch-be/config"
	"neighborwatch-be/controllers"
	"neighborwatch-be/middlewares"
	"neighborwatch-be/models"
	"neighborwatch-be/rewards"
	"neighborwatch-be/routes"
	"neighborwatch-be/session"
	"neighborwatch-be/store"
	"neighborwatch-be/utils"
)

const testSecret = "test-secret"

var registerValidation sync.Once

type testEnv struct {
	router   *gin.Engine
	issues   *store.IssueStore
	accounts *store.AccountRegistry
	ledger   *rewards.Ledger
}

// setupEnv wires the full router the way main does, with a pass-through
// rate limiter instead of Redis.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registerValidation.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("issuecategory", func(fl validator.FieldLevel) bool {
				return models.IssueCategory(fl.Field().String()).Valid()
			})
		}
	})

	cfg := &config.Config{
		Port:        "8080",
		Environment: "development",
		JWTSecret:   testSecret,
	}

	issues := store.NewIssueStore()
	accounts, err := store.NewAccountRegistry()
	require.NoError(t, err)
	ledger := rewards.NewLedger(issues)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	authority := middlewares.RequireRole(session.RoleAuthority)
	limiter := gin.HandlerFunc(func(c *gin.Context) { c.Next() })

	r := gin.New()
	routes.AuthRoutes(r, controllers.NewAuthController(accounts, ledger, cfg), auth)
	routes.IssueRoutes(r, controllers.NewIssueController(issues, accounts), auth, authority, limiter)
	routes.RewardRoutes(r, controllers.NewRewardController(ledger), auth)
	routes.CommunityRoutes(r, controllers.NewCommunityController(issues, accounts, ledger), auth)

	return &testEnv{router: r, issues: issues, accounts: accounts, ledger: ledger}
}

func (e *testEnv) token(t *testing.T, name, email string, role session.Role) string {
	t.Helper()
	token, err := utils.GenerateToken(testSecret, utils.TokenClaims{Name: name, Email: email, Role: role})
	require.NoError(t, err)
	return token
}

func (e *testEnv) residentToken(t *testing.T) string {
	return e.token(t, "John Doe", "john.doe@example.com", session.RoleResident)
}

func (e *testEnv) authorityToken(t *testing.T) string {
	return e.token(t, "City Services", "authority@example.com", session.RoleAuthority)
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
