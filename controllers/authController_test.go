package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSetsCookie(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "john.doe@example.com",
		"password": "resident123",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decode(t, w, &body)
	assert.Equal(t, "John Doe", body.Name)
	assert.Equal(t, "resident", body.Role)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "john.doe@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "resident123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorityLogin(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "authority@example.com",
		"password": "authority123",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"authority"`)
}

func TestRegisterAndLogin(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     "New Resident",
		"email":    "new@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"resident"`)

	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "new@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     "Imposter",
		"email":    "john.doe@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodGet, "/api/auth/me", nil, env.residentToken(t))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "john.doe@example.com")

	w = env.request(t, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookieAndHistory(t *testing.T) {
	env := setupEnv(t)
	token := env.residentToken(t)

	// John's 225 seeded points cover the 100-point voucher.
	w := env.request(t, http.MethodPost, "/api/rewards/redeem", map[string]interface{}{
		"voucherId": "1",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, env.ledger.History("john.doe@example.com"))

	w = env.request(t, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, env.ledger.History("john.doe@example.com"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
