package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neighborwatch-be/session"
)

func TestVouchersListing(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodGet, "/api/rewards/vouchers", nil, env.residentToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Vouchers []struct {
			Name   string `json:"name"`
			Points int    `json:"points"`
		} `json:"vouchers"`
		TotalPoints int `json:"totalPoints"`
	}
	decode(t, w, &body)

	require.Len(t, body.Vouchers, 3)
	assert.Equal(t, "Hospital Discount", body.Vouchers[0].Name)
	// John Doe's seeded issues: 50 + 75 + 100.
	assert.Equal(t, 225, body.TotalPoints)
}

func TestRedeemFlow(t *testing.T) {
	env := setupEnv(t)
	// Mike Johnson's single seeded issue is worth 55 points.
	token := env.token(t, "Mike Johnson", "mike.johnson@example.com", session.RoleResident)

	// 75-point voucher is out of reach at 55 points.
	w := env.request(t, http.MethodPost, "/api/rewards/redeem", map[string]interface{}{
		"voucherId": "3",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient points")

	// John Doe at 225 points can afford it; total is not reduced.
	john := env.residentToken(t)
	w = env.request(t, http.MethodPost, "/api/rewards/redeem", map[string]interface{}{
		"voucherId": "3",
	}, john)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalPoints int `json:"totalPoints"`
		Redemption  struct {
			Voucher struct {
				Name string `json:"name"`
			} `json:"voucher"`
		} `json:"redemption"`
	}
	decode(t, w, &body)
	assert.Equal(t, 225, body.TotalPoints)
	assert.Equal(t, "Utility Bill Discount", body.Redemption.Voucher.Name)
}

func TestRedeemUnknownVoucherOverHTTP(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/rewards/redeem", map[string]interface{}{
		"voucherId": "99",
	}, env.residentToken(t))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRedemptionHistory(t *testing.T) {
	env := setupEnv(t)
	token := env.residentToken(t)

	w := env.request(t, http.MethodGet, "/api/rewards/history", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"history":[]`)

	w = env.request(t, http.MethodPost, "/api/rewards/redeem", map[string]interface{}{
		"voucherId": "1",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/rewards/history", nil, token)
	var body struct {
		History []struct {
			RedeemedAt string `json:"redeemedAt"`
			Voucher    struct {
				ID string `json:"id"`
			} `json:"voucher"`
		} `json:"history"`
	}
	decode(t, w, &body)
	require.Len(t, body.History, 1)
	assert.Equal(t, "1", body.History[0].Voucher.ID)
	assert.NotEmpty(t, body.History[0].RedeemedAt)
}

func TestRewardsRequireAuth(t *testing.T) {
	env := setupEnv(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/rewards/vouchers"},
		{http.MethodPost, "/api/rewards/redeem"},
		{http.MethodGet, "/api/rewards/history"},
	} {
		w := env.request(t, route.method, route.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}
