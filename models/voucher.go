package models

import "time"

// Voucher is a redeemable catalog entry. The catalog is compiled in and
// immutable for the process lifetime.
type Voucher struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// Redemption records a voucher exchange. History is session-local and
// never durable.
type Redemption struct {
	Voucher    Voucher   `json:"voucher"`
	RedeemedAt time.Time `json:"redeemedAt"`
}

// Vouchers is the fixed reward catalog, in declaration order.
var Vouchers = []Voucher{
	{ID: "1", Name: "Hospital Discount", Description: "20% off on your next hospital visit", Points: 100},
	{ID: "2", Name: "Shopping Gift Card", Description: "$50 shopping gift card", Points: 150},
	{ID: "3", Name: "Utility Bill Discount", Description: "15% off on your next utility bill", Points: 75},
}
