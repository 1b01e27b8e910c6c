package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"neighborwatch-be/session"
)

// Account is a registered actor. Accounts live in memory only and are
// re-seeded on every process start.
type Account struct {
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Password  string       `json:"-"`
	Role      session.Role `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (a *Account) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

func (a *Account) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate))
	return err == nil
}
