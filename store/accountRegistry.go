package store

import (
	"sync"
	"time"

	"neighborwatch-be/models"
	"neighborwatch-be/session"
)

// AccountRegistry holds registered accounts in memory. It is seeded with
// the fixed demo credentials (one resident, one authority) plus the demo
// residents the seed issues are attributed to.
type AccountRegistry struct {
	mu       sync.Mutex
	accounts []models.Account
}

type seedAccount struct {
	name     string
	email    string
	password string
	role     session.Role
}

var seedAccounts = []seedAccount{
	{"John Doe", "john.doe@example.com", "resident123", session.RoleResident},
	{"Jane Smith", "jane.smith@example.com", "resident123", session.RoleResident},
	{"Mike Johnson", "mike.johnson@example.com", "resident123", session.RoleResident},
	{"City Services", "authority@example.com", "authority123", session.RoleAuthority},
}

func NewAccountRegistry() (*AccountRegistry, error) {
	r := &AccountRegistry{}
	for _, s := range seedAccounts {
		if _, err := r.Create(s.name, s.email, s.password, s.role); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// FindByEmail returns the account with the given email.
func (r *AccountRegistry) FindByEmail(email string) (models.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return a, true
		}
	}
	return models.Account{}, false
}

// Create registers a new account with a bcrypt-hashed password. Returns
// ErrEmailTaken when the email is already registered.
func (r *AccountRegistry) Create(name, email, password string, role session.Role) (models.Account, error) {
	account := models.Account{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := account.HashPassword(); err != nil {
		return models.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return models.Account{}, ErrEmailTaken
		}
	}
	r.accounts = append(r.accounts, account)
	return account, nil
}

// Residents returns all resident accounts, registration order.
func (r *AccountRegistry) Residents() []models.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		if a.Role == session.RoleResident {
			out = append(out, a)
		}
	}
	return out
}
