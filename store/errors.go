package store

import "errors"

// ErrEmailTaken is returned when registering an email that already has
// an account.
var ErrEmailTaken = errors.New("email already registered")
