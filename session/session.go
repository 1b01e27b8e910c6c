package session

import "sync"

// Role is the active actor class gating transition permissions.
type Role string

const (
	RoleNone      Role = "none"
	RoleResident  Role = "resident"
	RoleAuthority Role = "authority"
)

// ParseRole maps a claim string to a Role. Anything unknown is RoleNone.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleResident, RoleAuthority:
		return Role(s)
	}
	return RoleNone
}

// Context is a single-slot role holder. Credential comparison happens in
// the caller before Login is invoked; Login itself sets the slot
// unconditionally. The slot starts at RoleNone and is never persisted.
type Context struct {
	mu   sync.Mutex
	role Role
}

func NewContext() *Context {
	return &Context{role: RoleNone}
}

func (c *Context) Login(role Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.role = role
}

func (c *Context) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.role = RoleNone
}

func (c *Context) CurrentRole() Role {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.role
}
