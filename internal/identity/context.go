// Package identity carries the authenticated caller through request context.
// Tokens are issued by the external auth service; this package only consumes them.
package identity

import "context"

// Role distinguishes the two kinds of platform users.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Valid reports whether the role is one the platform knows.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// User is the authenticated caller as asserted by the auth service token.
type User struct {
	ID   string
	Name string
	Role Role
}

type ctxKey string

const userKey ctxKey = "hopcare.user"

// WithUser stores the caller in context.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the caller if present.
func UserFromContext(ctx context.Context) (User, bool) {
	val := ctx.Value(userKey)
	if val == nil {
		return User{}, false
	}
	user, ok := val.(User)
	return user, ok && user.ID != ""
}
