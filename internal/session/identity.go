// Package session carries the signed-in identity through a request.
package session

import (
	"context"

	"hr-portal/internal/models"
)

// Identity is who is making a request. The zero value is a guest.
type Identity struct {
	User *models.User
}

func Guest() Identity {
	return Identity{}
}

func For(u *models.User) Identity {
	return Identity{User: u}
}

func (i Identity) IsGuest() bool {
	return i.User == nil
}

func (i Identity) Role() models.UserRole {
	if i.User == nil {
		return models.RoleGuest
	}
	return i.User.Role
}

func (i Identity) UserID() uint {
	if i.User == nil {
		return 0
	}
	return i.User.ID
}

// ActorID is the audit actor reference, nil for guests.
func (i Identity) ActorID() *uint {
	if i.User == nil {
		return nil
	}
	id := i.User.ID
	return &id
}

// IsStaff reports whether the identity is HR or ADMIN.
func (i Identity) IsStaff() bool {
	r := i.Role()
	return r == models.RoleHR || r == models.RoleAdmin
}

type ctxKey struct{}

func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored in ctx, or a guest.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(ctxKey{}).(Identity)
	return id
}
