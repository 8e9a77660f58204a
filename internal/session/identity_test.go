package session

import (
	"context"
	"testing"

	"hr-portal/internal/models"
)

func TestGuestIdentity(t *testing.T) {
	t.Parallel()

	g := Guest()
	if !g.IsGuest() || g.Role() != models.RoleGuest || g.UserID() != 0 || g.ActorID() != nil || g.IsStaff() {
		t.Fatalf("unexpected guest identity %+v", g)
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	t.Parallel()

	u := &models.User{ID: 5, Role: models.RoleHR}
	ctx := NewContext(context.Background(), For(u))

	got := FromContext(ctx)
	if got.UserID() != 5 || got.Role() != models.RoleHR || !got.IsStaff() {
		t.Fatalf("unexpected identity %+v", got)
	}
	if *got.ActorID() != 5 {
		t.Fatalf("unexpected actor id %v", got.ActorID())
	}
	if !FromContext(context.Background()).IsGuest() {
		t.Fatal("empty context must yield a guest")
	}
}
