package service

import (
	"context"
	"errors"
	"testing"

	"hr-portal/internal/credentials"
	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/validation"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Options{})
	ctx := context.Background()

	form := validation.UserForm{
		Username: "minh",
		Email:    "Minh@Example.com",
		Phone:    "0987654321",
		FullName: "Trần Minh",
		Role:     string(models.RoleHR),
	}
	created, err := f.svc.CreateUser(ctx, f.admin, form)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.User.Email != "minh@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.User.Email)
	}
	if len(created.Password) != credentials.PasswordLength {
		t.Fatalf("expected a generated password, got %q", created.Password)
	}
	if err := credentials.CheckPassword(created.User.PasswordHash, created.Password); err != nil {
		t.Fatalf("stored hash does not match generated password: %v", err)
	}

	form.Username = "minh2"
	if _, err := f.svc.CreateUser(ctx, f.admin, form); !errors.Is(err, database.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if _, err := f.svc.CreateUser(ctx, f.hr, form); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for HR, got %v", err)
	}

	form.Role = "ROOT"
	_, err = f.svc.CreateUser(ctx, f.admin, form)
	var verr validation.Errors
	if !errors.As(err, &verr) || !verr.Has("role") {
		t.Fatalf("expected role error, got %v", err)
	}
}

func TestUpdateUserRole(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Options{})
	ctx := context.Background()
	emp := f.employee(t, "promote", "promote@example.com")

	updated, err := f.svc.UpdateUser(ctx, f.admin, emp.UserID(), validation.UserForm{
		Username: "promote",
		Email:    "promote@example.com",
		Phone:    "0912345679",
		FullName: "Promoted Person",
		Role:     string(models.RoleHR),
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Role != models.RoleHR || updated.FullName != "Promoted Person" {
		t.Fatalf("unexpected user %+v", updated)
	}
	if err := credentials.CheckPassword(updated.PasswordHash, "secret123"); err != nil {
		t.Fatalf("empty password must keep the old one: %v", err)
	}

	admin := f.admin.User
	_, err = f.svc.UpdateUser(ctx, f.admin, admin.ID, validation.UserForm{
		Username: admin.Username,
		Email:    admin.Email,
		Phone:    admin.Phone,
		FullName: admin.FullName,
		Role:     string(models.RoleHR),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on self demotion, got %v", err)
	}
}

func TestDeleteAndToggleUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Options{})
	ctx := context.Background()

	if err := f.svc.DeleteUser(ctx, f.admin, f.admin.UserID()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on self delete, got %v", err)
	}
	if _, err := f.svc.ToggleUserStatus(ctx, f.admin, f.admin.UserID()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on self disable, got %v", err)
	}

	emp := f.employee(t, "leaving", "leaving@example.com")
	user, err := f.svc.ToggleUserStatus(ctx, f.admin, emp.UserID())
	if err != nil {
		t.Fatalf("ToggleUserStatus: %v", err)
	}
	if user.Status != models.UserDisabled {
		t.Fatalf("expected DISABLED, got %s", user.Status)
	}
	if err := f.svc.DeleteUser(ctx, f.admin, emp.UserID()); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := f.svc.GetUser(ctx, emp.UserID()); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// interviewers are referenced by their interviews
	busy := f.employee(t, "busy", "busy@example.com")
	cand := f.apply(t, "Lý K", "lk@example.com")
	if _, err := f.svc.Approve(ctx, f.hr, cand.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := f.svc.CreateSession(ctx, f.hr, cand.ID, validation.SessionForm{
		Title:          "Design review",
		InterviewerIDs: []uint{busy.UserID()},
	}); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if err := f.svc.DeleteUser(ctx, f.admin, busy.UserID()); !errors.Is(err, database.ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}
}

func TestPasswords(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Options{})
	ctx := context.Background()
	emp := f.employee(t, "pw", "pw@example.com")

	err := f.svc.ChangePassword(ctx, emp, validation.PasswordForm{Current: "wrong-one", New: "newsecret", Confirm: "newsecret"})
	var verr validation.Errors
	if !errors.As(err, &verr) || !verr.Has("current_password") {
		t.Fatalf("expected current_password error, got %v", err)
	}
	err = f.svc.ChangePassword(ctx, emp, validation.PasswordForm{Current: "secret123", New: "newsecret", Confirm: "other"})
	if !errors.As(err, &verr) || !verr.Has("confirm_password") {
		t.Fatalf("expected confirm_password error, got %v", err)
	}
	if err := f.svc.ChangePassword(ctx, emp, validation.PasswordForm{Current: "secret123", New: "newsecret", Confirm: "newsecret"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, err := f.svc.SignIn(ctx, "pw@example.com", "newsecret"); err != nil {
		t.Fatalf("SignIn with new password: %v", err)
	}

	reset, err := f.svc.ResetPassword(ctx, f.admin, emp.UserID())
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, err := f.svc.SignIn(ctx, "pw@example.com", reset); err != nil {
		t.Fatalf("SignIn with reset password: %v", err)
	}
	if _, err := f.svc.ResetPassword(ctx, f.hr, emp.UserID()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for HR reset, got %v", err)
	}
}

func TestPositions(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Options{})
	ctx := context.Background()

	pos, err := f.svc.CreatePosition(ctx, f.hr, validation.PositionForm{Title: "QA Engineer", Department: "Engineering"})
	if err != nil {
		t.Fatalf("CreatePosition: %v", err)
	}
	if !pos.IsOpen {
		t.Fatal("new positions should be open")
	}

	open, err := f.svc.ListOpenPositions(ctx)
	if err != nil {
		t.Fatalf("ListOpenPositions: %v", err)
	}
	before := len(open)

	if _, err := f.svc.TogglePosition(ctx, f.hr, pos.ID); err != nil {
		t.Fatalf("TogglePosition: %v", err)
	}
	open, _ = f.svc.ListOpenPositions(ctx)
	if len(open) != before-1 {
		t.Fatalf("expected %d open positions, got %d", before-1, len(open))
	}

	emp := f.employee(t, "nopos", "nopos@example.com")
	if _, err := f.svc.CreatePosition(ctx, emp, validation.PositionForm{Title: "Nope", Department: "X"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
