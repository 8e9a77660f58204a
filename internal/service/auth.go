package service

import (
	"context"
	"errors"
	"fmt"

	"hr-portal/internal/credentials"
	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/session"
)

// SignIn checks email and password against an ACTIVE account.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	user, err := database.NewRepo[models.User](s.db).First(ctx, database.Query{
		Where: map[string]any{"email": email, "status": models.UserActive},
	})
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if s.demoLogin && database.IsDemoEmail(email) {
		return user, nil
	}

	if err := credentials.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ResolveIdentity loads the user behind a session. Unknown and disabled
// accounts resolve to ErrInvalidCredentials.
func (s *Service) ResolveIdentity(ctx context.Context, userID uint) (session.Identity, error) {
	user, err := database.NewRepo[models.User](s.db).Get(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return session.Guest(), ErrInvalidCredentials
	}
	if err != nil {
		return session.Guest(), fmt.Errorf("load session user: %w", err)
	}
	if !user.IsActive() {
		return session.Guest(), ErrInvalidCredentials
	}
	return session.For(user), nil
}
