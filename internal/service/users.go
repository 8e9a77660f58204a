package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hr-portal/internal/credentials"
	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/session"
	"hr-portal/internal/validation"

	"gorm.io/gorm"
)

// CreatedUser carries a new account and, when it was generated, its plain password.
type CreatedUser struct {
	User     *models.User
	Password string
}

// ListUsers returns every account with its employee record, if any.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return database.NewRepo[models.User](s.db).ListRecent(ctx, "Employee")
}

// ListInterviewers returns active accounts that can be assigned to an interview.
func (s *Service) ListInterviewers(ctx context.Context) ([]models.User, error) {
	return database.NewRepo[models.User](s.db).Find(ctx, database.Query{
		Where: map[string]any{"status": models.UserActive},
		Order: "full_name asc",
	})
}

func (s *Service) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return database.NewRepo[models.User](s.db).Get(ctx, id)
}

func normalizeUserForm(form validation.UserForm) validation.UserForm {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = normalizeEmail(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.FullName = strings.TrimSpace(form.FullName)
	return form
}

// checkUnique fails with ErrDuplicate when another user (not exceptID) has
// the same username or email.
func checkUnique(ctx context.Context, tx *gorm.DB, exceptID uint, username, email string) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&models.User{}).
		Where("(username = ? OR email = ?) AND id <> ?", username, email, exceptID).
		Count(&count).Error; err != nil {
		return database.Translate(err)
	}
	if count > 0 {
		return database.ErrDuplicate
	}
	return nil
}

func (s *Service) CreateUser(ctx context.Context, actor session.Identity, form validation.UserForm) (*CreatedUser, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	form = normalizeUserForm(form)
	if err := validation.Check(form); err != nil {
		return nil, err
	}

	out := &CreatedUser{}
	password := form.Password
	if password == "" {
		password = s.passwords.Password()
		out.Password = password
	}
	hash, err := credentials.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     form.Username,
		Email:        form.Email,
		Phone:        form.Phone,
		FullName:     form.FullName,
		Role:         models.UserRole(form.Role),
		Status:       models.UserActive,
		PasswordHash: hash,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkUnique(ctx, tx, 0, user.Username, user.Email); err != nil {
			return err
		}
		if err := database.NewRepo[models.User](tx).Insert(ctx, &user); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "create", "user", user.ID, map[string]any{
			"username": user.Username,
			"role":     string(user.Role),
		})
	})
	if err != nil {
		return nil, err
	}

	out.User = &user
	return out, nil
}

// UpdateUser edits an account. An empty password keeps the current one.
func (s *Service) UpdateUser(ctx context.Context, actor session.Identity, id uint, form validation.UserForm) (*models.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	form = normalizeUserForm(form)
	if err := validation.Check(form); err != nil {
		return nil, err
	}
	if id == actor.UserID() && models.UserRole(form.Role) != models.RoleAdmin {
		// an admin cannot demote themselves out of the user admin pages
		return nil, ErrForbidden
	}

	updates := map[string]any{
		"username":  form.Username,
		"email":     form.Email,
		"phone":     form.Phone,
		"full_name": form.FullName,
		"role":      models.UserRole(form.Role),
	}
	if form.Password != "" {
		hash, err := credentials.HashPassword(form.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password_hash"] = hash
	}

	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := database.NewRepo[models.User](tx)
		before, err := users.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := checkUnique(ctx, tx, id, form.Username, form.Email); err != nil {
			return err
		}
		if err := users.UpdateByID(ctx, id, updates); err != nil {
			return err
		}
		payload := map[string]any{"username": form.Username}
		if before.Role != models.UserRole(form.Role) {
			payload["role_from"] = string(before.Role)
			payload["role_to"] = form.Role
		}
		if err := s.audit(ctx, tx, actor, "update", "user", id, payload); err != nil {
			return err
		}
		user, err = users.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, actor session.Identity, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if id == actor.UserID() {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		users := database.NewRepo[models.User](tx)
		user, err := users.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := users.DeleteByID(ctx, id); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "delete", "user", id, map[string]any{
			"username": user.Username,
			"email":    user.Email,
		})
	})
}

// ToggleUserStatus flips an account between ACTIVE and DISABLED.
func (s *Service) ToggleUserStatus(ctx context.Context, actor session.Identity, id uint) (*models.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if id == actor.UserID() {
		return nil, ErrForbidden
	}

	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := database.NewRepo[models.User](tx)
		var err error
		user, err = users.Get(ctx, id)
		if err != nil {
			return err
		}

		next := models.UserDisabled
		if user.Status == models.UserDisabled {
			next = models.UserActive
		}
		if err := users.UpdateByID(ctx, id, map[string]any{"status": next}); err != nil {
			return err
		}
		payload := map[string]any{"from": string(user.Status), "to": string(next)}
		user.Status = next
		return s.audit(ctx, tx, actor, "status_change", "user", id, payload)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword sets a generated password on another account and returns it.
func (s *Service) ResetPassword(ctx context.Context, actor session.Identity, id uint) (string, error) {
	if err := requireAdmin(actor); err != nil {
		return "", err
	}

	password := s.passwords.Password()
	hash, err := credentials.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := database.NewRepo[models.User](tx).UpdateByID(ctx, id, map[string]any{"password_hash": hash}); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "reset_password", "user", id, nil)
	})
	if err != nil {
		return "", err
	}
	return password, nil
}

// ChangePassword lets a signed-in user replace their own password.
func (s *Service) ChangePassword(ctx context.Context, actor session.Identity, form validation.PasswordForm) error {
	if actor.IsGuest() {
		return ErrForbidden
	}
	if err := validation.Check(form); err != nil {
		return err
	}

	user, err := s.GetUser(ctx, actor.UserID())
	if err != nil {
		return err
	}
	if err := credentials.CheckPassword(user.PasswordHash, form.Current); err != nil {
		if errors.Is(err, credentials.ErrMismatch) {
			return validation.Errors{"current_password": "Current password is incorrect"}
		}
		return err
	}

	hash, err := credentials.HashPassword(form.New)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := database.NewRepo[models.User](tx).UpdateByID(ctx, user.ID, map[string]any{"password_hash": hash}); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "change_password", "user", user.ID, nil)
	})
}
