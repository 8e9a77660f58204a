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
	"hr-portal/internal/workflow"

	"gorm.io/gorm"
)

// Provisioned is the result of hiring a candidate. Password is shown to HR
// once and never stored in plain text.
type Provisioned struct {
	User     *models.User
	Employee *models.Employee
	Password string
}

// ProvisionEmployee creates the employee account of an OFFERED candidate and
// marks the candidate HIRED.
func (s *Service) ProvisionEmployee(ctx context.Context, actor session.Identity, candidateID uint) (*Provisioned, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	password := s.passwords.Password()
	hash, err := credentials.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	out := &Provisioned{Password: password}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		cand, err := database.NewRepo[models.Candidate](tx).Get(ctx, candidateID)
		if err != nil {
			return err
		}
		if !workflow.Can(cand.Status, workflow.EventHire) {
			return &workflow.TransitionError{From: cand.Status, Event: workflow.EventHire}
		}

		var taken []string
		if err := tx.WithContext(ctx).Model(&models.User{}).Pluck("username", &taken).Error; err != nil {
			return database.Translate(err)
		}

		user := models.User{
			Username:     credentials.GenerateUsername(cand.FullName, taken),
			Email:        cand.Email,
			Phone:        cand.Phone,
			FullName:     cand.FullName,
			Role:         models.RoleEmployee,
			Status:       models.UserActive,
			PasswordHash: hash,
		}
		if err := checkUnique(ctx, tx, 0, user.Username, user.Email); err != nil {
			return err
		}
		if err := database.NewRepo[models.User](tx).Insert(ctx, &user); err != nil {
			return err
		}

		emp := models.Employee{UserID: user.ID, CandidateID: &cand.ID}
		if err := database.NewRepo[models.Employee](tx).Insert(ctx, &emp); err != nil {
			return err
		}

		if err := s.audit(ctx, tx, actor, "create", "user", user.ID, map[string]any{
			"username":     user.Username,
			"role":         string(user.Role),
			"candidate_id": cand.ID,
		}); err != nil {
			return err
		}
		if err := s.transition(ctx, tx, actor, cand, workflow.EventHire, map[string]any{
			"user_id":     user.ID,
			"employee_id": emp.ID,
		}); err != nil {
			return err
		}

		out.User, out.Employee = &user, &emp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureProfile returns the employee record of actor, creating an empty one
// on first visit.
func (s *Service) EnsureProfile(ctx context.Context, actor session.Identity) (*models.Employee, error) {
	if actor.Role() != models.RoleEmployee {
		return nil, ErrForbidden
	}

	employees := database.NewRepo[models.Employee](s.db)
	q := database.Query{Where: map[string]any{"user_id": actor.UserID()}, Expand: []string{"User"}}

	emp, err := employees.First(ctx, q)
	if err == nil {
		return emp, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	created := models.Employee{UserID: actor.UserID()}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := database.NewRepo[models.Employee](tx).Insert(ctx, &created); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "create", "employee", created.ID, nil)
	})
	// a concurrent request may have created it first
	if err != nil && !errors.Is(err, database.ErrDuplicate) {
		return nil, err
	}
	return employees.First(ctx, q)
}

// UpdateProfile stores actor's personal data.
func (s *Service) UpdateProfile(ctx context.Context, actor session.Identity, form validation.EmployeeForm) (*models.Employee, error) {
	form.Residence = strings.TrimSpace(form.Residence)
	form.Hometown = strings.TrimSpace(form.Hometown)
	form.NationalID = strings.TrimSpace(form.NationalID)
	if err := validation.Check(form); err != nil {
		return nil, err
	}

	emp, err := s.EnsureProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	emp.Residence, emp.Hometown, emp.NationalID = form.Residence, form.Hometown, form.NationalID
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := database.NewRepo[models.Employee](tx).Save(ctx, emp); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "update", "employee", emp.ID, nil)
	})
	if err != nil {
		return nil, err
	}
	return emp, nil
}
