// Package service implements the portal's operations on top of the
// database layer. Every operation that changes more than one row runs in a
// single transaction together with its audit entries.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"hr-portal/internal/credentials"
	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/session"
	"hr-portal/internal/workflow"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrSessionClosed      = errors.New("interview session is already completed or cancelled")
	ErrUnsupportedBulk    = errors.New("action is not available for bulk updates")
)

type Options struct {
	// DemoLogin lets the seeded demo accounts sign in with any password.
	DemoLogin       bool
	BulkConcurrency int
	Passwords       *credentials.Generator
	Now             func() time.Time
}

type Service struct {
	db        *gorm.DB
	demoLogin bool
	bulkLimit int
	passwords *credentials.Generator
	now       func() time.Time
}

func New(db *gorm.DB, opts Options) *Service {
	if opts.BulkConcurrency <= 0 {
		opts.BulkConcurrency = 4
	}
	if opts.Passwords == nil {
		opts.Passwords = credentials.NewGenerator(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		db:        db,
		demoLogin: opts.DemoLogin,
		bulkLimit: opts.BulkConcurrency,
		passwords: opts.Passwords,
		now:       opts.Now,
	}
}

func (s *Service) audit(ctx context.Context, tx *gorm.DB, actor session.Identity, action, targetType string, targetID uint, payload map[string]any) error {
	return database.CreateAuditLog(ctx, tx, actor.ActorID(), action, targetType, targetID, payload)
}

// transition fires ev on cand inside tx. The row is only updated if its
// status is still the one cand was loaded with.
func (s *Service) transition(ctx context.Context, tx *gorm.DB, actor session.Identity, cand *models.Candidate, ev workflow.Event, payload map[string]any) error {
	from := cand.Status
	next, err := workflow.Apply(from, ev)
	if err != nil {
		return err
	}

	res := tx.WithContext(ctx).Model(&models.Candidate{}).
		Where("id = ? AND status = ?", cand.ID, from).
		Update("status", next)
	if res.Error != nil {
		return database.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return &workflow.TransitionError{From: from, Event: ev}
	}
	cand.Status = next

	if payload == nil {
		payload = map[string]any{}
	}
	payload["from"] = string(from)
	payload["to"] = string(next)
	return s.audit(ctx, tx, actor, string(ev), "candidate", cand.ID, payload)
}

func requireStaff(actor session.Identity) error {
	if !actor.IsStaff() {
		return ErrForbidden
	}
	return nil
}

func requireAdmin(actor session.Identity) error {
	if actor.Role() != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
