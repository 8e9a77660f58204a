package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/session"
	"hr-portal/internal/validation"
	"hr-portal/internal/workflow"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type CandidateFilter struct {
	Status models.CandidateStatus
	// Search matches name, email or phone.
	Search string
}

// BulkResult reports the outcome of a bulk action per candidate.
type BulkResult struct {
	Succeeded []uint
	Failed    map[uint]error
}

// SubmitApplication records a public application. cvURL is the stored CV reference.
func (s *Service) SubmitApplication(ctx context.Context, form validation.CandidateForm, cvURL string) (*models.Candidate, error) {
	form = form.Normalized()
	if err := validation.Check(form); err != nil {
		return nil, err
	}
	if cvURL == "" {
		return nil, validation.Errors{"cv": "Please upload your CV"}
	}

	cand := models.Candidate{
		FullName:          form.FullName,
		Email:             form.Email,
		Phone:             form.Phone,
		CVURL:             cvURL,
		AppliedPositionID: form.PositionID,
		Status:            models.CandidateSubmitted,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		pos, err := database.NewRepo[models.Position](tx).Get(ctx, form.PositionID)
		if errors.Is(err, database.ErrNotFound) || (err == nil && !pos.IsOpen) {
			return validation.Errors{"applied_position_id": "Please select an open position"}
		}
		if err != nil {
			return err
		}

		if err := database.NewRepo[models.Candidate](tx).Insert(ctx, &cand); err != nil {
			return err
		}
		return s.audit(ctx, tx, session.Guest(), "submit", "candidate", cand.ID, map[string]any{
			"position_id": pos.ID,
			"email":       cand.Email,
		})
	})
	if err != nil {
		return nil, err
	}
	return &cand, nil
}

func (s *Service) ListCandidates(ctx context.Context, f CandidateFilter) ([]models.Candidate, error) {
	q := database.Query{Order: "created_at desc", Expand: []string{"Position"}}
	if f.Status != "" {
		q.Where = map[string]any{"status": f.Status}
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q.Scopes = append(q.Scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", like, like, like)
		})
	}
	return database.NewRepo[models.Candidate](s.db).Find(ctx, q)
}

// GetCandidate loads a candidate with its position, interviews, decisions and sessions.
func (s *Service) GetCandidate(ctx context.Context, id uint) (*models.Candidate, error) {
	return database.NewRepo[models.Candidate](s.db).Get(ctx, id,
		"Position",
		"Interviews.Interviewer",
		"Decisions.Decider",
		"Sessions",
	)
}

// CandidateHistory returns the audit trail of one candidate, oldest first.
func (s *Service) CandidateHistory(ctx context.Context, id uint) ([]models.AuditLog, error) {
	return database.NewRepo[models.AuditLog](s.db).Find(ctx, database.Query{
		Where:  map[string]any{"target_type": "candidate", "target_id": id},
		Order:  "created_at asc, id asc",
		Expand: []string{"Actor"},
	})
}

func (s *Service) Approve(ctx context.Context, actor session.Identity, id uint) (*models.Candidate, error) {
	return s.fire(ctx, actor, id, workflow.EventApprove)
}

func (s *Service) Reject(ctx context.Context, actor session.Identity, id uint) (*models.Candidate, error) {
	return s.fire(ctx, actor, id, workflow.EventReject)
}

func (s *Service) fire(ctx context.Context, actor session.Identity, id uint, ev workflow.Event) (*models.Candidate, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	var cand *models.Candidate
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		cand, err = database.NewRepo[models.Candidate](tx).Get(ctx, id)
		if err != nil {
			return err
		}
		return s.transition(ctx, tx, actor, cand, ev, nil)
	})
	if err != nil {
		return nil, err
	}
	return cand, nil
}

// BulkTransition approves or rejects several candidates concurrently and
// waits for all of them. Each candidate is its own transaction.
func (s *Service) BulkTransition(ctx context.Context, actor session.Identity, ids []uint, ev workflow.Event) (BulkResult, error) {
	res := BulkResult{Failed: map[uint]error{}}
	if ev != workflow.EventApprove && ev != workflow.EventReject {
		return res, fmt.Errorf("%s: %w", ev, ErrUnsupportedBulk)
	}
	if err := requireStaff(actor); err != nil {
		return res, err
	}

	errs := make([]error, len(ids))
	var g errgroup.Group
	g.SetLimit(s.bulkLimit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			_, errs[i] = s.fire(ctx, actor, id, ev)
			return nil
		})
	}
	_ = g.Wait()

	for i, id := range ids {
		if errs[i] != nil {
			res.Failed[id] = errs[i]
			continue
		}
		res.Succeeded = append(res.Succeeded, id)
	}
	return res, nil
}
