package service

import (
	"context"
	"strings"

	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/session"
	"hr-portal/internal/validation"
	"hr-portal/internal/workflow"

	"gorm.io/gorm"
)

// RecordDecision stores a hiring verdict and moves the candidate to OFFERED
// or NOT_HIRED.
func (s *Service) RecordDecision(ctx context.Context, actor session.Identity, candidateID uint, form validation.DecisionForm) (*models.Decision, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	form.Notes = strings.TrimSpace(form.Notes)
	if err := validation.Check(form); err != nil {
		return nil, err
	}
	ev, err := workflow.EventForVerdict(models.Verdict(form.Verdict))
	if err != nil {
		return nil, validation.Errors{"decision": "Please choose a decision"}
	}

	dec := models.Decision{
		CandidateID: candidateID,
		DecidedByID: actor.UserID(),
		Verdict:     models.Verdict(form.Verdict),
		Notes:       form.Notes,
		DecidedAt:   s.now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		cand, err := database.NewRepo[models.Candidate](tx).Get(ctx, candidateID)
		if err != nil {
			return err
		}
		if !workflow.Can(cand.Status, ev) {
			return &workflow.TransitionError{From: cand.Status, Event: ev}
		}

		if err := database.NewRepo[models.Decision](tx).Insert(ctx, &dec); err != nil {
			return err
		}
		if err := s.audit(ctx, tx, actor, "decision", "candidate", candidateID, map[string]any{
			"decision_id": dec.ID,
			"verdict":     string(dec.Verdict),
		}); err != nil {
			return err
		}
		return s.transition(ctx, tx, actor, cand, ev, map[string]any{"decision_id": dec.ID})
	})
	if err != nil {
		return nil, err
	}
	return &dec, nil
}
