package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/session"
	"hr-portal/internal/validation"
	"hr-portal/internal/workflow"

	"gorm.io/gorm"
)

const scheduleLayout = "2006-01-02T15:04"

// CreateSession schedules an interview session for a candidate with one
// PENDING interview per interviewer and moves the candidate to INTERVIEW.
func (s *Service) CreateSession(ctx context.Context, actor session.Identity, candidateID uint, form validation.SessionForm) (*models.InterviewSession, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	form.Title = strings.TrimSpace(form.Title)
	form.ScheduledAt = strings.TrimSpace(form.ScheduledAt)
	if err := validation.Check(form); err != nil {
		return nil, err
	}

	var scheduledAt *time.Time
	if form.ScheduledAt != "" {
		t, err := time.ParseInLocation(scheduleLayout, form.ScheduledAt, time.Local)
		if err != nil {
			return nil, validation.Errors{"scheduled_date": "Invalid date"}
		}
		scheduledAt = &t
	}

	sess := models.InterviewSession{
		CandidateID: candidateID,
		Title:       form.Title,
		ScheduledAt: scheduledAt,
		Status:      models.SessionScheduled,
		CreatedByID: actor.UserID(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		cand, err := database.NewRepo[models.Candidate](tx).Get(ctx, candidateID)
		if err != nil {
			return err
		}
		if !workflow.Can(cand.Status, workflow.EventStartInterview) {
			return &workflow.TransitionError{From: cand.Status, Event: workflow.EventStartInterview}
		}

		n, err := database.NewRepo[models.User](tx).Count(ctx, database.Query{
			Where: map[string]any{"id": form.InterviewerIDs, "status": models.UserActive},
		})
		if err != nil {
			return err
		}
		if n != int64(len(form.InterviewerIDs)) {
			return validation.Errors{"interviewer_ids": "Interviewer not found or inactive"}
		}

		if err := database.NewRepo[models.InterviewSession](tx).Insert(ctx, &sess); err != nil {
			return err
		}

		interviews := database.NewRepo[models.Interview](tx)
		for _, uid := range form.InterviewerIDs {
			iv := models.Interview{
				CandidateID:   candidateID,
				InterviewerID: uid,
				SessionID:     &sess.ID,
				Result:        models.ResultPending,
			}
			if err := interviews.Insert(ctx, &iv); err != nil {
				return err
			}
			sess.Interviews = append(sess.Interviews, iv)
		}

		if err := s.audit(ctx, tx, actor, "create", "interview_session", sess.ID, map[string]any{
			"candidate_id": candidateID,
			"title":        sess.Title,
			"interviewers": form.InterviewerIDs,
		}); err != nil {
			return err
		}
		return s.transition(ctx, tx, actor, cand, workflow.EventStartInterview, map[string]any{"session_id": sess.ID})
	})
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Service) ListSessions(ctx context.Context) ([]models.InterviewSession, error) {
	return database.NewRepo[models.InterviewSession](s.db).ListRecent(ctx,
		"Candidate",
		"Creator",
		"Interviews.Interviewer",
	)
}

// MyInterviews lists the interviews assigned to actor, optionally filtered by result.
func (s *Service) MyInterviews(ctx context.Context, actor session.Identity, result models.InterviewResult) ([]models.Interview, error) {
	if actor.IsGuest() {
		return nil, ErrForbidden
	}
	where := map[string]any{"interviewer_id": actor.UserID()}
	if result != "" {
		where["result"] = result
	}
	return database.NewRepo[models.Interview](s.db).Find(ctx, database.Query{
		Where:  where,
		Order:  "created_at desc",
		Expand: []string{"Candidate.Position"},
	})
}

// CanEditInterview: HR and ADMIN edit any interview, everybody else only their own.
func CanEditInterview(actor session.Identity, iv *models.Interview) bool {
	if actor.IsGuest() {
		return false
	}
	return actor.IsStaff() || iv.InterviewerID == actor.UserID()
}

// GetInterview loads an interview actor is allowed to edit.
func (s *Service) GetInterview(ctx context.Context, actor session.Identity, id uint) (*models.Interview, error) {
	iv, err := database.NewRepo[models.Interview](s.db).Get(ctx, id, "Candidate.Position", "Interviewer")
	if err != nil {
		return nil, err
	}
	if !CanEditInterview(actor, iv) {
		return nil, ErrForbidden
	}
	return iv, nil
}

// UpdateInterview stores an interviewer's notes and result and keeps the
// session status in step with its interviews.
func (s *Service) UpdateInterview(ctx context.Context, actor session.Identity, id uint, form validation.InterviewForm) (*models.Interview, error) {
	form.TechNotes = strings.TrimSpace(form.TechNotes)
	form.SoftNotes = strings.TrimSpace(form.SoftNotes)
	if err := validation.Check(form); err != nil {
		return nil, err
	}

	var iv *models.Interview
	err := s.db.Transaction(func(tx *gorm.DB) error {
		interviews := database.NewRepo[models.Interview](tx)
		var err error
		iv, err = interviews.Get(ctx, id)
		if err != nil {
			return err
		}
		if !CanEditInterview(actor, iv) {
			return ErrForbidden
		}

		prev := iv.Result
		iv.TechNotes = form.TechNotes
		iv.SoftNotes = form.SoftNotes
		iv.Result = models.InterviewResult(form.Result)
		if err := interviews.UpdateByID(ctx, id, map[string]any{
			"tech_notes": iv.TechNotes,
			"soft_notes": iv.SoftNotes,
			"result":     iv.Result,
		}); err != nil {
			return err
		}
		if err := s.audit(ctx, tx, actor, "update", "interview", id, map[string]any{
			"candidate_id": iv.CandidateID,
			"result_from":  string(prev),
			"result_to":    form.Result,
		}); err != nil {
			return err
		}

		if iv.SessionID == nil {
			return nil
		}
		return s.syncSessionStatus(ctx, tx, actor, *iv.SessionID)
	})
	if err != nil {
		return nil, err
	}
	return iv, nil
}

func (s *Service) syncSessionStatus(ctx context.Context, tx *gorm.DB, actor session.Identity, sessionID uint) error {
	sess, err := database.NewRepo[models.InterviewSession](tx).Get(ctx, sessionID, "Interviews")
	if err != nil {
		return err
	}
	if sess.Status == models.SessionCancelled {
		return nil
	}

	next := sessionStatusFor(sess.Interviews)
	if next == sess.Status {
		return nil
	}
	if err := database.NewRepo[models.InterviewSession](tx).UpdateByID(ctx, sessionID, map[string]any{"status": next}); err != nil {
		return err
	}
	return s.audit(ctx, tx, actor, "status_change", "interview_session", sessionID, map[string]any{
		"from": string(sess.Status),
		"to":   string(next),
	})
}

func sessionStatusFor(interviews []models.Interview) models.SessionStatus {
	done := 0
	for _, iv := range interviews {
		if iv.Result != models.ResultPending {
			done++
		}
	}
	switch {
	case len(interviews) > 0 && done == len(interviews):
		return models.SessionCompleted
	case done > 0:
		return models.SessionInProgress
	}
	return models.SessionScheduled
}

// CancelSession cancels a session that has not completed yet.
func (s *Service) CancelSession(ctx context.Context, actor session.Identity, id uint) error {
	if err := requireStaff(actor); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		sessions := database.NewRepo[models.InterviewSession](tx)
		sess, err := sessions.Get(ctx, id)
		if err != nil {
			return err
		}
		if sess.Status == models.SessionCompleted || sess.Status == models.SessionCancelled {
			return fmt.Errorf("session %d: %w", id, ErrSessionClosed)
		}
		if err := sessions.UpdateByID(ctx, id, map[string]any{"status": models.SessionCancelled}); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "cancel", "interview_session", id, map[string]any{"from": string(sess.Status)})
	})
}
