package service

import (
	"context"
	"strings"

	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/session"
	"hr-portal/internal/validation"

	"gorm.io/gorm"
)

func (s *Service) ListPositions(ctx context.Context) ([]models.Position, error) {
	return database.NewRepo[models.Position](s.db).ListRecent(ctx)
}

// ListOpenPositions is what the public application form offers.
func (s *Service) ListOpenPositions(ctx context.Context) ([]models.Position, error) {
	return database.NewRepo[models.Position](s.db).Find(ctx, database.Query{
		Where: map[string]any{"is_open": true},
		Order: "created_at desc",
	})
}

func (s *Service) CreatePosition(ctx context.Context, actor session.Identity, form validation.PositionForm) (*models.Position, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	form.Title = strings.TrimSpace(form.Title)
	form.Department = strings.TrimSpace(form.Department)
	form.Description = strings.TrimSpace(form.Description)
	if err := validation.Check(form); err != nil {
		return nil, err
	}

	pos := models.Position{
		Title:       form.Title,
		Department:  form.Department,
		Description: form.Description,
		IsOpen:      true,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := database.NewRepo[models.Position](tx).Insert(ctx, &pos); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "create", "position", pos.ID, map[string]any{"title": pos.Title})
	})
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

// TogglePosition opens a closed position or closes an open one.
func (s *Service) TogglePosition(ctx context.Context, actor session.Identity, id uint) (*models.Position, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	var pos *models.Position
	err := s.db.Transaction(func(tx *gorm.DB) error {
		positions := database.NewRepo[models.Position](tx)
		var err error
		pos, err = positions.Get(ctx, id)
		if err != nil {
			return err
		}
		pos.IsOpen = !pos.IsOpen
		if err := positions.UpdateByID(ctx, id, map[string]any{"is_open": pos.IsOpen}); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, "toggle", "position", id, map[string]any{"is_open": pos.IsOpen})
	})
	if err != nil {
		return nil, err
	}
	return pos, nil
}
