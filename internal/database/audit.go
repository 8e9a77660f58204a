package database

import (
	"context"

	"hr-portal/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateAuditLog writes one audit entry using db, normally the transaction of
// the change being recorded. actorID is nil for anonymous actions.
func CreateAuditLog(ctx context.Context, db *gorm.DB, actorID *uint, action, targetType string, targetID uint, payload map[string]any) error {
	record := models.AuditLog{
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Payload:    datatypes.JSONMap(payload),
	}
	return NewRepo[models.AuditLog](db).Insert(ctx, &record)
}
