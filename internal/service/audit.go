package service

import (
	"context"

	"hr-portal/internal/database"
	"hr-portal/internal/models"
)

// AuditPageSize is how many entries the audit page shows.
const AuditPageSize = 200

// ListAuditLogs returns the newest entries first.
func (s *Service) ListAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = AuditPageSize
	}
	return database.NewRepo[models.AuditLog](s.db).Find(ctx, database.Query{
		Order:  "created_at desc, id desc",
		Limit:  limit,
		Expand: []string{"Actor"},
	})
}
