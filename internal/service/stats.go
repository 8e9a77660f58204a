package service

import (
	"context"

	"hr-portal/internal/database"
	"hr-portal/internal/models"

	"gorm.io/gorm"
)

// NewEmployeeWindowDays is the look-back window for Stats.NewEmployees.
const NewEmployeeWindowDays = 30

type Stats struct {
	TotalCandidates int64
	ByStatus        map[models.CandidateStatus]int64
	TotalInterviews int64
	ByResult        map[models.InterviewResult]int64
	NewEmployees    int64
}

// Stats computes the dashboard figures.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	out := &Stats{
		ByStatus: make(map[models.CandidateStatus]int64, len(models.CandidateStatuses)),
		ByResult: make(map[models.InterviewResult]int64, 3),
	}
	for _, st := range models.CandidateStatuses {
		out.ByStatus[st] = 0
	}
	for _, r := range []models.InterviewResult{models.ResultPass, models.ResultFail, models.ResultPending} {
		out.ByResult[r] = 0
	}

	var byStatus []struct {
		Status models.CandidateStatus
		N      int64
	}
	if err := s.db.WithContext(ctx).Model(&models.Candidate{}).
		Select("status, COUNT(*) AS n").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, database.Translate(err)
	}
	for _, row := range byStatus {
		out.ByStatus[row.Status] = row.N
		out.TotalCandidates += row.N
	}

	var byResult []struct {
		Result models.InterviewResult
		N      int64
	}
	if err := s.db.WithContext(ctx).Model(&models.Interview{}).
		Select("result, COUNT(*) AS n").Group("result").Scan(&byResult).Error; err != nil {
		return nil, database.Translate(err)
	}
	for _, row := range byResult {
		out.ByResult[row.Result] = row.N
		out.TotalInterviews += row.N
	}

	since := s.now().AddDate(0, 0, -NewEmployeeWindowDays)
	n, err := database.NewRepo[models.Employee](s.db).Count(ctx, database.Query{
		Scopes: []func(*gorm.DB) *gorm.DB{func(db *gorm.DB) *gorm.DB {
			return db.Where("created_at >= ?", since)
		}},
	})
	if err != nil {
		return nil, err
	}
	out.NewEmployees = n
	return out, nil
}
