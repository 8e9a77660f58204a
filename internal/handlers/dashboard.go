package handlers

import (
	"net/http"

	"hr-portal/internal/models"
	"hr-portal/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.svc.Stats(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	recent, err := h.svc.ListCandidates(ctx, service.CandidateFilter{Status: models.CandidateSubmitted})
	if err != nil {
		fail(c, err)
		return
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"stats":      stats,
		"statuses":   models.CandidateStatuses,
		"results":    []models.InterviewResult{models.ResultPass, models.ResultFail, models.ResultPending},
		"recent":     recent,
		"windowDays": service.NewEmployeeWindowDays,
	})
}
