package handlers

import (
	"net/http"

	"hr-portal/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs, err := h.svc.ListAuditLogs(c.Request.Context(), service.AuditPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "audit_list.html", gin.H{"logs": logs})
}
