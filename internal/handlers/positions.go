package handlers

import (
	"net/http"

	"hr-portal/internal/middleware"
	"hr-portal/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPositions(c *gin.Context) {
	h.renderPositions(c, http.StatusOK, gin.H{})
}

func (h *Handler) renderPositions(c *gin.Context, status int, data gin.H) {
	positions, err := h.svc.ListPositions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	data["positions"] = positions
	render(c, status, "positions.html", data)
}

func (h *Handler) CreatePosition(c *gin.Context) {
	var form validation.PositionForm
	_ = c.ShouldBind(&form)

	if _, err := h.svc.CreatePosition(c.Request.Context(), middleware.CurrentIdentity(c), form); err != nil {
		errs, msg := formError(c, err)
		h.renderPositions(c, statusFor(err), gin.H{"form": form, "errors": errs, "error": msg})
		return
	}

	flash(c, "Position created")
	c.Redirect(http.StatusFound, "/positions")
}

func (h *Handler) TogglePosition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pos, err := h.svc.TogglePosition(c.Request.Context(), middleware.CurrentIdentity(c), id)
	switch {
	case err != nil:
		flashError(c, err)
	case pos.IsOpen:
		flash(c, pos.Title+" is open")
	default:
		flash(c, pos.Title+" is closed")
	}
	c.Redirect(http.StatusFound, "/positions")
}
