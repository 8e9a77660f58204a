package handlers

import (
	"fmt"
	"net/http"

	"hr-portal/internal/middleware"
	"hr-portal/internal/models"
	"hr-portal/internal/validation"

	"github.com/gin-gonic/gin"
)

// ListInterviews shows every session with its interviews.
func (h *Handler) ListInterviews(c *gin.Context) {
	sessions, err := h.svc.ListSessions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "interviews_list.html", gin.H{"sessions": sessions})
}

func (h *Handler) CancelSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.CancelSession(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		flashError(c, err)
	} else {
		flash(c, "Interview session cancelled")
	}
	c.Redirect(http.StatusFound, "/interviews")
}

func (h *Handler) ShowInterviewForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	iv, err := h.svc.GetInterview(c.Request.Context(), middleware.CurrentIdentity(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "interview_form.html", gin.H{
		"interview": iv,
		"form": validation.InterviewForm{
			TechNotes: iv.TechNotes,
			SoftNotes: iv.SoftNotes,
			Result:    string(iv.Result),
		},
		"results": []models.InterviewResult{models.ResultPending, models.ResultPass, models.ResultFail},
	})
}

func (h *Handler) UpdateInterview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor := middleware.CurrentIdentity(c)
	ctx := c.Request.Context()

	var form validation.InterviewForm
	_ = c.ShouldBind(&form)

	if _, err := h.svc.UpdateInterview(ctx, actor, id, form); err != nil {
		iv, getErr := h.svc.GetInterview(ctx, actor, id)
		if getErr != nil {
			fail(c, getErr)
			return
		}
		errs, msg := formError(c, err)
		render(c, statusFor(err), "interview_form.html", gin.H{
			"interview": iv,
			"form":      form,
			"errors":    errs,
			"error":     msg,
			"results":   []models.InterviewResult{models.ResultPending, models.ResultPass, models.ResultFail},
		})
		return
	}

	flash(c, fmt.Sprintf("Interview #%d saved", id))
	if actor.IsStaff() {
		c.Redirect(http.StatusFound, "/interviews")
		return
	}
	c.Redirect(http.StatusFound, "/employee/interviews")
}
