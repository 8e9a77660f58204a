package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"hr-portal/internal/middleware"
	"hr-portal/internal/models"
	"hr-portal/internal/service"
	"hr-portal/internal/validation"
	"hr-portal/internal/workflow"

	"github.com/gin-gonic/gin"
)

func candidatePath(id uint) string {
	return fmt.Sprintf("/candidates/%d", id)
}

// ListCandidates shows the pipeline with status and text filters.
func (h *Handler) ListCandidates(c *gin.Context) {
	status := models.CandidateStatus(c.Query("status"))
	if !status.Valid() {
		status = ""
	}
	search := strings.TrimSpace(c.Query("q"))

	candidates, err := h.svc.ListCandidates(c.Request.Context(), service.CandidateFilter{Status: status, Search: search})
	if err != nil {
		fail(c, err)
		return
	}

	render(c, http.StatusOK, "candidates_list.html", gin.H{
		"candidates":   candidates,
		"statuses":     models.CandidateStatuses,
		"FilterStatus": string(status),
		"FilterQuery":  search,
	})
}

func (h *Handler) ShowCandidate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.renderCandidate(c, http.StatusOK, id, gin.H{})
}

func (h *Handler) renderCandidate(c *gin.Context, status int, id uint, data gin.H) {
	ctx := c.Request.Context()
	cand, err := h.svc.GetCandidate(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	history, err := h.svc.CandidateHistory(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	interviewers, err := h.svc.ListInterviewers(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	data["candidate"] = cand
	data["history"] = history
	data["interviewers"] = interviewers
	data["events"] = workflow.Available(cand.Status)
	data["final"] = workflow.Terminal(cand.Status)
	render(c, status, "candidate_detail.html", data)
}

func (h *Handler) ApproveCandidate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Approve(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		flashError(c, err)
	} else {
		flash(c, "Candidate approved")
	}
	c.Redirect(http.StatusFound, candidatePath(id))
}

func (h *Handler) RejectCandidate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Reject(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		flashError(c, err)
	} else {
		flash(c, "Candidate rejected")
	}
	c.Redirect(http.StatusFound, candidatePath(id))
}

// BulkCandidates approves or rejects the selected candidates.
func (h *Handler) BulkCandidates(c *gin.Context) {
	ev, ok := workflow.ParseEvent(c.PostForm("action"))
	if !ok {
		flashError(c, service.ErrUnsupportedBulk)
		c.Redirect(http.StatusFound, "/candidates")
		return
	}

	var ids []uint
	for _, raw := range c.PostFormArray("ids") {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			ids = append(ids, uint(id))
		}
	}
	if len(ids) == 0 {
		flash(c, "No candidates selected")
		c.Redirect(http.StatusFound, "/candidates")
		return
	}

	res, err := h.svc.BulkTransition(c.Request.Context(), middleware.CurrentIdentity(c), ids, ev)
	if err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, "/candidates")
		return
	}

	flash(c, fmt.Sprintf("%s: %d succeeded, %d failed", ev, len(res.Succeeded), len(res.Failed)))
	failed := make([]uint, 0, len(res.Failed))
	for id := range res.Failed {
		failed = append(failed, id)
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	for _, id := range failed {
		flashError(c, fmt.Errorf("candidate #%d: %w", id, res.Failed[id]))
	}
	c.Redirect(http.StatusFound, "/candidates")
}

func (h *Handler) CreateSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form validation.SessionForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderCandidate(c, http.StatusBadRequest, id, gin.H{"sessionError": "Invalid form data"})
		return
	}

	if _, err := h.svc.CreateSession(c.Request.Context(), middleware.CurrentIdentity(c), id, form); err != nil {
		errs, msg := formError(c, err)
		h.renderCandidate(c, statusFor(err), id, gin.H{"sessionForm": form, "sessionErrors": errs, "sessionError": msg})
		return
	}

	flash(c, "Interview session created")
	c.Redirect(http.StatusFound, candidatePath(id))
}

func (h *Handler) RecordDecision(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form validation.DecisionForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderCandidate(c, http.StatusBadRequest, id, gin.H{"decisionError": "Invalid form data"})
		return
	}

	if _, err := h.svc.RecordDecision(c.Request.Context(), middleware.CurrentIdentity(c), id, form); err != nil {
		errs, msg := formError(c, err)
		h.renderCandidate(c, statusFor(err), id, gin.H{"decisionForm": form, "decisionErrors": errs, "decisionError": msg})
		return
	}

	flash(c, "Decision recorded")
	c.Redirect(http.StatusFound, candidatePath(id))
}

// HireCandidate provisions the employee account and shows its credentials once.
func (h *Handler) HireCandidate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	prov, err := h.svc.ProvisionEmployee(c.Request.Context(), middleware.CurrentIdentity(c), id)
	if err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, candidatePath(id))
		return
	}

	render(c, http.StatusOK, "credentials.html", gin.H{
		"title":    "Employee account created",
		"user":     prov.User,
		"password": prov.Password,
		"back":     candidatePath(id),
	})
}
