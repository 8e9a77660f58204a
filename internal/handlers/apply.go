package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"hr-portal/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) ShowApply(c *gin.Context) {
	h.renderApply(c, http.StatusOK, gin.H{})
}

func (h *Handler) renderApply(c *gin.Context, status int, data gin.H) {
	positions, err := h.svc.ListOpenPositions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	data["positions"] = positions
	render(c, status, "apply.html", data)
}

// Apply accepts a public application with its CV upload.
func (h *Handler) Apply(c *gin.Context) {
	var form validation.CandidateForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderApply(c, http.StatusBadRequest, gin.H{"form": form, "error": "Invalid form data"})
		return
	}
	form = form.Normalized()

	errs := validation.Errors{}
	if err := validation.Check(form); err != nil {
		var verr validation.Errors
		if !errors.As(err, &verr) {
			fail(c, err)
			return
		}
		for k, v := range verr {
			errs[k] = v
		}
	}

	file, err := c.FormFile("cv")
	if err != nil {
		errs["cv"] = "Please upload your CV"
	} else if err := validation.CheckCV(file.Filename, file.Header.Get("Content-Type"), file.Size); err != nil {
		var verr validation.Errors
		if errors.As(err, &verr) {
			errs["cv"] = verr["cv"]
		}
	}
	if len(errs) > 0 {
		h.renderApply(c, http.StatusBadRequest, gin.H{"form": form, "errors": errs})
		return
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		log.Printf("failed to store CV: %v", err)
		h.renderApply(c, http.StatusInternalServerError, gin.H{"form": form, "error": msgGeneric})
		return
	}

	cand, err := h.svc.SubmitApplication(c.Request.Context(), form, name)
	if err != nil {
		_ = os.Remove(path)
		errs, msg := formError(c, err)
		h.renderApply(c, statusFor(err), gin.H{"form": form, "errors": errs, "error": msg})
		return
	}

	render(c, http.StatusCreated, "apply_done.html", gin.H{"candidate": cand})
}

// ServeCV streams a stored CV. Only names produced by Apply are served.
func (h *Handler) ServeCV(c *gin.Context) {
	name := c.Param("name")
	ext := filepath.Ext(name)
	if _, err := uuid.Parse(strings.TrimSuffix(name, ext)); err != nil || name != filepath.Base(name) {
		render(c, http.StatusNotFound, "error.html", gin.H{"status": http.StatusNotFound, "error": "File not found"})
		return
	}

	path := filepath.Join(h.uploadDir, name)
	if _, err := os.Stat(path); err != nil {
		render(c, http.StatusNotFound, "error.html", gin.H{"status": http.StatusNotFound, "error": "File not found"})
		return
	}
	c.FileAttachment(path, "cv"+ext)
}
