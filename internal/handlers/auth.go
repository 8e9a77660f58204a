package handlers

import (
	"errors"
	"net/http"
	"strings"

	"hr-portal/internal/access"
	"hr-portal/internal/middleware"
	"hr-portal/internal/service"
	"hr-portal/internal/validation"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Index sends visitors to their home page.
func (h *Handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, access.HomePath(middleware.CurrentIdentity(c).Role()))
}

func (h *Handler) ShowLogin(c *gin.Context) {
	if id := middleware.CurrentIdentity(c); !id.IsGuest() {
		c.Redirect(http.StatusFound, access.HomePath(id.Role()))
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

func (h *Handler) Login(c *gin.Context) {
	var form validation.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}
	form.Email = strings.TrimSpace(form.Email)

	if err := validation.Check(form); err != nil {
		errs, msg := formError(c, err)
		render(c, http.StatusBadRequest, "login.html", gin.H{"form": form, "errors": errs, "error": msg})
		return
	}

	user, err := h.svc.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, service.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		_, msg := formError(c, err)
		render(c, status, "login.html", gin.H{"form": form, "error": msg})
		return
	}

	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(middleware.SessionUserKey, user.ID)
	_ = sess.Save()

	c.Redirect(http.StatusFound, access.HomePath(user.Role))
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Unauthorized(c *gin.Context) {
	render(c, http.StatusForbidden, "unauthorized.html", nil)
}

func (h *Handler) ShowChangePassword(c *gin.Context) {
	render(c, http.StatusOK, "account_password.html", nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var form validation.PasswordForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "account_password.html", gin.H{"error": "Invalid form data"})
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), middleware.CurrentIdentity(c), form); err != nil {
		errs, msg := formError(c, err)
		render(c, statusFor(err), "account_password.html", gin.H{"errors": errs, "error": msg})
		return
	}

	flash(c, "Password changed")
	c.Redirect(http.StatusFound, "/account/password")
}
