package handlers

import (
	"net/http"

	"hr-portal/internal/middleware"
	"hr-portal/internal/models"
	"hr-portal/internal/validation"

	"github.com/gin-gonic/gin"
)

var assignableRoles = []models.UserRole{models.RoleAdmin, models.RoleHR, models.RoleEmployee}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "users_list.html", gin.H{"users": users})
}

func (h *Handler) ShowNewUser(c *gin.Context) {
	render(c, http.StatusOK, "user_form.html", gin.H{
		"form":  validation.UserForm{Role: string(models.RoleEmployee)},
		"roles": assignableRoles,
	})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var form validation.UserForm
	_ = c.ShouldBind(&form)

	created, err := h.svc.CreateUser(c.Request.Context(), middleware.CurrentIdentity(c), form)
	if err != nil {
		errs, msg := formError(c, err)
		form.Password = ""
		render(c, statusFor(err), "user_form.html", gin.H{"form": form, "errors": errs, "error": msg, "roles": assignableRoles})
		return
	}

	if created.Password == "" {
		flash(c, "User "+created.User.Username+" created")
		c.Redirect(http.StatusFound, "/users")
		return
	}
	render(c, http.StatusOK, "credentials.html", gin.H{
		"title":    "User created",
		"user":     created.User,
		"password": created.Password,
		"back":     "/users",
	})
}

func (h *Handler) ShowEditUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "user_form.html", gin.H{
		"user": user,
		"form": validation.UserForm{
			Username: user.Username,
			Email:    user.Email,
			Phone:    user.Phone,
			FullName: user.FullName,
			Role:     string(user.Role),
		},
		"roles": assignableRoles,
	})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form validation.UserForm
	_ = c.ShouldBind(&form)

	if _, err := h.svc.UpdateUser(c.Request.Context(), middleware.CurrentIdentity(c), id, form); err != nil {
		user, getErr := h.svc.GetUser(c.Request.Context(), id)
		if getErr != nil {
			fail(c, getErr)
			return
		}
		errs, msg := formError(c, err)
		form.Password = ""
		render(c, statusFor(err), "user_form.html", gin.H{"user": user, "form": form, "errors": errs, "error": msg, "roles": assignableRoles})
		return
	}

	flash(c, "User updated")
	c.Redirect(http.StatusFound, "/users")
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		flashError(c, err)
	} else {
		flash(c, "User deleted")
	}
	c.Redirect(http.StatusFound, "/users")
}

func (h *Handler) ToggleUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.svc.ToggleUserStatus(c.Request.Context(), middleware.CurrentIdentity(c), id)
	if err != nil {
		flashError(c, err)
	} else {
		flash(c, user.Username+" is now "+string(user.Status))
	}
	c.Redirect(http.StatusFound, "/users")
}

func (h *Handler) ResetPassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	password, err := h.svc.ResetPassword(ctx, middleware.CurrentIdentity(c), id)
	if err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, "/users")
		return
	}
	user, err := h.svc.GetUser(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "credentials.html", gin.H{
		"title":    "Password reset",
		"user":     user,
		"password": password,
		"back":     "/users",
	})
}
