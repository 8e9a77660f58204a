package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hr-portal/internal/access"
	"hr-portal/internal/database"
	"hr-portal/internal/middleware"
	"hr-portal/internal/service"
	"hr-portal/internal/validation"
	"hr-portal/internal/workflow"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	msgDuplicate = "Email or username already exists"
	msgGeneric   = "Something went wrong, please try again"

	flashErrorKey = "error"
)

// Handler serves the portal pages.
type Handler struct {
	svc       *service.Service
	uploadDir string
}

func New(svc *service.Service, uploadDir string) *Handler {
	return &Handler{svc: svc, uploadDir: uploadDir}
}

// render wraps c.HTML and passes the current user, the pages they may open
// and pending flash messages to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	id := middleware.CurrentIdentity(c)
	if !id.IsGuest() {
		data["CurrentUser"] = id.User
		data["CurrentUsername"] = id.User.Username
		data["CurrentUserRole"] = id.Role()

		nav := map[string]bool{}
		for _, p := range access.Pages() {
			nav[string(p)] = access.Allowed(id.Role(), p)
		}
		data["Nav"] = nav
	}

	sess := sessions.Default(c)
	data["Flashes"] = sess.Flashes()
	data["FlashErrors"] = sess.Flashes(flashErrorKey)
	_ = sess.Save()

	c.HTML(status, tmpl, data)
}

func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

// flashError queues the user-facing text of err for the next page.
func flashError(c *gin.Context, err error) {
	logUnexpected(c, err)
	sess := sessions.Default(c)
	sess.AddFlash(userMessage(err), flashErrorKey)
	_ = sess.Save()
}

func userMessage(err error) string {
	var te *workflow.TransitionError
	switch {
	case errors.Is(err, database.ErrDuplicate):
		return msgDuplicate
	case errors.As(err, &te):
		return "Not allowed: " + te.Error()
	case errors.Is(err, database.ErrInUse):
		return "The record is still referenced and cannot be removed"
	case errors.Is(err, database.ErrNotFound):
		return "Record not found"
	case errors.Is(err, service.ErrSessionClosed):
		return "The interview session is already completed or cancelled"
	case errors.Is(err, service.ErrForbidden):
		return "You are not allowed to do this"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	}
	return msgGeneric
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, workflow.ErrIllegalTransition),
		errors.Is(err, service.ErrSessionClosed),
		errors.Is(err, database.ErrDuplicate),
		errors.Is(err, database.ErrInUse):
		return http.StatusConflict
	}
	var verr validation.Errors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func logUnexpected(c *gin.Context, err error) {
	if statusFor(err) == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
}

// fail renders the error page for err.
func fail(c *gin.Context, err error) {
	logUnexpected(c, err)
	status := statusFor(err)
	render(c, status, "error.html", gin.H{"status": status, "error": userMessage(err)})
}

// formError splits err into inline field errors and a banner message.
func formError(c *gin.Context, err error) (validation.Errors, string) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		return verr, ""
	}
	logUnexpected(c, err)
	return nil, userMessage(err)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		render(c, http.StatusNotFound, "error.html", gin.H{"status": http.StatusNotFound, "error": "Record not found"})
		return 0, false
	}
	return uint(id), true
}
