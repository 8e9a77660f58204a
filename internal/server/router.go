package server

import (
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	"hr-portal/internal/access"
	"hr-portal/internal/config"
	"hr-portal/internal/handlers"
	"hr-portal/internal/middleware"
	"hr-portal/internal/models"
	"hr-portal/internal/service"
	"hr-portal/internal/validation"
	"hr-portal/internal/workflow"
	"hr-portal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func maskEmail(email string) string {
	runes := []rune(email)
	atIdx := -1
	for i, r := range runes {
		if r == '@' {
			atIdx = i
			break
		}
	}
	if atIdx <= 0 {
		return "***"
	}
	if atIdx <= 2 {
		return string(runes[:atIdx]) + "***" + string(runes[atIdx:])
	}
	return string(runes[0:2]) + "***" + string(runes[atIdx:])
}

func maskPhone(phone string) string {
	runes := []rune(phone)
	n := len(runes)
	if n <= 4 {
		return "***"
	}
	return strings.Repeat("*", n-3) + string(runes[n-3:])
}

func formatTime(v any) string {
	switch t := v.(type) {
	case time.Time:
		if !t.IsZero() {
			return t.Local().Format("2006-01-02 15:04")
		}
	case *time.Time:
		if t != nil && !t.IsZero() {
			return t.Local().Format("2006-01-02 15:04")
		}
	}
	return "-"
}

// formatPayload renders an audit payload as sorted key=value pairs.
func formatPayload(p map[string]any) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, p[k]))
	}
	return strings.Join(parts, ", ")
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"maskEmail": maskEmail,
		"maskPhone": maskPhone,
		"fmtTime":   formatTime,
		"payload":   formatPayload,
		"can": func(s models.CandidateStatus, ev string) bool {
			return workflow.Can(s, workflow.Event(ev))
		},
		"fieldError": func(errs validation.Errors, field string) string {
			return errs[field]
		},
	}
}

// NewRouter wires every page of the portal behind its role gate.
func NewRouter(cfg *config.Config, svc *service.Service) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = validation.MaxCVSize + 1<<20

	tmpl := template.Must(template.New("").Funcs(templateFuncs()).ParseFS(web.Templates, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 8 * 3600, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("hr_session", store))

	r.Use(middleware.InjectIdentity(svc, service.ErrInvalidCredentials))

	h := handlers.New(svc, cfg.UploadDir)
	page := middleware.RequirePage

	// public
	r.GET("/", h.Index)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/unauthorized", h.Unauthorized)
	r.GET("/apply", h.ShowApply)
	r.POST("/apply", h.Apply)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/dashboard", page(access.PageDashboard), h.Dashboard)

	// candidates
	auth.GET("/candidates", page(access.PageCandidates), h.ListCandidates)
	auth.POST("/candidates/bulk", page(access.PageCandidates), h.BulkCandidates)
	auth.GET("/candidates/:id", page(access.PageCandidates), h.ShowCandidate)
	auth.POST("/candidates/:id/approve", page(access.PageCandidates), h.ApproveCandidate)
	auth.POST("/candidates/:id/reject", page(access.PageCandidates), h.RejectCandidate)
	auth.POST("/candidates/:id/sessions", page(access.PageCandidates), h.CreateSession)
	auth.POST("/candidates/:id/decision", page(access.PageCandidates), h.RecordDecision)
	auth.POST("/candidates/:id/hire", page(access.PageCandidates), h.HireCandidate)
	auth.GET("/cv/:name", page(access.PageCV), h.ServeCV)

	// interviews
	auth.GET("/interviews", page(access.PageInterviews), h.ListInterviews)
	auth.POST("/sessions/:id/cancel", page(access.PageInterviews), h.CancelSession)
	auth.GET("/interviews/:id/edit", page(access.PageInterviewForm), h.ShowInterviewForm)
	auth.POST("/interviews/:id/edit", page(access.PageInterviewForm), h.UpdateInterview)

	auth.GET("/positions", page(access.PagePositions), h.ListPositions)
	auth.POST("/positions", page(access.PagePositions), h.CreatePosition)
	auth.POST("/positions/:id/toggle", page(access.PagePositions), h.TogglePosition)

	// users: HR may look, only admins change anything
	auth.GET("/users", page(access.PageUsers), h.ListUsers)
	admin := auth.Group("/users")
	admin.Use(page(access.PageUserAdmin))
	admin.GET("/new", h.ShowNewUser)
	admin.POST("/new", h.CreateUser)
	admin.GET("/:id/edit", h.ShowEditUser)
	admin.POST("/:id/edit", h.UpdateUser)
	admin.POST("/:id/delete", h.DeleteUser)
	admin.POST("/:id/toggle", h.ToggleUser)
	admin.POST("/:id/reset-password", h.ResetPassword)

	auth.GET("/audit", page(access.PageAudit), h.ListAuditLogs)

	// employee self-service
	auth.GET("/employee", page(access.PageEmployeeHome), h.EmployeeHome)
	auth.GET("/employee/profile", page(access.PageEmployeeProfile), h.ShowProfile)
	auth.POST("/employee/profile", page(access.PageEmployeeProfile), h.UpdateProfile)
	auth.GET("/employee/interviews", page(access.PageEmployeeInterviews), h.MyInterviews)

	auth.GET("/account/password", page(access.PageAccount), h.ShowChangePassword)
	auth.POST("/account/password", page(access.PageAccount), h.ChangePassword)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
