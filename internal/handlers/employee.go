package handlers

import (
	"net/http"

	"hr-portal/internal/middleware"
	"hr-portal/internal/models"
	"hr-portal/internal/validation"

	"github.com/gin-gonic/gin"
)

// EmployeeHome shows the signed-in employee's profile and pending interviews.
func (h *Handler) EmployeeHome(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.CurrentIdentity(c)

	emp, err := h.svc.EnsureProfile(ctx, actor)
	if err != nil {
		fail(c, err)
		return
	}
	pending, err := h.svc.MyInterviews(ctx, actor, models.ResultPending)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "employee_home.html", gin.H{"employee": emp, "pending": pending})
}

func (h *Handler) ShowProfile(c *gin.Context) {
	emp, err := h.svc.EnsureProfile(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "employee_profile.html", gin.H{
		"employee": emp,
		"form": validation.EmployeeForm{
			Residence:  emp.Residence,
			Hometown:   emp.Hometown,
			NationalID: emp.NationalID,
		},
	})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.CurrentIdentity(c)

	var form validation.EmployeeForm
	_ = c.ShouldBind(&form)

	if _, err := h.svc.UpdateProfile(ctx, actor, form); err != nil {
		emp, getErr := h.svc.EnsureProfile(ctx, actor)
		if getErr != nil {
			fail(c, getErr)
			return
		}
		errs, msg := formError(c, err)
		render(c, statusFor(err), "employee_profile.html", gin.H{"employee": emp, "form": form, "errors": errs, "error": msg})
		return
	}

	flash(c, "Profile saved")
	c.Redirect(http.StatusFound, "/employee/profile")
}

// MyInterviews lists the interviews assigned to the employee.
func (h *Handler) MyInterviews(c *gin.Context) {
	result := models.InterviewResult(c.Query("result"))
	if !result.Valid() {
		result = ""
	}
	interviews, err := h.svc.MyInterviews(c.Request.Context(), middleware.CurrentIdentity(c), result)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "employee_interviews.html", gin.H{
		"interviews":   interviews,
		"FilterResult": string(result),
		"results":      []models.InterviewResult{models.ResultPending, models.ResultPass, models.ResultFail},
	})
}
