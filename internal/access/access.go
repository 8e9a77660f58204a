// Package access is the page-level permission table.
package access

import "hr-portal/internal/models"

type Page string

const (
	PageDashboard          Page = "dashboard"
	PageCandidates         Page = "candidates"
	PageInterviews         Page = "interviews"
	PageInterviewForm      Page = "interview_form"
	PagePositions          Page = "positions"
	PageUsers              Page = "users"
	PageUserAdmin          Page = "user_admin"
	PageAudit              Page = "audit"
	PageEmployeeHome       Page = "employee"
	PageEmployeeProfile    Page = "employee_profile"
	PageEmployeeInterviews Page = "employee_interviews"
	PageCV                 Page = "cv"
	PageAccount            Page = "account"
)

type Outcome int

const (
	Allow Outcome = iota
	// Login sends the visitor to the sign-in page.
	Login
	// Unauthorized sends a signed-in user to the unauthorized page.
	Unauthorized
)

var pages = map[Page][]models.UserRole{
	PageDashboard:          {models.RoleAdmin},
	PageCandidates:         {models.RoleHR, models.RoleAdmin},
	PageInterviews:         {models.RoleHR, models.RoleAdmin},
	PageInterviewForm:      {models.RoleHR, models.RoleAdmin, models.RoleEmployee},
	PagePositions:          {models.RoleHR, models.RoleAdmin},
	PageUsers:              {models.RoleAdmin, models.RoleHR},
	PageUserAdmin:          {models.RoleAdmin},
	PageAudit:              {models.RoleAdmin},
	PageEmployeeHome:       {models.RoleEmployee},
	PageEmployeeProfile:    {models.RoleEmployee},
	PageEmployeeInterviews: {models.RoleEmployee},
	PageCV:                 {models.RoleHR, models.RoleAdmin},
	PageAccount:            {models.RoleAdmin, models.RoleHR, models.RoleEmployee},
}

// Decide evaluates role against the allow-list of page.
// Guests always go to login; unknown pages allow nobody.
func Decide(role models.UserRole, page Page) Outcome {
	if role == models.RoleGuest || role == "" {
		return Login
	}
	if Allowed(role, page) {
		return Allow
	}
	return Unauthorized
}

func Allowed(role models.UserRole, page Page) bool {
	for _, r := range pages[page] {
		if r == role {
			return true
		}
	}
	return false
}

// AllowList returns a copy of the roles admitted to page.
func AllowList(page Page) []models.UserRole {
	return append([]models.UserRole(nil), pages[page]...)
}

// Pages lists every page with a declared allow-list.
func Pages() []Page {
	out := make([]Page, 0, len(pages))
	for p := range pages {
		out = append(out, p)
	}
	return out
}

// HomePath is where a user lands after sign-in.
func HomePath(role models.UserRole) string {
	switch role {
	case models.RoleAdmin:
		return "/dashboard"
	case models.RoleHR:
		return "/candidates"
	case models.RoleEmployee:
		return "/employee"
	}
	return "/login"
}
