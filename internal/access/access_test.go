package access

import (
	"testing"

	"hr-portal/internal/models"
)

func TestDecideMatchesAllowList(t *testing.T) {
	t.Parallel()

	roles := []models.UserRole{models.RoleAdmin, models.RoleHR, models.RoleEmployee}
	for _, page := range Pages() {
		allowed := map[models.UserRole]bool{}
		for _, r := range AllowList(page) {
			allowed[r] = true
		}
		for _, role := range roles {
			got := Decide(role, page)
			if allowed[role] && got != Allow {
				t.Errorf("Decide(%s, %s) = %v, want Allow", role, page, got)
			}
			if !allowed[role] && got != Unauthorized {
				t.Errorf("Decide(%s, %s) = %v, want Unauthorized", role, page, got)
			}
		}
	}
}

func TestGuestAlwaysGoesToLogin(t *testing.T) {
	t.Parallel()

	for _, page := range append(Pages(), Page("no_such_page")) {
		if got := Decide(models.RoleGuest, page); got != Login {
			t.Errorf("Decide(GUEST, %s) = %v, want Login", page, got)
		}
		if got := Decide("", page); got != Login {
			t.Errorf("Decide(empty, %s) = %v, want Login", page, got)
		}
	}
}

func TestSpecificPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role models.UserRole
		page Page
		want Outcome
	}{
		{models.RoleAdmin, PageDashboard, Allow},
		{models.RoleHR, PageDashboard, Unauthorized},
		{models.RoleHR, PageCandidates, Allow},
		{models.RoleEmployee, PageCandidates, Unauthorized},
		{models.RoleEmployee, PageEmployeeProfile, Allow},
		{models.RoleAdmin, PageEmployeeProfile, Unauthorized},
		{models.RoleHR, PageUsers, Allow},
		{models.RoleHR, PageUserAdmin, Unauthorized},
		{models.RoleEmployee, PageInterviewForm, Allow},
		{models.RoleEmployee, PageInterviews, Unauthorized},
		{models.RoleAdmin, Page("no_such_page"), Unauthorized},
	}
	for _, tc := range cases {
		if got := Decide(tc.role, tc.page); got != tc.want {
			t.Errorf("Decide(%s, %s) = %v, want %v", tc.role, tc.page, got, tc.want)
		}
	}
}

func TestHomePath(t *testing.T) {
	t.Parallel()

	if HomePath(models.RoleAdmin) != "/dashboard" || HomePath(models.RoleHR) != "/candidates" ||
		HomePath(models.RoleEmployee) != "/employee" || HomePath(models.RoleGuest) != "/login" {
		t.Fatal("unexpected home paths")
	}
}

func TestAllowListIsACopy(t *testing.T) {
	t.Parallel()

	list := AllowList(PageDashboard)
	list[0] = models.RoleEmployee
	if Allowed(models.RoleEmployee, PageDashboard) {
		t.Fatal("mutating AllowList result changed the table")
	}
}
