package validation

import "strings"

// CandidateForm is the public application form.
type CandidateForm struct {
	FullName   string `form:"full_name" validate:"min=2,max=255"`
	Email      string `form:"email" validate:"required,email,max=255"`
	Phone      string `form:"phone" validate:"phone"`
	PositionID uint   `form:"applied_position_id" validate:"required"`
}

func (CandidateForm) messages() map[string]string {
	return map[string]string{
		"full_name":           "Full name must be 2-255 characters",
		"email":               "Invalid email",
		"phone":               "Phone number must be 9-12 digits",
		"applied_position_id": "Please select a position",
	}
}

// Normalized trims the text fields and lowercases the email.
func (f CandidateForm) Normalized() CandidateForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	return f
}

type InterviewForm struct {
	TechNotes string `form:"tech_notes" validate:"min=10"`
	SoftNotes string `form:"soft_notes" validate:"min=10"`
	Result    string `form:"result" validate:"oneof=PASS FAIL PENDING"`
}

func (InterviewForm) messages() map[string]string {
	return map[string]string{
		"tech_notes": "Technical notes must be at least 10 characters",
		"soft_notes": "Soft-skill notes must be at least 10 characters",
		"result":     "Invalid result",
	}
}

type DecisionForm struct {
	Verdict string `form:"decision" validate:"oneof=HIRE NO_HIRE"`
	Notes   string `form:"decision_notes" validate:"min=10"`
}

func (DecisionForm) messages() map[string]string {
	return map[string]string{
		"decision":       "Invalid decision",
		"decision_notes": "Notes must be at least 10 characters",
	}
}

type EmployeeForm struct {
	Residence  string `form:"place_of_residence" validate:"min=5"`
	Hometown   string `form:"hometown" validate:"min=5"`
	NationalID string `form:"national_id" validate:"nationalid"`
}

func (EmployeeForm) messages() map[string]string {
	return map[string]string{
		"place_of_residence": "Place of residence must be at least 5 characters",
		"hometown":           "Hometown must be at least 5 characters",
		"national_id":        "National ID must be exactly 12 digits",
	}
}

// UserForm is used by admins to create and edit accounts.
type UserForm struct {
	Username string `form:"username" validate:"min=3,max=50"`
	Email    string `form:"email" validate:"required,email,max=255"`
	Phone    string `form:"phone" validate:"phone"`
	FullName string `form:"full_name" validate:"min=2,max=255"`
	Role     string `form:"role" validate:"oneof=ADMIN HR EMPLOYEE"`
	// Password is optional; an empty one is generated.
	Password string `form:"password" validate:"omitempty,min=6"`
}

func (UserForm) messages() map[string]string {
	return map[string]string{
		"username":  "Username must be 3-50 characters",
		"email":     "Invalid email",
		"phone":     "Phone number must be 9-12 digits",
		"full_name": "Full name must be 2-255 characters",
		"role":      "Invalid role",
		"password":  "Password must be at least 6 characters",
	}
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"min=6"`
}

func (LoginForm) messages() map[string]string {
	return map[string]string{
		"email":    "Invalid email",
		"password": "Password must be at least 6 characters",
	}
}

type PasswordForm struct {
	Current string `form:"current_password" validate:"required"`
	New     string `form:"new_password" validate:"min=6"`
	Confirm string `form:"confirm_password" validate:"eqfield=New"`
}

func (PasswordForm) messages() map[string]string {
	return map[string]string{
		"current_password": "Please enter your current password",
		"new_password":     "Password must be at least 6 characters",
		"confirm_password": "Passwords do not match",
	}
}

type SessionForm struct {
	Title          string `form:"title" validate:"min=3"`
	ScheduledAt    string `form:"scheduled_date" validate:"omitempty,datetime=2006-01-02T15:04"`
	InterviewerIDs []uint `form:"interviewer_ids" validate:"min=1,unique"`
}

func (SessionForm) messages() map[string]string {
	return map[string]string{
		"title":           "Title must be at least 3 characters",
		"scheduled_date":  "Invalid date",
		"interviewer_ids": "Please select at least one interviewer",
	}
}

type PositionForm struct {
	Title       string `form:"title" validate:"min=2"`
	Department  string `form:"department" validate:"required"`
	Description string `form:"description"`
}

func (PositionForm) messages() map[string]string {
	return map[string]string{
		"title":      "Title must be at least 2 characters",
		"department": "Please enter a department",
	}
}
