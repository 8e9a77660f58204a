package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestIsNationalID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"012345678901", true},
		{"01234567890", false},
		{"0123456789012", false},
		{"01234567890a", false},
		{"0123 5678901", false},
		{"", false},
		{"０１２３４５６７８９０１", false},
	}
	for _, tc := range cases {
		if got := IsNationalID(tc.in); got != tc.want {
			t.Errorf("IsNationalID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsPhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"12345678", false},
		{"123456789", true},
		{"0912345678", true},
		{"012345678901", true},
		{"0123456789012", false},
		{"+84912345678", false},
		{"09123-4567", false},
	}
	for _, tc := range cases {
		if got := IsPhone(tc.in); got != tc.want {
			t.Errorf("IsPhone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCheckCandidateForm(t *testing.T) {
	t.Parallel()

	ok := CandidateForm{FullName: "Lê Văn A", Email: "a@example.com", Phone: "0912345678", PositionID: 1}
	if err := Check(ok); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}

	bad := CandidateForm{FullName: "L", Email: "nope", Phone: "12", PositionID: 0}
	err := Check(bad)

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %T (%v)", err, err)
	}
	for _, field := range []string{"full_name", "email", "phone", "applied_position_id"} {
		if !verrs.Has(field) {
			t.Errorf("expected error for %s, got %v", field, verrs)
		}
	}
}

func TestCheckFullNameCountsRunes(t *testing.T) {
	t.Parallel()

	// two Vietnamese letters are four bytes but two characters
	form := CandidateForm{FullName: "Ấn", Email: "a@example.com", Phone: "0912345678", PositionID: 3}
	if err := Check(form); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestCandidateFormNormalized(t *testing.T) {
	t.Parallel()

	form := CandidateForm{FullName: "  Lê Văn A ", Email: " A@Example.COM ", Phone: " 0912345678\t", PositionID: 1}.Normalized()
	if form.FullName != "Lê Văn A" || form.Email != "a@example.com" || form.Phone != "0912345678" {
		t.Fatalf("unexpected normalized form %+v", form)
	}
	if err := Check(form); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestCheckNameLengthLimits(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("Ă", 256)
	err := Check(CandidateForm{FullName: long, Email: "a@example.com", Phone: "0912345678", PositionID: 1})
	var verrs Errors
	if !errors.As(err, &verrs) || !verrs.Has("full_name") {
		t.Fatalf("expected full_name error, got %v", err)
	}

	err = Check(UserForm{
		Username: strings.Repeat("u", 51),
		Email:    "u@example.com",
		Phone:    "0912345678",
		FullName: "User",
		Role:     "HR",
	})
	if !errors.As(err, &verrs) || !verrs.Has("username") {
		t.Fatalf("expected username error, got %v", err)
	}
}

func TestCheckEmployeeForm(t *testing.T) {
	t.Parallel()

	form := EmployeeForm{Residence: "Ha Noi, Viet Nam", Hometown: "Nam Dinh", NationalID: "123456789012"}
	if err := Check(form); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}

	form.NationalID = "1234567890123"
	err := Check(form)
	var verrs Errors
	if !errors.As(err, &verrs) || !verrs.Has("national_id") {
		t.Fatalf("expected national_id error, got %v", err)
	}
	if len(verrs) != 1 {
		t.Fatalf("expected only national_id to fail, got %v", verrs)
	}
}

func TestCheckSessionForm(t *testing.T) {
	t.Parallel()

	if err := Check(SessionForm{Title: "Round 1", InterviewerIDs: []uint{1, 2}}); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
	if err := Check(SessionForm{Title: "Round 1", ScheduledAt: "2024-05-01T09:30", InterviewerIDs: []uint{4}}); err != nil {
		t.Fatalf("expected valid form with date, got %v", err)
	}

	err := Check(SessionForm{Title: "Round 1"})
	var verrs Errors
	if !errors.As(err, &verrs) || !verrs.Has("interviewer_ids") {
		t.Fatalf("expected interviewer_ids error, got %v", err)
	}

	err = Check(SessionForm{Title: "Round 1", InterviewerIDs: []uint{2, 2}})
	if !errors.As(err, &verrs) || !verrs.Has("interviewer_ids") {
		t.Fatalf("expected duplicate interviewer error, got %v", err)
	}
}

func TestCheckPasswordForm(t *testing.T) {
	t.Parallel()

	err := Check(PasswordForm{Current: "old-secret", New: "secret1", Confirm: "secret2"})
	var verrs Errors
	if !errors.As(err, &verrs) || !verrs.Has("confirm_password") {
		t.Fatalf("expected confirm_password error, got %v", err)
	}
}

func TestCheckCV(t *testing.T) {
	t.Parallel()

	if err := CheckCV("cv.pdf", "application/pdf", 1024); err != nil {
		t.Fatalf("expected pdf accepted, got %v", err)
	}
	if err := CheckCV("cv.docx", "application/octet-stream", 1024); err != nil {
		t.Fatalf("expected docx by extension accepted, got %v", err)
	}
	if err := CheckCV("cv.png", "image/png", 1024); err == nil {
		t.Fatal("expected png rejected")
	}
	if err := CheckCV("cv.pdf", "application/pdf", MaxCVSize+1); err == nil {
		t.Fatal("expected oversize file rejected")
	}
	if err := CheckCV("cv.pdf", "application/pdf", 0); err == nil {
		t.Fatal("expected empty file rejected")
	}
}
