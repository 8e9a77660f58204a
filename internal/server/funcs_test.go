package server

import (
	"testing"
	"time"
)

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"nguyenvanan@example.com": "ng***@example.com",
		"ab@example.com":          "ab***@example.com",
		"broken":                  "***",
	}
	for in, want := range cases {
		if got := maskEmail(in); got != want {
			t.Errorf("maskEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	if got := maskPhone("0912345678"); got != "*******678" {
		t.Fatalf("maskPhone = %q", got)
	}
	if got := maskPhone("123"); got != "***" {
		t.Fatalf("maskPhone short = %q", got)
	}
}

func TestFormatPayloadAndTime(t *testing.T) {
	t.Parallel()

	got := formatPayload(map[string]any{"to": "APPROVED", "from": "SUBMITTED"})
	if got != "from=SUBMITTED, to=APPROVED" {
		t.Fatalf("formatPayload = %q", got)
	}

	var nilTime *time.Time
	if formatTime(nilTime) != "-" || formatTime(time.Time{}) != "-" {
		t.Fatal("zero times should render as -")
	}
}
