package workflow

import (
	"errors"
	"testing"

	"hr-portal/internal/models"
)

func TestApplyLegalTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from models.CandidateStatus
		ev   Event
		want models.CandidateStatus
	}{
		{models.CandidateSubmitted, EventApprove, models.CandidateApproved},
		{models.CandidateSubmitted, EventReject, models.CandidateRejected},
		{models.CandidateApproved, EventStartInterview, models.CandidateInterview},
		{models.CandidateApproved, EventOffer, models.CandidateOffered},
		{models.CandidateApproved, EventDecline, models.CandidateNotHired},
		{models.CandidateInterview, EventOffer, models.CandidateOffered},
		{models.CandidateInterview, EventDecline, models.CandidateNotHired},
		{models.CandidateOffered, EventHire, models.CandidateHired},
	}

	for _, tc := range cases {
		got, err := Apply(tc.from, tc.ev)
		if err != nil {
			t.Fatalf("Apply(%s, %s) error: %v", tc.from, tc.ev, err)
		}
		if got != tc.want {
			t.Fatalf("Apply(%s, %s) = %s, want %s", tc.from, tc.ev, got, tc.want)
		}
		if !got.Valid() {
			t.Fatalf("Apply produced invalid status %q", got)
		}
	}
}

func TestApplyIllegalTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from models.CandidateStatus
		ev   Event
	}{
		{models.CandidateSubmitted, EventStartInterview},
		{models.CandidateSubmitted, EventHire},
		{models.CandidateApproved, EventApprove},
		{models.CandidateInterview, EventHire},
		{models.CandidateOffered, EventDecline},
		{models.CandidateRejected, EventApprove},
		{models.CandidateNotHired, EventOffer},
		{models.CandidateHired, EventHire},
	}

	for _, tc := range cases {
		got, err := Apply(tc.from, tc.ev)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("Apply(%s, %s) expected ErrIllegalTransition, got %v", tc.from, tc.ev, err)
		}
		var terr *TransitionError
		if !errors.As(err, &terr) || terr.From != tc.from || terr.Event != tc.ev {
			t.Fatalf("expected TransitionError{%s,%s}, got %#v", tc.from, tc.ev, err)
		}
		if got != tc.from {
			t.Fatalf("illegal transition must keep status, got %s", got)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	t.Parallel()

	for _, s := range models.CandidateStatuses {
		want := s == models.CandidateRejected || s == models.CandidateNotHired || s == models.CandidateHired
		if got := Terminal(s); got != want {
			t.Errorf("Terminal(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestEveryReachableStatusIsValid(t *testing.T) {
	t.Parallel()

	seen := map[models.CandidateStatus]bool{models.CandidateSubmitted: true}
	queue := []models.CandidateStatus{models.CandidateSubmitted}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ev := range Available(cur) {
			next, err := Apply(cur, ev)
			if err != nil {
				t.Fatalf("Available returned %s for %s but Apply failed: %v", ev, cur, err)
			}
			if !next.Valid() {
				t.Fatalf("reached invalid status %q", next)
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	if len(seen) != len(models.CandidateStatuses) {
		t.Fatalf("expected all %d statuses reachable, got %v", len(models.CandidateStatuses), seen)
	}
}

func TestEventForVerdict(t *testing.T) {
	t.Parallel()

	if ev, err := EventForVerdict(models.VerdictHire); err != nil || ev != EventOffer {
		t.Fatalf("HIRE -> %s, %v", ev, err)
	}
	if ev, err := EventForVerdict(models.VerdictNoHire); err != nil || ev != EventDecline {
		t.Fatalf("NO_HIRE -> %s, %v", ev, err)
	}
	if _, err := EventForVerdict("MAYBE"); err == nil {
		t.Fatal("expected error for unknown verdict")
	}
}
