// Package workflow is the candidate pipeline state machine. A candidate's
// status only changes through the named events below; Apply refuses any
// event that is not defined for the current status.
package workflow

import (
	"errors"
	"fmt"

	"hr-portal/internal/models"
)

type Event string

const (
	EventApprove        Event = "approve"
	EventReject         Event = "reject"
	EventStartInterview Event = "start_interview"
	EventOffer          Event = "offer"
	EventDecline        Event = "decline"
	EventHire           Event = "hire"
)

// ErrIllegalTransition is matched by every *TransitionError.
var ErrIllegalTransition = errors.New("illegal candidate status transition")

type TransitionError struct {
	From  models.CandidateStatus
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a candidate in status %s", e.Event, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

type edge struct {
	from  models.CandidateStatus
	event Event
}

var transitions = map[edge]models.CandidateStatus{
	{models.CandidateSubmitted, EventApprove}:       models.CandidateApproved,
	{models.CandidateSubmitted, EventReject}:        models.CandidateRejected,
	{models.CandidateApproved, EventStartInterview}: models.CandidateInterview,
	{models.CandidateApproved, EventOffer}:          models.CandidateOffered,
	{models.CandidateApproved, EventDecline}:        models.CandidateNotHired,
	{models.CandidateInterview, EventOffer}:         models.CandidateOffered,
	{models.CandidateInterview, EventDecline}:       models.CandidateNotHired,
	{models.CandidateOffered, EventHire}:            models.CandidateHired,
}

// Apply returns the status reached by firing ev in status from.
func Apply(from models.CandidateStatus, ev Event) (models.CandidateStatus, error) {
	next, ok := transitions[edge{from, ev}]
	if !ok {
		return from, &TransitionError{From: from, Event: ev}
	}
	return next, nil
}

// Can reports whether ev is allowed in status from.
func Can(from models.CandidateStatus, ev Event) bool {
	_, ok := transitions[edge{from, ev}]
	return ok
}

// Available lists the events that may fire in status from, in a stable order.
func Available(from models.CandidateStatus) []Event {
	var out []Event
	for _, ev := range []Event{EventApprove, EventReject, EventStartInterview, EventOffer, EventDecline, EventHire} {
		if Can(from, ev) {
			out = append(out, ev)
		}
	}
	return out
}

// Terminal reports whether no event can leave status s.
func Terminal(s models.CandidateStatus) bool {
	return len(Available(s)) == 0
}

// EventForVerdict maps a hiring decision to the event it fires.
func EventForVerdict(v models.Verdict) (Event, error) {
	switch v {
	case models.VerdictHire:
		return EventOffer, nil
	case models.VerdictNoHire:
		return EventDecline, nil
	}
	return "", fmt.Errorf("unknown verdict %q", v)
}

// ParseEvent accepts the event names used by bulk actions.
func ParseEvent(s string) (Event, bool) {
	switch ev := Event(s); ev {
	case EventApprove, EventReject, EventStartInterview, EventOffer, EventDecline, EventHire:
		return ev, true
	}
	return "", false
}
