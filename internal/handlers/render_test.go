package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hr-portal/internal/database"
	"hr-portal/internal/models"
	"hr-portal/internal/service"
	"hr-portal/internal/validation"
	"hr-portal/internal/workflow"
)

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{fmt.Errorf("%w: users.email", database.ErrDuplicate), http.StatusConflict, msgDuplicate},
		{database.ErrNotFound, http.StatusNotFound, "Record not found"},
		{service.ErrForbidden, http.StatusForbidden, "You are not allowed to do this"},
		{&workflow.TransitionError{From: models.CandidateHired, Event: workflow.EventApprove}, http.StatusConflict,
			"Not allowed: cannot approve a candidate in status HIRED"},
		{validation.Errors{"email": "Invalid email"}, http.StatusBadRequest, msgGeneric},
		{errors.New("connection reset"), http.StatusInternalServerError, msgGeneric},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.status {
			t.Errorf("statusFor(%v) = %d, want %d", tc.err, got, tc.status)
		}
		if got := userMessage(tc.err); got != tc.msg {
			t.Errorf("userMessage(%v) = %q, want %q", tc.err, got, tc.msg)
		}
	}
}
