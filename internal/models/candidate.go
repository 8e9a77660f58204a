package models

import "gorm.io/gorm"

type CandidateStatus string

const (
	CandidateSubmitted CandidateStatus = "SUBMITTED"
	CandidateApproved  CandidateStatus = "APPROVED"
	CandidateRejected  CandidateStatus = "REJECTED"
	CandidateInterview CandidateStatus = "INTERVIEW"
	CandidateOffered   CandidateStatus = "OFFERED"
	CandidateHired     CandidateStatus = "HIRED"
	CandidateNotHired  CandidateStatus = "NOT_HIRED"
)

// CandidateStatuses lists every pipeline state in display order.
var CandidateStatuses = []CandidateStatus{
	CandidateSubmitted,
	CandidateApproved,
	CandidateRejected,
	CandidateInterview,
	CandidateOffered,
	CandidateHired,
	CandidateNotHired,
}

func (s CandidateStatus) Valid() bool {
	for _, v := range CandidateStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Candidate struct {
	gorm.Model
	FullName string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255;not null;index"`
	Phone    string `gorm:"size:20"`
	CVURL    string `gorm:"size:512"`

	AppliedPositionID uint
	Position          *Position `gorm:"foreignKey:AppliedPositionID"`

	Status CandidateStatus `gorm:"type:varchar(20);not null;index"`

	Interviews []Interview
	Decisions  []Decision
	Sessions   []InterviewSession
}
