package models

import (
	"time"

	"gorm.io/gorm"
)

type InterviewResult string

const (
	ResultPass    InterviewResult = "PASS"
	ResultFail    InterviewResult = "FAIL"
	ResultPending InterviewResult = "PENDING"
)

func (r InterviewResult) Valid() bool {
	switch r {
	case ResultPass, ResultFail, ResultPending:
		return true
	}
	return false
}

// Interview is one interviewer's scorecard for a candidate.
type Interview struct {
	gorm.Model
	CandidateID uint
	Candidate   *Candidate

	InterviewerID uint
	Interviewer   *User `gorm:"foreignKey:InterviewerID"`

	SessionID *uint `gorm:"index"`

	TechNotes string          `gorm:"type:text"`
	SoftNotes string          `gorm:"type:text"`
	Result    InterviewResult `gorm:"type:varchar(20);not null"`
}

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "SCHEDULED"
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
	SessionCancelled  SessionStatus = "CANCELLED"
)

// InterviewSession groups the interviews a candidate has with several interviewers.
type InterviewSession struct {
	gorm.Model
	CandidateID uint
	Candidate   *Candidate

	Title       string `gorm:"size:255;not null"`
	ScheduledAt *time.Time
	Status      SessionStatus `gorm:"type:varchar(20);not null"`

	CreatedByID uint
	Creator     *User `gorm:"foreignKey:CreatedByID"`

	Interviews []Interview `gorm:"foreignKey:SessionID"`
}
