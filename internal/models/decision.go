package models

import "time"

type Verdict string

const (
	VerdictHire   Verdict = "HIRE"
	VerdictNoHire Verdict = "NO_HIRE"
)

func (v Verdict) Valid() bool {
	return v == VerdictHire || v == VerdictNoHire
}

type Decision struct {
	ID uint `gorm:"primaryKey"`

	CandidateID uint
	Candidate   *Candidate

	DecidedByID uint
	Decider     *User `gorm:"foreignKey:DecidedByID"`

	Verdict   Verdict `gorm:"type:varchar(20);not null"`
	Notes     string  `gorm:"type:text"`
	DecidedAt time.Time
}
