package models

import "gorm.io/gorm"

// Employee holds the personal data of a user with the EMPLOYEE role.
type Employee struct {
	gorm.Model
	UserID uint  `gorm:"uniqueIndex;not null"`
	User   *User

	CandidateID *uint
	Candidate   *Candidate

	Residence  string `gorm:"size:255"`
	Hometown   string `gorm:"size:255"`
	NationalID string `gorm:"size:12"`
}
