package models

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleHR       UserRole = "HR"
	RoleEmployee UserRole = "EMPLOYEE"
	// RoleGuest is never stored; it stands for a visitor without a session.
	RoleGuest UserRole = "GUEST"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserDisabled UserStatus = "DISABLED"
)

type User struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Username     string     `gorm:"uniqueIndex;size:50;not null"`
	Email        string     `gorm:"uniqueIndex;size:255;not null"`
	Phone        string     `gorm:"size:20"`
	FullName     string     `gorm:"size:255;not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:ACTIVE"`
	PasswordHash string     `gorm:"not null"`

	Employee *Employee
}

func (u User) IsActive() bool {
	return u.Status == UserActive
}
