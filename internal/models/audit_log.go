package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	// ActorID is nil for anonymous actions such as a public application.
	ActorID *uint
	Actor   *User `gorm:"foreignKey:ActorID;constraint:OnDelete:SET NULL"`

	Action     string `gorm:"size:50;not null"` // "create", "approve", "decision", ...
	TargetType string `gorm:"size:50;not null;index:idx_audit_target"`
	TargetID   uint   `gorm:"index:idx_audit_target"`
	Payload    datatypes.JSONMap
}
