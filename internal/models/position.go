package models

import "gorm.io/gorm"

type Position struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Department  string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	IsOpen      bool   `gorm:"not null;default:true"`
}
