package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is a school administrator allowed to publish internships.
type Admin struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	SchoolName   string    `json:"school_name" gorm:"type:text;not null"`
	Email        string    `json:"email" gorm:"type:text;not null"`
	AuthToken    string    `json:"-" gorm:"uniqueIndex;size:64;not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
