package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryMaxLen bounds categories; the column is indexed.
const CategoryMaxLen = 128

// Internship is a catalog entry published by an admin.
type Internship struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	Organization string    `json:"organization" gorm:"type:text"`
	URL          string    `json:"Url" gorm:"column:url;type:text"`
	Contact      string    `json:"contact" gorm:"type:text"`
	Deadline     string    `json:"deadline" gorm:"type:text"`
	Category     string    `json:"category" gorm:"size:128;index"`
	Location     string    `json:"location" gorm:"type:text"`
	Description  string    `json:"description" gorm:"type:text"`
	CreatorID    string    `json:"creatorId" gorm:"column:creator_id;size:150;not null;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Internship) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
