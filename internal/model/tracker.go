package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTrackerStatus is used when a tracker is created without a status.
const DefaultTrackerStatus = "interested"

// Tracker records a student's progress on one internship.
type Tracker struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"-" gorm:"size:150;not null;index"`
	InternshipID string    `json:"internshipId" gorm:"column:internship_id;type:text;not null"`
	Status       string    `json:"status" gorm:"type:text;not null"`
	Notes        string    `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time `json:"-" gorm:"index"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Tracker) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = DefaultTrackerStatus
	}
	return nil
}
