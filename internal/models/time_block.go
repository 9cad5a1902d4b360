package models

import "time"

type TimeBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GroomerID uint `gorm:"index" json:"groomer_id"`
	Groomer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"groomer"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	BlockType string `gorm:"size:20;not null" json:"block_type"`
	Reason    string `gorm:"size:255" json:"reason"`

	// Recurrence is expanded into independent rows at creation time; the
	// stored pattern on each row is informational only.
	IsRecurring     bool       `gorm:"default:false" json:"is_recurring"`
	RecurFrequency  string     `gorm:"size:20" json:"recur_frequency"`
	RecurDaysOfWeek string     `gorm:"size:20" json:"recur_days_of_week"`
	RecurEndDate    *time.Time `json:"recur_end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
