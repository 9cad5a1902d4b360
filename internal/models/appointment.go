package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	OwnerID uint `gorm:"index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	GroomerID uint `gorm:"index" json:"groomer_id"`
	Groomer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"groomer"`

	// basic = 60min, full = 120min; duration is derived, never caller-supplied
	ServiceType string `gorm:"size:20;not null" json:"service_type"`
	DurationMin int    `json:"duration_min"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status              string `gorm:"size:20;default:'confirmed'" json:"status"`
	GroomerAcknowledged bool   `gorm:"default:false" json:"groomer_acknowledged"`

	PricingStatus string       `gorm:"size:20;default:'pending'" json:"pricing_status"`
	TotalCost     float64      `json:"total_cost"`
	PriceHistory  []PriceEntry `gorm:"foreignKey:AppointmentID" json:"price_history"`

	ActualStartTime   *time.Time `json:"actual_start_time"`
	ActualEndTime     *time.Time `json:"actual_end_time"`
	ActualDurationMin *int       `json:"actual_duration_min"`

	Notes  string          `gorm:"size:500" json:"notes"`
	Photos []GroomingPhoto `gorm:"foreignKey:AppointmentID" json:"photos"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceEntry rows are append-only; the appointment's TotalCost and
// PricingStatus always mirror the newest entry.
type PriceEntry struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	Amount float64 `json:"amount"`
	Reason string  `gorm:"size:255" json:"reason"`
	SetBy  uint    `json:"set_by"`

	CreatedAt time.Time `json:"created_at"`
}

type GroomingPhoto struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	ObjectKey string `gorm:"size:255" json:"object_key"`
	URL       string `gorm:"size:500" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}
