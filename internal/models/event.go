package models

import "time"

// Event categories.
const (
	EventHackathon     = "Hackathon"
	EventAI            = "AI"
	EventBlockchain    = "Blockchain"
	EventCybersecurity = "Cybersecurity"
	EventOther         = "Other"
)

// EventCategories lists every accepted event category.
var EventCategories = []string{
	EventHackathon,
	EventAI,
	EventBlockchain,
	EventCybersecurity,
	EventOther,
}

// Event is a calendar entry with an attendance flag.
type Event struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Title     string    `gorm:"size:100;not null"`
	Host      string    `gorm:"size:50"`
	StartDate time.Time `gorm:"index"`
	EndDate   time.Time
	Location  string `gorm:"type:text"`
	Category  string `gorm:"size:50;index;not null;default:Hackathon"`
	Attended  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
