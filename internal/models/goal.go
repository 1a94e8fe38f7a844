package models

import "time"

// Goal is a dated objective with a completion flag.
type Goal struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"index;not null"`
	GoalTitle       string `gorm:"size:100;not null"`
	GoalDescription string `gorm:"type:text"`
	DateSet         time.Time
	EndDate         time.Time
	Achieved        bool `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
