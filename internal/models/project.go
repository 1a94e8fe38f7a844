package models

import "time"

// Project status values. Any value may be set at any time; there is no
// enforced transition graph.
const (
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

// ProjectStatuses lists every accepted status value.
var ProjectStatuses = []string{
	StatusPlanning,
	StatusInProgress,
	StatusCompleted,
	StatusOnHold,
}

// NowNext is a daily journaling entry: what to do, what got done,
// challenges and gratitude.
type NowNext struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index;not null"`
	Date       time.Time `gorm:"index"`
	Do         string    `gorm:"type:text"`
	Done       bool      `gorm:"not null;default:false"`
	Challenges string    `gorm:"type:text"`
	Gratitude  string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// Project tracks a piece of work with a status, optionally linked to the
// NowNext entry it came out of.
type Project struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	WhatNextID  *uint  `gorm:"index"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	DateSet     time.Time
	EndDate     time.Time
	Status      string `gorm:"size:20;index;not null;default:Planning"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User     User     `gorm:"constraint:OnDelete:CASCADE"`
	WhatNext *NowNext `gorm:"foreignKey:WhatNextID;constraint:OnDelete:SET NULL"`
}
