package models

import "time"

// User represents application user.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:64;uniqueIndex;not null"`
	Email        string    `gorm:"size:128;index"`
	PasswordHash string    `gorm:"size:255;not null"`
	FirstName    string    `gorm:"size:64"`
	LastName     string    `gorm:"size:64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FailedLoginAttempts int        `gorm:"default:0"`
	LockedUntil         *time.Time `gorm:"index"`
	LastLoginAt         *time.Time
	LastLoginIP         string `gorm:"size:64"`
}

// UserProfile carries the extra profile fields the auth table doesn't.
// Created together with the user at registration; get-or-create on read.
type UserProfile struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Bio       string `gorm:"type:text"`
	Phone     string `gorm:"size:32"`
	Avatar    string `gorm:"size:255"` // stored file path
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
