package models

import "time"

// EmergencyFund is money set aside in a wallet.
type EmergencyFund struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"index;not null"`
	Amount    float64 `gorm:"not null;default:0"`
	Wallet    string  `gorm:"size:32;not null;default:Bank"`
	DateAdded time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// IncomeGoal is a savings target for a wallet by a date.
type IncomeGoal struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"index;not null"`
	Amount    float64 `gorm:"not null;default:0"`
	Wallet    string  `gorm:"size:32;not null;default:Bank"`
	ByWhen    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
