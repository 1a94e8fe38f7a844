package models

import "time"

// Expense categories. Stored upper-case, the way the source data has them.
const (
	CategoryBusiness   = "BUSINESS"
	CategoryPersonal   = "PERSONAL"
	CategoryInvestment = "INVESTMENT"
	CategoryFood       = "FOOD"
)

// ExpenseCategories lists every accepted category value.
var ExpenseCategories = []string{
	CategoryBusiness,
	CategoryPersonal,
	CategoryInvestment,
	CategoryFood,
}

// Expense is a single money-out event.
type Expense struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Name        string    `gorm:"size:100;not null"`
	Worth       float64   `gorm:"not null;default:0"`
	Category    string    `gorm:"size:32;index;not null;default:PERSONAL"`
	Date        time.Time `gorm:"index"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
