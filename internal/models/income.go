package models

import "time"

// Wallet choices shared by Income, EmergencyFund and IncomeGoal.
const (
	WalletBinance     = "Binance"
	WalletMpesa       = "M-pesa"
	WalletTrustWallet = "TrustWallet"
	WalletBank        = "Bank"
	WalletPaypal      = "Paypal"
	WalletOther       = "Other"
)

// Wallets lists every accepted wallet value, in display order.
var Wallets = []string{
	WalletBinance,
	WalletMpesa,
	WalletTrustWallet,
	WalletBank,
	WalletPaypal,
	WalletOther,
}

// IncomeSource is a client or contract money comes from.
// A source whose client is "Monopoly" is reported as salary.
type IncomeSource struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Name        string    `gorm:"size:100;not null"`
	Client      string    `gorm:"size:100;index"`
	StartDate   time.Time `gorm:"index"`
	EndDate     time.Time
	Worth       float64 `gorm:"not null;default:0"`
	Description string  `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// Income is a single money-in event, optionally linked to a source.
type Income struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	SourceID    *uint     `gorm:"index"`
	Wallet      string    `gorm:"size:32;not null;default:Bank"`
	Amount      float64   `gorm:"not null;default:0"`
	Date        time.Time `gorm:"index"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User   User          `gorm:"constraint:OnDelete:CASCADE"`
	Source *IncomeSource `gorm:"foreignKey:SourceID;constraint:OnDelete:SET NULL"`
}
