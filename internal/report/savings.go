package report

import (
	"fmt"

	"github.com/Churchillk/WealthTracker/internal/models"

	"gorm.io/gorm"
)

// WalletSavings pairs what is saved in a wallet with what the user wants
// there.
type WalletSavings struct {
	Wallet string  `json:"wallet"`
	Saved  float64 `json:"saved"`
	Target float64 `json:"target"`
}

// Savings computes per-wallet emergency fund totals against income goal
// targets, in wallet display order.
func Savings(db *gorm.DB, userID uint) ([]WalletSavings, error) {
	type walletTotal struct {
		Wallet string
		Total  float64
	}

	saved := make(map[string]float64)
	var rows []walletTotal
	if err := db.Model(&models.EmergencyFund{}).
		Select("wallet, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("wallet").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("emergency fund totals: %w", err)
	}
	for _, r := range rows {
		saved[r.Wallet] = r.Total
	}

	target := make(map[string]float64)
	rows = rows[:0]
	if err := db.Model(&models.IncomeGoal{}).
		Select("wallet, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("wallet").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("income goal totals: %w", err)
	}
	for _, r := range rows {
		target[r.Wallet] = r.Total
	}

	out := make([]WalletSavings, 0, len(models.Wallets))
	for _, w := range models.Wallets {
		if saved[w] == 0 && target[w] == 0 {
			continue
		}
		out = append(out, WalletSavings{Wallet: w, Saved: saved[w], Target: target[w]})
	}
	return out, nil
}
