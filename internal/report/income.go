package report

import (
	"fmt"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"

	"gorm.io/gorm"
)

// IncomeStats is the reporting block attached to the income views.
type IncomeStats struct {
	Total      float64         `json:"total_income"`
	MonthTotal float64         `json:"month_total"`
	AvgAmount  float64         `json:"monthly_avg"` // mean of all income amounts
	Count      int64           `json:"recent_count"`
	Recent     []models.Income `json:"recent_incomes"`
}

// Incomes computes the income report for one user.
func Incomes(db *gorm.DB, userID uint, now time.Time) (*IncomeStats, error) {
	st := &IncomeStats{}

	var err error
	if st.Total, err = sumOwned(db, &models.Income{}, "amount", userID); err != nil {
		return nil, err
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := db.Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date >= ?", userID, startOfMonth).
		Scan(&st.MonthTotal).Error; err != nil {
		return nil, fmt.Errorf("month total: %w", err)
	}

	if err := db.Model(&models.Income{}).
		Select("COALESCE(AVG(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&st.AvgAmount).Error; err != nil {
		return nil, fmt.Errorf("average amount: %w", err)
	}

	if err := db.Model(&models.Income{}).
		Where("user_id = ?", userID).
		Count(&st.Count).Error; err != nil {
		return nil, fmt.Errorf("count incomes: %w", err)
	}

	if err := db.Where("user_id = ?", userID).
		Order("date DESC").Limit(5).
		Find(&st.Recent).Error; err != nil {
		return nil, fmt.Errorf("recent incomes: %w", err)
	}

	return st, nil
}

// SourceStats is the reporting block attached to the income source list.
type SourceStats struct {
	TotalWorth float64 `json:"total_worth"`
	Salary     float64 `json:"salary"`  // worth of sources whose client is "Monopoly"
	Clients    int64   `json:"clients"` // distinct client count
}

// Sources computes the income source report for one user.
func Sources(db *gorm.DB, userID uint) (*SourceStats, error) {
	st := &SourceStats{}

	var err error
	if st.TotalWorth, err = sumOwned(db, &models.IncomeSource{}, "worth", userID); err != nil {
		return nil, err
	}

	if err := db.Model(&models.IncomeSource{}).
		Select("COALESCE(SUM(worth), 0)").
		Where("user_id = ? AND client = ?", userID, "Monopoly").
		Scan(&st.Salary).Error; err != nil {
		return nil, fmt.Errorf("salary total: %w", err)
	}

	if err := db.Model(&models.IncomeSource{}).
		Where("user_id = ?", userID).
		Distinct("client").
		Count(&st.Clients).Error; err != nil {
		return nil, fmt.Errorf("distinct clients: %w", err)
	}

	return st, nil
}
