package report

import (
	"fmt"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"

	"gorm.io/gorm"
)

// MonthlyExpense is one point of the 6-month trend.
type MonthlyExpense struct {
	Month string  `json:"month"` // "Jan 2006"
	Total float64 `json:"total"`
}

// CategoryShare is a category total with its share of all categories.
type CategoryShare struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ExpenseStats is the reporting block attached to the expense views.
type ExpenseStats struct {
	Total      float64          `json:"total_expenses"`
	MonthTotal float64          `json:"month_total"`
	MonthlyAvg float64          `json:"monthly_avg"` // sum of month totals / distinct months
	DailyAvg   float64          `json:"daily_avg"`   // this month's total / day of month
	Budget     float64          `json:"budget"`
	BudgetLeft float64          `json:"budget_remaining"`
	BudgetUsed float64          `json:"budget_percentage"` // clamped at 100
	Trend      []MonthlyExpense `json:"trend"`
	ByCategory []CategoryShare  `json:"by_category"`
	Recent     []models.Expense `json:"recent_expenses"`
}

// Expenses computes the expense report for one user. budget is the fixed
// monthly budget figure the percentage is measured against.
func Expenses(db *gorm.DB, userID uint, now time.Time, budget float64) (*ExpenseStats, error) {
	st := &ExpenseStats{Budget: budget}

	var err error
	if st.Total, err = sumOwned(db, &models.Expense{}, "worth", userID); err != nil {
		return nil, err
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := db.Model(&models.Expense{}).
		Select("COALESCE(SUM(worth), 0)").
		Where("user_id = ? AND date >= ? AND date < ?", userID, startOfMonth, startOfMonth.AddDate(0, 1, 0)).
		Scan(&st.MonthTotal).Error; err != nil {
		return nil, fmt.Errorf("month total: %w", err)
	}

	// month-over-month average: sum of per-month totals divided by the
	// number of distinct months with any expense
	var monthTotals []struct{ Total float64 }
	if err := db.Model(&models.Expense{}).
		Select("COALESCE(SUM(worth), 0) AS total").
		Where("user_id = ?", userID).
		Group("strftime('%Y-%m', date)").
		Scan(&monthTotals).Error; err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	if len(monthTotals) > 0 {
		var sum float64
		for _, t := range monthTotals {
			sum += t.Total
		}
		st.MonthlyAvg = sum / float64(len(monthTotals))
	}

	st.DailyAvg = st.MonthTotal / float64(now.Day())

	st.BudgetLeft = budget - st.MonthTotal
	if budget > 0 {
		st.BudgetUsed = st.MonthTotal / budget * 100
		if st.BudgetUsed > 100 {
			st.BudgetUsed = 100
		}
	}

	// 6-month trend, bucketed by month, ascending
	sixMonthsAgo := now.AddDate(0, 0, -180)
	var rawTrend []struct {
		Month string
		Total float64
	}
	if err := db.Model(&models.Expense{}).
		Select("strftime('%Y-%m', date) AS month, COALESCE(SUM(worth), 0) AS total").
		Where("user_id = ? AND date >= ?", userID, sixMonthsAgo).
		Group("month").
		Order("month ASC").
		Scan(&rawTrend).Error; err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}
	st.Trend = make([]MonthlyExpense, 0, len(rawTrend))
	for _, r := range rawTrend {
		label := r.Month
		if t, err := time.Parse("2006-01", r.Month); err == nil {
			label = t.Format("Jan 2006")
		}
		st.Trend = append(st.Trend, MonthlyExpense{Month: label, Total: r.Total})
	}

	// category partition with percentages against the cross-category total
	var totalAll float64
	totals := make([]CategoryShare, 0, len(models.ExpenseCategories))
	for _, cat := range models.ExpenseCategories {
		var t float64
		if err := db.Model(&models.Expense{}).
			Select("COALESCE(SUM(worth), 0)").
			Where("user_id = ? AND category = ?", userID, cat).
			Scan(&t).Error; err != nil {
			return nil, fmt.Errorf("category total %s: %w", cat, err)
		}
		totals = append(totals, CategoryShare{Category: cat, Total: t})
		totalAll += t
	}
	for i := range totals {
		if totalAll > 0 {
			totals[i].Percentage = totals[i].Total / totalAll * 100
		}
	}
	st.ByCategory = totals

	if err := db.Where("user_id = ?", userID).
		Order("date DESC").Limit(5).
		Find(&st.Recent).Error; err != nil {
		return nil, fmt.Errorf("recent expenses: %w", err)
	}

	return st, nil
}
