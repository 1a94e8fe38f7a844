// Package report computes the per-user aggregates behind the dashboard and
// the entity list views. Every function takes the owner id as an explicit
// parameter; nothing in here reads the request context.
package report

import (
	"fmt"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"

	"gorm.io/gorm"
)

// DailyIncome is one point of the 30-day income series.
type DailyIncome struct {
	Day   string  `json:"day"` // YYYY-MM-DD
	Total float64 `json:"total"`
}

// Snapshot is the dashboard state for one user at one instant.
type Snapshot struct {
	TotalIncome    float64 `json:"total_income"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetWorth       float64 `json:"net_worth"`
	ActiveProjects int64   `json:"active_projects"`
	UpcomingEvents int64   `json:"upcoming_events"`
	Balance        float64 `json:"balance"`

	DailyIncome []DailyIncome `json:"daily_income"`

	// Keyword buckets over the expense name. A single expense can match
	// more than one bucket, so these are not a partition of total
	// expenses; the category totals in ExpenseStats are the partition.
	ExpensesByKeyword map[string]float64 `json:"expenses_by_keyword"`

	RecentIncomes  []models.Income  `json:"recent_incomes"`
	RecentExpenses []models.Expense `json:"recent_expenses"`
	UpcomingList   []models.Event   `json:"upcoming_events_list"`
}

// Dashboard computes a consistent snapshot of the user's financial and
// activity state. All sums come back 0 on empty row-sets.
func Dashboard(db *gorm.DB, userID uint, now time.Time) (*Snapshot, error) {
	s := &Snapshot{}

	var err error
	if s.TotalIncome, err = sumOwned(db, &models.Income{}, "amount", userID); err != nil {
		return nil, err
	}
	if s.TotalExpenses, err = sumOwned(db, &models.Expense{}, "worth", userID); err != nil {
		return nil, err
	}
	if s.NetWorth, err = sumOwned(db, &models.IncomeSource{}, "worth", userID); err != nil {
		return nil, err
	}
	s.Balance = s.TotalIncome - s.TotalExpenses

	if err := db.Model(&models.Project{}).
		Where("user_id = ? AND status = ?", userID, models.StatusInProgress).
		Count(&s.ActiveProjects).Error; err != nil {
		return nil, fmt.Errorf("count active projects: %w", err)
	}
	if err := db.Model(&models.Event{}).
		Where("user_id = ? AND start_date >= ?", userID, now).
		Count(&s.UpcomingEvents).Error; err != nil {
		return nil, fmt.Errorf("count upcoming events: %w", err)
	}

	// last 30 days of income, one bucket per calendar day, ascending
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	if err := db.Model(&models.Income{}).
		Select("date(date) AS day, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ?", userID, thirtyDaysAgo).
		Group("day").
		Order("day ASC").
		Scan(&s.DailyIncome).Error; err != nil {
		return nil, fmt.Errorf("daily income series: %w", err)
	}

	s.ExpensesByKeyword = make(map[string]float64, 3)
	for _, keyword := range []string{"Business", "Personal", "Investment"} {
		total, err := sumExpenseKeyword(db, userID, keyword)
		if err != nil {
			return nil, err
		}
		s.ExpensesByKeyword[keyword] = total
	}

	if err := db.Where("user_id = ?", userID).
		Order("date DESC").Limit(5).
		Find(&s.RecentIncomes).Error; err != nil {
		return nil, fmt.Errorf("recent incomes: %w", err)
	}
	if err := db.Where("user_id = ?", userID).
		Order("date DESC").Limit(5).
		Find(&s.RecentExpenses).Error; err != nil {
		return nil, fmt.Errorf("recent expenses: %w", err)
	}
	if err := db.Where("user_id = ? AND start_date >= ?", userID, now).
		Order("start_date ASC").Limit(5).
		Find(&s.UpcomingList).Error; err != nil {
		return nil, fmt.Errorf("upcoming events: %w", err)
	}

	return s, nil
}

// sumOwned sums one numeric column over a user's rows of the given model.
func sumOwned(db *gorm.DB, model interface{}, column string, userID uint) (float64, error) {
	var total float64
	if err := db.Model(model).
		Select("COALESCE(SUM("+column+"), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("sum %s: %w", column, err)
	}
	return total, nil
}

// sumExpenseKeyword sums expenses whose free-text name contains the keyword,
// case-insensitively. Distinct from the category totals on purpose.
func sumExpenseKeyword(db *gorm.DB, userID uint, keyword string) (float64, error) {
	var total float64
	if err := db.Model(&models.Expense{}).
		Select("COALESCE(SUM(worth), 0)").
		Where("user_id = ? AND name LIKE ?", userID, "%"+keyword+"%").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("keyword bucket %s: %w", keyword, err)
	}
	return total, nil
}
