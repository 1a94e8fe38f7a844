package report

import (
	"fmt"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"

	"gorm.io/gorm"
)

// EventStats is the reporting block attached to the event list.
type EventStats struct {
	UpcomingCount  int64          `json:"upcoming_count"`
	AttendedCount  int64          `json:"attended_count"`
	MonthCount     int64          `json:"month_count"`
	HackathonCount int64          `json:"hackathon_count"`
	Upcoming       []models.Event `json:"upcoming_events"` // next 30 days, ascending
	Past           []models.Event `json:"past_events"`     // descending
}

// Events computes the event report for one user.
func Events(db *gorm.DB, userID uint, now time.Time) (*EventStats, error) {
	st := &EventStats{}
	owned := func() *gorm.DB { return db.Model(&models.Event{}).Where("user_id = ?", userID) }

	if err := owned().Where("start_date >= ?", now).Count(&st.UpcomingCount).Error; err != nil {
		return nil, fmt.Errorf("upcoming count: %w", err)
	}
	if err := owned().Where("attended = ?", true).Count(&st.AttendedCount).Error; err != nil {
		return nil, fmt.Errorf("attended count: %w", err)
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := owned().
		Where("start_date >= ? AND start_date < ?", startOfMonth, startOfMonth.AddDate(0, 1, 0)).
		Count(&st.MonthCount).Error; err != nil {
		return nil, fmt.Errorf("month count: %w", err)
	}
	if err := owned().Where("category = ?", models.EventHackathon).Count(&st.HackathonCount).Error; err != nil {
		return nil, fmt.Errorf("hackathon count: %w", err)
	}

	thirtyDaysLater := now.AddDate(0, 0, 30)
	if err := db.Where("user_id = ? AND start_date >= ? AND start_date <= ?", userID, now, thirtyDaysLater).
		Order("start_date ASC").
		Find(&st.Upcoming).Error; err != nil {
		return nil, fmt.Errorf("upcoming events: %w", err)
	}
	if err := db.Where("user_id = ? AND start_date < ?", userID, now).
		Order("start_date DESC").
		Find(&st.Past).Error; err != nil {
		return nil, fmt.Errorf("past events: %w", err)
	}

	return st, nil
}
