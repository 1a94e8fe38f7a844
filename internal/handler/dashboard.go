package handler

import (
	"net/http"
	"time"

	"github.com/Churchillk/WealthTracker/internal/report"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dashboard returns the quick stats, chart series and recent activity for
// one page render.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		snap, err := report.Dashboard(db, user.ID, time.Now())
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build dashboard")
			return
		}

		util.Success(c, util.Response{
			"quick_stats": gin.H{
				"total_income":    snap.TotalIncome,
				"total_expenses":  snap.TotalExpenses,
				"net_worth":       snap.NetWorth,
				"active_projects": snap.ActiveProjects,
				"upcoming_events": snap.UpcomingEvents,
				"balance":         snap.Balance,
			},
			"daily_income":         snap.DailyIncome,
			"expenses_by_keyword":  snap.ExpensesByKeyword,
			"recent_incomes":       snap.RecentIncomes,
			"recent_expenses":      snap.RecentExpenses,
			"upcoming_events_list": snap.UpcomingList,
		})
	}
}
