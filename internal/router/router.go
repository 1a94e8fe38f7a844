package router

import (
	"github.com/Churchillk/WealthTracker/internal/config"
	"github.com/Churchillk/WealthTracker/internal/handler"
	"github.com/Churchillk/WealthTracker/internal/middleware"
	"github.com/Churchillk/WealthTracker/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every handler onto the Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, store *storage.Store) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	api := r.Group("/api")

	// register and login need no token
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))

	protected.GET("/me", handler.GetMe)
	protected.GET("/profile", handler.GetProfile(db))
	protected.PUT("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	protected.GET("/dashboard", handler.Dashboard(db))

	sourceHandler := handler.NewIncomeSourceHandler(db)
	protected.GET("/incomesources", sourceHandler.List)
	protected.POST("/incomesources", sourceHandler.Create)
	protected.PUT("/incomesources/:id", sourceHandler.Update)
	protected.DELETE("/incomesources/:id", sourceHandler.Delete)

	incomeHandler := handler.NewIncomeHandler(db)
	protected.GET("/incomes", incomeHandler.List)
	protected.POST("/incomes", incomeHandler.Create)
	protected.PUT("/incomes/:id", incomeHandler.Update)
	protected.DELETE("/incomes/:id", incomeHandler.Delete)

	expenseHandler := handler.NewExpenseHandler(db, cfg.App.MonthlyBudget)
	protected.GET("/expenses", expenseHandler.List)
	protected.POST("/expenses", expenseHandler.Create)
	protected.PUT("/expenses/:id", expenseHandler.Update)
	protected.DELETE("/expenses/:id", expenseHandler.Delete)

	nowNextHandler := handler.NewNowNextHandler(db)
	protected.GET("/nownext", nowNextHandler.List)
	protected.POST("/nownext", nowNextHandler.Create)
	protected.PUT("/nownext/:id", nowNextHandler.Update)
	protected.DELETE("/nownext/:id", nowNextHandler.Delete)

	projectHandler := handler.NewProjectHandler(db)
	protected.GET("/projects", projectHandler.List)
	protected.POST("/projects", projectHandler.Create)
	protected.PUT("/projects/:id", projectHandler.Update)
	protected.DELETE("/projects/:id", projectHandler.Delete)

	goalHandler := handler.NewGoalHandler(db)
	protected.GET("/goals", goalHandler.List)
	protected.POST("/goals", goalHandler.Create)
	protected.PUT("/goals/:id", goalHandler.Update)
	protected.DELETE("/goals/:id", goalHandler.Delete)

	eventHandler := handler.NewEventHandler(db)
	protected.GET("/events", eventHandler.List)
	protected.POST("/events", eventHandler.Create)
	protected.PUT("/events/:id", eventHandler.Update)
	protected.DELETE("/events/:id", eventHandler.Delete)
	protected.POST("/events/:id/attend", eventHandler.MarkAttended)

	carHandler := handler.NewDreamCarHandler(db, cfg.App.PageSize)
	protected.GET("/dreamcars", carHandler.List)
	protected.POST("/dreamcars", carHandler.Create)
	protected.GET("/dreamcars/:id", carHandler.Detail)
	protected.PUT("/dreamcars/:id", carHandler.Update)
	protected.DELETE("/dreamcars/:id", carHandler.Delete)

	pictureHandler := handler.NewPictureHandler(db, store)
	protected.POST("/dreamcars/:id/pictures", pictureHandler.Add)
	protected.DELETE("/dreamcars/:id/pictures/:picID", pictureHandler.Detach)
	protected.GET("/pictures/:id/file", pictureHandler.File)
	protected.DELETE("/pictures/:id", pictureHandler.Delete)

	savingsHandler := handler.NewSavingsHandler(db)
	protected.GET("/savings", savingsHandler.Report)
	protected.GET("/emergencyfunds", savingsHandler.ListFunds)
	protected.POST("/emergencyfunds", savingsHandler.CreateFund)
	protected.DELETE("/emergencyfunds/:id", savingsHandler.DeleteFund)
	protected.GET("/incomegoals", savingsHandler.ListGoals)
	protected.POST("/incomegoals", savingsHandler.CreateGoal)
	protected.DELETE("/incomegoals/:id", savingsHandler.DeleteGoal)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
