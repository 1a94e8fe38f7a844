package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/report"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler serves CRUD for expenses. Budget is the fixed monthly
// figure the budget percentage is measured against.
type ExpenseHandler struct {
	DB     *gorm.DB
	Budget float64
}

func NewExpenseHandler(db *gorm.DB, budget float64) *ExpenseHandler {
	return &ExpenseHandler{DB: db, Budget: budget}
}

type expenseReq struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Worth       float64 `json:"worth" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=BUSINESS PERSONAL INVESTMENT FOOD"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// List returns the user's expenses plus the month/average/trend/category
// report.
func (h *ExpenseHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list expenses")
		return
	}

	stats, err := report.Expenses(h.DB, user.ID, time.Now(), h.Budget)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute stats")
		return
	}

	util.Success(c, util.Response{
		"items": expenses,
		"stats": stats,
	})
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req expenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateAmount(req.Worth); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	date, err := util.ParseDate(req.Date, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	expense := models.Expense{
		UserID:      user.ID,
		Name:        strings.TrimSpace(req.Name),
		Worth:       req.Worth,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	}
	if err := h.DB.Create(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save expense")
		return
	}

	util.Success(c, util.Response{"expense": expense})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req expenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateAmount(req.Worth); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	date, err := util.ParseDate(req.Date, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var expense models.Expense
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&expense).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "expense not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load expense")
		}
		return
	}

	expense.Name = strings.TrimSpace(req.Name)
	expense.Worth = req.Worth
	expense.Category = req.Category
	expense.Date = date
	expense.Description = req.Description

	if err := h.DB.Save(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save expense")
		return
	}

	util.Success(c, util.Response{"expense": expense})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Expense{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete expense")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "expense not found")
		return
	}

	util.Success(c, util.Response{"message": "expense deleted"})
}
