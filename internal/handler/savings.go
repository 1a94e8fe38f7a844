package handler

import (
	"net/http"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/report"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SavingsHandler serves emergency funds, income goals and the per-wallet
// savings report.
type SavingsHandler struct {
	DB *gorm.DB
}

func NewSavingsHandler(db *gorm.DB) *SavingsHandler {
	return &SavingsHandler{DB: db}
}

type savingsReq struct {
	Amount float64 `json:"amount" binding:"required"`
	Wallet string  `json:"wallet" binding:"required,oneof=Binance M-pesa TrustWallet Bank Paypal Other"`
	Date   string  `json:"date"`
}

// Report returns saved-versus-target per wallet.
func (h *SavingsHandler) Report(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := report.Savings(h.DB, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute savings")
		return
	}

	util.Success(c, util.Response{"wallets": rows})
}

func (h *SavingsHandler) ListFunds(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var funds []models.EmergencyFund
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date_added DESC").
		Find(&funds).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list emergency funds")
		return
	}

	util.Success(c, util.Response{"items": funds})
}

func (h *SavingsHandler) CreateFund(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req savingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	date, err := util.ParseDate(req.Date, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	fund := models.EmergencyFund{
		UserID:    user.ID,
		Amount:    req.Amount,
		Wallet:    req.Wallet,
		DateAdded: date,
	}
	if err := h.DB.Create(&fund).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save emergency fund")
		return
	}

	util.Success(c, util.Response{"emergency_fund": fund})
}

func (h *SavingsHandler) DeleteFund(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.EmergencyFund{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete emergency fund")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "emergency fund not found")
		return
	}

	util.Success(c, util.Response{"message": "emergency fund deleted"})
}

func (h *SavingsHandler) ListGoals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var goals []models.IncomeGoal
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("by_when ASC").
		Find(&goals).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list income goals")
		return
	}

	util.Success(c, util.Response{"items": goals})
}

func (h *SavingsHandler) CreateGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req savingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	byWhen, err := util.ParseDate(req.Date, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	goal := models.IncomeGoal{
		UserID: user.ID,
		Amount: req.Amount,
		Wallet: req.Wallet,
		ByWhen: byWhen,
	}
	if err := h.DB.Create(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save income goal")
		return
	}

	util.Success(c, util.Response{"income_goal": goal})
}

func (h *SavingsHandler) DeleteGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.IncomeGoal{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete income goal")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "income goal not found")
		return
	}

	util.Success(c, util.Response{"message": "income goal deleted"})
}
