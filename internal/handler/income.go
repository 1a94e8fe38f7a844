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

// IncomeHandler serves CRUD for income events.
type IncomeHandler struct {
	DB *gorm.DB
}

func NewIncomeHandler(db *gorm.DB) *IncomeHandler {
	return &IncomeHandler{DB: db}
}

type incomeReq struct {
	SourceID    *uint   `json:"source_id"`
	Wallet      string  `json:"wallet" binding:"required,oneof=Binance M-pesa TrustWallet Bank Paypal Other"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// resolveSource checks a linked source belongs to the same user. A nil
// source id is fine; a foreign one reads as missing.
func (h *IncomeHandler) resolveSource(userID uint, sourceID *uint) error {
	if sourceID == nil {
		return nil
	}
	var src models.IncomeSource
	return h.DB.Where("id = ? AND user_id = ?", *sourceID, userID).First(&src).Error
}

// List returns the user's incomes plus totals and averages.
func (h *IncomeHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var incomes []models.Income
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list incomes")
		return
	}

	stats, err := report.Incomes(h.DB, user.ID, time.Now())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute stats")
		return
	}

	util.Success(c, util.Response{
		"items": incomes,
		"stats": stats,
	})
}

func (h *IncomeHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req incomeReq
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
	if err := h.resolveSource(user.ID, req.SourceID); err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "income source not found")
		return
	}

	income := models.Income{
		UserID:      user.ID,
		SourceID:    req.SourceID,
		Wallet:      req.Wallet,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}
	if err := h.DB.Create(&income).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save income")
		return
	}

	util.Success(c, util.Response{"income": income})
}

func (h *IncomeHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req incomeReq
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

	var income models.Income
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&income).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "income not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load income")
		}
		return
	}
	if err := h.resolveSource(user.ID, req.SourceID); err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "income source not found")
		return
	}

	income.SourceID = req.SourceID
	income.Wallet = req.Wallet
	income.Amount = req.Amount
	income.Date = date
	income.Description = req.Description

	if err := h.DB.Save(&income).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save income")
		return
	}

	util.Success(c, util.Response{"income": income})
}

func (h *IncomeHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Income{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete income")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "income not found")
		return
	}

	util.Success(c, util.Response{"message": "income deleted"})
}
