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

// IncomeSourceHandler serves CRUD for income sources.
type IncomeSourceHandler struct {
	DB *gorm.DB
}

func NewIncomeSourceHandler(db *gorm.DB) *IncomeSourceHandler {
	return &IncomeSourceHandler{DB: db}
}

type incomeSourceReq struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Client      string  `json:"client" binding:"max=100"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Worth       float64 `json:"worth"`
	Description string  `json:"description"`
}

func (r *incomeSourceReq) apply(src *models.IncomeSource) error {
	if err := util.ValidateAmount(r.Worth); err != nil {
		return err
	}
	start, err := util.ParseDate(r.StartDate, time.Now())
	if err != nil {
		return err
	}
	end, err := util.ParseDate(r.EndDate, start)
	if err != nil {
		return err
	}
	src.Name = strings.TrimSpace(r.Name)
	src.Client = strings.TrimSpace(r.Client)
	src.StartDate = start
	src.EndDate = end
	src.Worth = r.Worth
	src.Description = r.Description
	return nil
}

// List returns the user's sources plus the worth/salary/client stats.
func (h *IncomeSourceHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var sources []models.IncomeSource
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("start_date DESC").
		Find(&sources).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list income sources")
		return
	}

	stats, err := report.Sources(h.DB, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute stats")
		return
	}

	util.Success(c, util.Response{
		"items": sources,
		"stats": stats,
	})
}

func (h *IncomeSourceHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req incomeSourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	src := models.IncomeSource{UserID: user.ID}
	if err := req.apply(&src); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	if err := h.DB.Create(&src).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save income source")
		return
	}

	util.Success(c, util.Response{"income_source": src})
}

func (h *IncomeSourceHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req incomeSourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	var src models.IncomeSource
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&src).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "income source not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load income source")
		}
		return
	}

	if err := req.apply(&src); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if err := h.DB.Save(&src).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save income source")
		return
	}

	util.Success(c, util.Response{"income_source": src})
}

func (h *IncomeSourceHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.IncomeSource{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete income source")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "income source not found")
		return
	}

	util.Success(c, util.Response{"message": "income source deleted"})
}
