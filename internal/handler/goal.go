package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoalHandler serves CRUD for goals.
type GoalHandler struct {
	DB *gorm.DB
}

func NewGoalHandler(db *gorm.DB) *GoalHandler {
	return &GoalHandler{DB: db}
}

type goalReq struct {
	GoalTitle       string `json:"goal_title" binding:"required,max=100"`
	GoalDescription string `json:"goal_description"`
	DateSet         string `json:"date_set"`
	EndDate         string `json:"end_date"`
	Achieved        bool   `json:"achieved"`
}

func (h *GoalHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var goals []models.Goal
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date_set DESC").
		Find(&goals).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list goals")
		return
	}

	var achieved int64
	if err := h.DB.Model(&models.Goal{}).
		Where("user_id = ? AND achieved = ?", user.ID, true).
		Count(&achieved).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to count goals")
		return
	}

	util.Success(c, util.Response{
		"items":          goals,
		"achieved_count": achieved,
	})
}

func (h *GoalHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	dateSet, err := util.ParseDate(req.DateSet, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	endDate, err := util.ParseDate(req.EndDate, dateSet)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	goal := models.Goal{
		UserID:          user.ID,
		GoalTitle:       strings.TrimSpace(req.GoalTitle),
		GoalDescription: req.GoalDescription,
		DateSet:         dateSet,
		EndDate:         endDate,
		Achieved:        req.Achieved,
	}
	if err := h.DB.Create(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save goal")
		return
	}

	util.Success(c, util.Response{"goal": goal})
}

func (h *GoalHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	dateSet, err := util.ParseDate(req.DateSet, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	endDate, err := util.ParseDate(req.EndDate, dateSet)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var goal models.Goal
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&goal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "goal not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load goal")
		}
		return
	}

	goal.GoalTitle = strings.TrimSpace(req.GoalTitle)
	goal.GoalDescription = req.GoalDescription
	goal.DateSet = dateSet
	goal.EndDate = endDate
	goal.Achieved = req.Achieved

	if err := h.DB.Save(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save goal")
		return
	}

	util.Success(c, util.Response{"goal": goal})
}

func (h *GoalHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Goal{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete goal")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "goal not found")
		return
	}

	util.Success(c, util.Response{"message": "goal deleted"})
}
