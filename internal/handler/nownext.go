package handler

import (
	"net/http"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NowNextHandler serves CRUD for journal entries.
type NowNextHandler struct {
	DB *gorm.DB
}

func NewNowNextHandler(db *gorm.DB) *NowNextHandler {
	return &NowNextHandler{DB: db}
}

type nowNextReq struct {
	Date       string `json:"date"`
	Do         string `json:"do"`
	Done       bool   `json:"done"`
	Challenges string `json:"challenges"`
	Gratitude  string `json:"gratitude"`
}

func (h *NowNextHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var entries []models.NowNext
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list journal entries")
		return
	}

	util.Success(c, util.Response{"items": entries})
}

func (h *NowNextHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req nowNextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	date, err := util.ParseDate(req.Date, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	entry := models.NowNext{
		UserID:     user.ID,
		Date:       date,
		Do:         req.Do,
		Done:       req.Done,
		Challenges: req.Challenges,
		Gratitude:  req.Gratitude,
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save journal entry")
		return
	}

	util.Success(c, util.Response{"now_next": entry})
}

func (h *NowNextHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req nowNextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	date, err := util.ParseDate(req.Date, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var entry models.NowNext
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "journal entry not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load journal entry")
		}
		return
	}

	entry.Date = date
	entry.Do = req.Do
	entry.Done = req.Done
	entry.Challenges = req.Challenges
	entry.Gratitude = req.Gratitude

	if err := h.DB.Save(&entry).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save journal entry")
		return
	}

	util.Success(c, util.Response{"now_next": entry})
}

func (h *NowNextHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.NowNext{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete journal entry")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "journal entry not found")
		return
	}

	util.Success(c, util.Response{"message": "journal entry deleted"})
}
