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

// EventHandler serves CRUD for events plus the attendance toggle.
type EventHandler struct {
	DB *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{DB: db}
}

type eventReq struct {
	Title     string `json:"title" binding:"required,max=100"`
	Host      string `json:"host" binding:"max=50"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Location  string `json:"location"`
	Category  string `json:"category" binding:"required,oneof=Hackathon AI Blockchain Cybersecurity Other"`
	Attended  bool   `json:"attended"`
}

// List returns the user's events ascending by start plus the counts and
// upcoming/past partitions.
func (h *EventHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var events []models.Event
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("start_date ASC").
		Find(&events).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list events")
		return
	}

	stats, err := report.Events(h.DB, user.ID, time.Now())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute stats")
		return
	}

	util.Success(c, util.Response{
		"items": events,
		"stats": stats,
	})
}

func (h *EventHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	start, err := util.ParseDate(req.StartDate, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	end, err := util.ParseDate(req.EndDate, start)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	event := models.Event{
		UserID:    user.ID,
		Title:     strings.TrimSpace(req.Title),
		Host:      strings.TrimSpace(req.Host),
		StartDate: start,
		EndDate:   end,
		Location:  req.Location,
		Category:  req.Category,
		Attended:  req.Attended,
	}
	if err := h.DB.Create(&event).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save event")
		return
	}

	util.Success(c, util.Response{"event": event})
}

func (h *EventHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	start, err := util.ParseDate(req.StartDate, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	end, err := util.ParseDate(req.EndDate, start)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var event models.Event
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "event not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load event")
		}
		return
	}

	event.Title = strings.TrimSpace(req.Title)
	event.Host = strings.TrimSpace(req.Host)
	event.StartDate = start
	event.EndDate = end
	event.Location = req.Location
	event.Category = req.Category
	event.Attended = req.Attended

	if err := h.DB.Save(&event).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save event")
		return
	}

	util.Success(c, util.Response{"event": event})
}

func (h *EventHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Event{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete event")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "event not found")
		return
	}

	util.Success(c, util.Response{"message": "event deleted"})
}

// MarkAttended flips attended to true. Already-attended events are a
// no-op. The response is the bare success/error shape the frontend's
// fetch call expects, not the usual envelope.
func (h *EventHandler) MarkAttended(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathIDQuiet(c, "id")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Event not found"})
		return
	}

	var event models.Event
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&event).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Event not found"})
		return
	}

	if !event.Attended {
		event.Attended = true
		if err := h.DB.Save(&event).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "failed to save event"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
