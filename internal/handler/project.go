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

// ProjectHandler serves CRUD for projects.
type ProjectHandler struct {
	DB *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{DB: db}
}

type projectReq struct {
	Name        string `json:"name" binding:"required,max=100"`
	WhatNextID  *uint  `json:"what_next_id"`
	Description string `json:"description"`
	DateSet     string `json:"date_set"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status" binding:"required,oneof=Planning 'In Progress' Completed 'On Hold'"`
}

func (h *ProjectHandler) apply(userID uint, req *projectReq, p *models.Project) (int, string) {
	dateSet, err := util.ParseDate(req.DateSet, time.Now())
	if err != nil {
		return http.StatusBadRequest, err.Error()
	}
	endDate, err := util.ParseDate(req.EndDate, dateSet)
	if err != nil {
		return http.StatusBadRequest, err.Error()
	}
	if req.WhatNextID != nil {
		var nn models.NowNext
		if err := h.DB.Where("id = ? AND user_id = ?", *req.WhatNextID, userID).First(&nn).Error; err != nil {
			return http.StatusNotFound, "journal entry not found"
		}
	}

	p.Name = strings.TrimSpace(req.Name)
	p.WhatNextID = req.WhatNextID
	p.Description = req.Description
	p.DateSet = dateSet
	p.EndDate = endDate
	p.Status = req.Status
	return 0, ""
}

func (h *ProjectHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	// optional ?status= filter
	q := h.DB.Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		if !util.OneOf(status, models.ProjectStatuses) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown status")
			return
		}
		q = q.Where("status = ?", status)
	}

	var projects []models.Project
	if err := q.Order("date_set DESC").Find(&projects).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list projects")
		return
	}

	var active int64
	if err := h.DB.Model(&models.Project{}).
		Where("user_id = ? AND status = ?", user.ID, models.StatusInProgress).
		Count(&active).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to count projects")
		return
	}

	util.Success(c, util.Response{
		"items":           projects,
		"active_projects": active,
	})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	project := models.Project{UserID: user.ID}
	if status, msg := h.apply(user.ID, &req, &project); status != 0 {
		util.Error(c, status, codeFor(status), msg)
		return
	}
	if err := h.DB.Create(&project).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save project")
		return
	}

	util.Success(c, util.Response{"project": project})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	var project models.Project
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "project not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load project")
		}
		return
	}

	if status, msg := h.apply(user.ID, &req, &project); status != 0 {
		util.Error(c, status, codeFor(status), msg)
		return
	}
	if err := h.DB.Save(&project).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save project")
		return
	}

	util.Success(c, util.Response{"project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Project{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete project")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "project not found")
		return
	}

	util.Success(c, util.Response{"message": "project deleted"})
}

// codeFor maps an HTTP status to the matching business code.
func codeFor(status int) int {
	switch status {
	case http.StatusNotFound:
		return util.CodeNotFound
	case http.StatusBadRequest:
		return util.CodeInvalidParam
	default:
		return util.CodeServerErr
	}
}
