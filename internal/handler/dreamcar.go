package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/report"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DreamCarHandler serves CRUD for wishlist cars.
type DreamCarHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewDreamCarHandler(db *gorm.DB, pageSize int) *DreamCarHandler {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &DreamCarHandler{DB: db, PageSize: pageSize}
}

type dreamCarReq struct {
	Brand       string  `json:"brand" binding:"required,max=100"`
	Model       string  `json:"model" binding:"required,max=100"`
	Horsepower  int     `json:"horsepower"`
	Year        int     `json:"year"`
	Price       float64 `json:"price"`
	Bought      bool    `json:"bought"`
	DateBought  string  `json:"date_bought"`
	Description string  `json:"description"`
}

// carItem is a list row: the car with its thumbnail resolved.
type carItem struct {
	Car          models.DreamCar `json:"car"`
	FirstPicture *models.Picture `json:"first_picture"`
}

// List returns the filtered, paginated car list with counts and bought
// value computed over the same filter.
func (h *DreamCarHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	filter := report.CarFilter{
		Status: c.Query("status"),
		Search: strings.TrimSpace(c.Query("search")),
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	var cars []models.DreamCar
	if err := report.CarQuery(h.DB, user.ID, filter).
		Order("date_added DESC").
		Limit(h.PageSize).
		Offset((page - 1) * h.PageSize).
		Find(&cars).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list cars")
		return
	}

	items := make([]carItem, 0, len(cars))
	for i := range cars {
		pic, err := report.FirstPicture(h.DB, &cars[i])
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load pictures")
			return
		}
		items = append(items, carItem{Car: cars[i], FirstPicture: pic})
	}

	stats, err := report.Cars(h.DB, user.ID, filter)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute stats")
		return
	}

	util.Success(c, util.Response{
		"items": items,
		"page":  page,
		"size":  h.PageSize,
		"stats": stats,
	})
}

// Detail returns one car with its pictures, ownership counts and up to
// four similar cars.
func (h *DreamCarHandler) Detail(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var car models.DreamCar
	if err := h.DB.Preload("Pictures").
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&car).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "car not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load car")
		}
		return
	}

	stats, err := report.Cars(h.DB, user.ID, report.CarFilter{})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute stats")
		return
	}

	similar, err := report.SimilarCars(h.DB, &car, 4)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load similar cars")
		return
	}

	util.Success(c, util.Response{
		"car":          car,
		"pictures":     car.Pictures,
		"total_cars":   stats.TotalCars,
		"bought_cars":  stats.BoughtCars,
		"similar_cars": similar,
	})
}

func (h *DreamCarHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dreamCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateAmount(req.Price); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	car := models.DreamCar{
		UserID:      user.ID,
		Brand:       strings.TrimSpace(req.Brand),
		Model:       strings.TrimSpace(req.Model),
		Horsepower:  req.Horsepower,
		Year:        req.Year,
		Price:       req.Price,
		Bought:      req.Bought,
		Description: req.Description,
		DateAdded:   time.Now(),
	}
	if req.Bought {
		bought, err := util.ParseDate(req.DateBought, time.Now())
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		car.DateBought = &bought
	}

	if err := h.DB.Create(&car).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save car")
		return
	}

	util.Success(c, util.Response{"car": car})
}

func (h *DreamCarHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dreamCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateAmount(req.Price); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var car models.DreamCar
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&car).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "car not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load car")
		}
		return
	}

	car.Brand = strings.TrimSpace(req.Brand)
	car.Model = strings.TrimSpace(req.Model)
	car.Horsepower = req.Horsepower
	car.Year = req.Year
	car.Price = req.Price
	car.Bought = req.Bought
	car.Description = req.Description
	if req.Bought {
		bought, err := util.ParseDate(req.DateBought, time.Now())
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		car.DateBought = &bought
	} else {
		car.DateBought = nil
	}

	if err := h.DB.Save(&car).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save car")
		return
	}

	util.Success(c, util.Response{"car": car})
}

func (h *DreamCarHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var car models.DreamCar
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&car).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "car not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load car")
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		// drop the associations first; the picture rows stay
		if err := tx.Model(&car).Association("Pictures").Clear(); err != nil {
			return err
		}
		return tx.Delete(&car).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete car")
		return
	}

	util.Success(c, util.Response{"message": "car deleted"})
}
