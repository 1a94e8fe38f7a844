package handler

import (
	"net/http"
	"strconv"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/storage"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PictureHandler serves the picture sub-resource of dream cars. Pictures
// carry no owner column, so every operation resolves ownership through
// the car first.
type PictureHandler struct {
	DB    *gorm.DB
	Store *storage.Store
}

func NewPictureHandler(db *gorm.DB, store *storage.Store) *PictureHandler {
	return &PictureHandler{DB: db, Store: store}
}

// ownedCar loads the car only when it belongs to the user. Foreign cars
// read as missing.
func (h *PictureHandler) ownedCar(c *gin.Context, userID uint) (*models.DreamCar, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	var car models.DreamCar
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&car).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "car not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load car")
		}
		return nil, false
	}
	return &car, true
}

// Add stores the uploaded image, creates the picture row and attaches it
// to the car in one go.
func (h *PictureHandler) Add(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	car, ok := h.ownedCar(c, user.ID)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "image file is required")
		return
	}

	year, _ := strconv.Atoi(c.PostForm("year"))
	pic := models.Picture{
		Brand: c.DefaultPostForm("brand", car.Brand),
		Model: c.DefaultPostForm("model", car.Model),
		Year:  year,
	}

	path, err := h.Store.Save(fh)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	pic.Image = path

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pic).Error; err != nil {
			return err
		}
		return tx.Model(car).Association("Pictures").Append(&pic)
	})
	if err != nil {
		_ = h.Store.Remove(path)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save picture")
		return
	}

	util.Success(c, util.Response{"picture": pic})
}

// Detach removes the association between a car and a picture. The picture
// row and its blob survive; only the explicit delete below removes them.
func (h *PictureHandler) Detach(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	car, ok := h.ownedCar(c, user.ID)
	if !ok {
		return
	}
	picID, ok := pathID(c, "picID")
	if !ok {
		return
	}

	var pic models.Picture
	if err := h.DB.First(&pic, picID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "picture not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load picture")
		}
		return
	}

	// deleting an absent association is a silent no-op, so check the join
	// row first: a picture not on this car reads as missing
	var attached int64
	if err := h.DB.Table("dream_car_pictures").
		Where("dream_car_id = ? AND picture_id = ?", car.ID, pic.ID).
		Count(&attached).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check picture")
		return
	}
	if attached == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "picture not on this car")
		return
	}

	if err := h.DB.Model(car).Association("Pictures").Delete(&pic); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to detach picture")
		return
	}

	remaining := h.DB.Model(car).Association("Pictures").Count()
	util.Success(c, util.Response{
		"message":            "picture removed from car",
		"remaining_pictures": remaining,
	})
}

// Delete removes the picture row and its stored blob. Associations to any
// car are cleared as part of the row deletion.
func (h *PictureHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	picID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var pic models.Picture
	if err := h.DB.First(&pic, picID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "picture not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load picture")
		}
		return
	}

	// only reachable through a car the user owns
	var count int64
	if err := h.DB.Table("dream_car_pictures").
		Joins("JOIN dream_cars ON dream_cars.id = dream_car_pictures.dream_car_id").
		Where("dream_car_pictures.picture_id = ? AND dream_cars.user_id = ?", pic.ID, user.ID).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check ownership")
		return
	}
	if count == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "picture not found")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM dream_car_pictures WHERE picture_id = ?", pic.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&pic).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete picture")
		return
	}
	_ = h.Store.Remove(pic.Image)

	util.Success(c, util.Response{"message": "picture deleted"})
}

// File streams the stored image blob.
func (h *PictureHandler) File(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	picID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var pic models.Picture
	if err := h.DB.First(&pic, picID).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "picture not found")
		return
	}

	var count int64
	if err := h.DB.Table("dream_car_pictures").
		Joins("JOIN dream_cars ON dream_cars.id = dream_car_pictures.dream_car_id").
		Where("dream_car_pictures.picture_id = ? AND dream_cars.user_id = ?", pic.ID, user.ID).
		Count(&count).Error; err != nil || count == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "picture not found")
		return
	}

	c.File(h.Store.Abs(pic.Image))
}
