package report

import (
	"fmt"

	"github.com/Churchillk/WealthTracker/internal/models"

	"gorm.io/gorm"
)

// CarStats is the reporting block attached to the dream car list. Counts and
// value are computed over the same filtered set the list shows.
type CarStats struct {
	TotalCars  int64   `json:"total_cars"`
	BoughtCars int64   `json:"bought_cars"`
	DreamCars  int64   `json:"dream_cars"` // not yet bought
	TotalValue float64 `json:"total_value"` // price sum over bought cars
}

// CarFilter narrows the dream car list. Status is "", "bought" or
// "not_bought"; Search matches brand, model or description.
type CarFilter struct {
	Status string
	Search string
}

// CarQuery builds the filtered, owner-scoped car query the list and its
// stats share.
func CarQuery(db *gorm.DB, userID uint, f CarFilter) *gorm.DB {
	q := db.Model(&models.DreamCar{}).Where("user_id = ?", userID)
	switch f.Status {
	case "bought":
		q = q.Where("bought = ?", true)
	case "not_bought":
		q = q.Where("bought = ?", false)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("brand LIKE ? OR model LIKE ? OR description LIKE ?", like, like, like)
	}
	return q
}

// Cars computes counts and bought value over the filtered set.
func Cars(db *gorm.DB, userID uint, f CarFilter) (*CarStats, error) {
	st := &CarStats{}

	if err := CarQuery(db, userID, f).Count(&st.TotalCars).Error; err != nil {
		return nil, fmt.Errorf("count cars: %w", err)
	}
	if err := CarQuery(db, userID, f).Where("bought = ?", true).Count(&st.BoughtCars).Error; err != nil {
		return nil, fmt.Errorf("count bought: %w", err)
	}
	st.DreamCars = st.TotalCars - st.BoughtCars

	if err := CarQuery(db, userID, f).
		Where("bought = ?", true).
		Select("COALESCE(SUM(price), 0)").
		Scan(&st.TotalValue).Error; err != nil {
		return nil, fmt.Errorf("bought value: %w", err)
	}

	return st, nil
}

// FirstPicture resolves the representative thumbnail for a car, or nil when
// the car has no pictures.
func FirstPicture(db *gorm.DB, car *models.DreamCar) (*models.Picture, error) {
	var pics []models.Picture
	if err := db.Model(car).Order("id ASC").Limit(1).Association("Pictures").Find(&pics); err != nil {
		return nil, fmt.Errorf("first picture: %w", err)
	}
	if len(pics) == 0 {
		return nil, nil
	}
	return &pics[0], nil
}

// SimilarCars finds up to limit cars of the same owner with the same brand
// or a price within 20 percent, excluding the car itself.
func SimilarCars(db *gorm.DB, car *models.DreamCar, limit int) ([]models.DreamCar, error) {
	var cars []models.DreamCar
	if err := db.Where("user_id = ? AND id <> ?", car.UserID, car.ID).
		Where("brand = ? OR (price >= ? AND price <= ?)", car.Brand, car.Price*0.8, car.Price*1.2).
		Limit(limit).
		Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("similar cars: %w", err)
	}
	return cars, nil
}
