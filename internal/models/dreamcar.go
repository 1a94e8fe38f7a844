package models

import "time"

// DreamCar is a wishlist car. Pictures are shared through a join table so a
// picture can illustrate more than one car.
type DreamCar struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Brand       string `gorm:"size:100;not null"`
	Model       string `gorm:"size:100;not null"`
	Horsepower  int    `gorm:"default:0"`
	Year        int    `gorm:"default:0"`
	Price       float64 `gorm:"not null;default:0"`
	Bought      bool    `gorm:"index;not null;default:false"`
	DateBought  *time.Time
	Description string    `gorm:"type:text"`
	DateAdded   time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User     User      `gorm:"constraint:OnDelete:CASCADE"`
	Pictures []Picture `gorm:"many2many:dream_car_pictures"`
}

// Picture is an uploaded car image, referenced by stored file path.
// It carries no owner column: ownership is only ever checked through the
// DreamCar it is attached to.
type Picture struct {
	ID        uint   `gorm:"primaryKey"`
	Brand     string `gorm:"size:100"`
	Model     string `gorm:"size:100"`
	Year      int    `gorm:"default:0"`
	Image     string `gorm:"size:255;not null"` // path in the upload dir
	CreatedAt time.Time
	UpdatedAt time.Time
}
