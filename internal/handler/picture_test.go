package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}
	return store
}

func seedCarWithPicture(t *testing.T, db *gorm.DB, userID uint) (*models.DreamCar, *models.Picture) {
	t.Helper()

	car := &models.DreamCar{UserID: userID, Brand: "Toyota", Model: "Supra", Price: 100}
	if err := db.Create(car).Error; err != nil {
		t.Fatalf("create car: %v", err)
	}
	pic := &models.Picture{Brand: "Toyota", Model: "Supra", Image: "supra.jpg"}
	if err := db.Model(car).Association("Pictures").Append(pic); err != nil {
		t.Fatalf("attach picture: %v", err)
	}
	return car, pic
}

func TestPictureDetach_KeepsRow(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	h := NewPictureHandler(db, testStore(t))

	car, pic := seedCarWithPicture(t, db, user.ID)

	params := gin.Params{
		{Key: "id", Value: fmt.Sprint(car.ID)},
		{Key: "picID", Value: fmt.Sprint(pic.ID)},
	}
	c, w := testContext(t, user, http.MethodDelete, "/api/dreamcars/pictures", nil, params)
	h.Detach(c)

	if w.Code != http.StatusOK {
		t.Fatalf("detach status = %d, want 200: %s", w.Code, w.Body.String())
	}

	if got := db.Model(car).Association("Pictures").Count(); got != 0 {
		t.Errorf("association count after detach = %d, want 0", got)
	}

	// detach is not delete: the picture row survives
	var count int64
	db.Model(&models.Picture{}).Where("id = ?", pic.ID).Count(&count)
	if count != 1 {
		t.Error("picture row deleted by detach")
	}
}

func TestPictureDetach_NotAttached(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	h := NewPictureHandler(db, testStore(t))

	car, pic := seedCarWithPicture(t, db, user.ID)
	other := &models.DreamCar{UserID: user.ID, Brand: "Honda", Model: "NSX", Price: 95}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("create car: %v", err)
	}

	// the picture exists but hangs on the first car, not this one
	params := gin.Params{
		{Key: "id", Value: fmt.Sprint(other.ID)},
		{Key: "picID", Value: fmt.Sprint(pic.ID)},
	}
	c, w := testContext(t, user, http.MethodDelete, "/api/dreamcars/pictures", nil, params)
	h.Detach(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("detach of unattached picture status = %d, want 404", w.Code)
	}
	if got := db.Model(car).Association("Pictures").Count(); got != 1 {
		t.Error("picture lost its association to the original car")
	}
}

func TestPictureDetach_ForeignCar(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")
	h := NewPictureHandler(db, testStore(t))

	car, pic := seedCarWithPicture(t, db, bob.ID)

	params := gin.Params{
		{Key: "id", Value: fmt.Sprint(car.ID)},
		{Key: "picID", Value: fmt.Sprint(pic.ID)},
	}
	c, w := testContext(t, alice, http.MethodDelete, "/api/dreamcars/pictures", nil, params)
	h.Detach(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("detach via foreign car status = %d, want 404", w.Code)
	}
	if got := db.Model(car).Association("Pictures").Count(); got != 1 {
		t.Error("foreign car's picture association was removed")
	}
}

func TestPictureDelete_RemovesRowAndLinks(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	h := NewPictureHandler(db, testStore(t))

	car, pic := seedCarWithPicture(t, db, user.ID)

	params := gin.Params{{Key: "id", Value: fmt.Sprint(pic.ID)}}
	c, w := testContext(t, user, http.MethodDelete, "/api/pictures", nil, params)
	h.Delete(c)

	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Picture{}).Where("id = ?", pic.ID).Count(&count)
	if count != 0 {
		t.Error("picture row survived the explicit delete")
	}
	if got := db.Model(car).Association("Pictures").Count(); got != 0 {
		t.Error("join rows survived the explicit delete")
	}
}

func TestPictureDelete_NotReachableThroughOwnCar(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")
	h := NewPictureHandler(db, testStore(t))

	_, pic := seedCarWithPicture(t, db, bob.ID)

	params := gin.Params{{Key: "id", Value: fmt.Sprint(pic.ID)}}
	c, w := testContext(t, alice, http.MethodDelete, "/api/pictures", nil, params)
	h.Delete(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("delete foreign picture status = %d, want 404", w.Code)
	}
	var count int64
	db.Model(&models.Picture{}).Where("id = ?", pic.ID).Count(&count)
	if count != 1 {
		t.Error("foreign picture row was deleted")
	}
}
