package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"

	"github.com/gin-gonic/gin"
)

// attendReply is the bare shape the attend endpoint speaks.
type attendReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func markAttended(t *testing.T, h *EventHandler, user *models.User, eventID uint) attendReply {
	t.Helper()

	params := gin.Params{{Key: "id", Value: fmt.Sprint(eventID)}}
	c, w := testContext(t, user, http.MethodPost, "/api/events/attend", nil, params)
	h.MarkAttended(c)

	if w.Code != http.StatusOK {
		t.Fatalf("attend status = %d, want 200", w.Code)
	}
	var reply attendReply
	decodeBody(t, w, &reply)
	return reply
}

func TestMarkAttended(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	h := NewEventHandler(db)

	event := models.Event{UserID: user.ID, Title: "AI meetup", Category: models.EventAI, StartDate: time.Now().AddDate(0, 0, -1)}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}

	reply := markAttended(t, h, user, event.ID)
	if !reply.Success || reply.Error != "" {
		t.Fatalf("first attend reply = %+v, want success", reply)
	}

	var got models.Event
	if err := db.First(&got, event.ID).Error; err != nil {
		t.Fatalf("reload event: %v", err)
	}
	if !got.Attended {
		t.Error("event not marked attended")
	}

	// second call is a no-op that still reports success
	reply = markAttended(t, h, user, event.ID)
	if !reply.Success {
		t.Fatalf("repeat attend reply = %+v, want success", reply)
	}

	var attended int64
	db.Model(&models.Event{}).Where("user_id = ? AND attended = ?", user.ID, true).Count(&attended)
	if attended != 1 {
		t.Errorf("attended count after repeat = %d, want 1", attended)
	}
}

func TestMarkAttended_ForeignEvent(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")
	h := NewEventHandler(db)

	event := models.Event{UserID: bob.ID, Title: "Bob's con", Category: models.EventHackathon, StartDate: time.Now()}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}

	reply := markAttended(t, h, alice, event.ID)
	if reply.Success {
		t.Fatal("attend on another user's event reported success")
	}
	if reply.Error != "Event not found" {
		t.Errorf("error = %q, want %q", reply.Error, "Event not found")
	}

	var got models.Event
	if err := db.First(&got, event.ID).Error; err != nil {
		t.Fatalf("reload event: %v", err)
	}
	if got.Attended {
		t.Error("foreign event was mutated")
	}
}

func TestEventDelete_ForeignEvent(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")
	h := NewEventHandler(db)

	event := models.Event{UserID: bob.ID, Title: "Bob's con", Category: models.EventHackathon, StartDate: time.Now()}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}

	params := gin.Params{{Key: "id", Value: fmt.Sprint(event.ID)}}
	c, w := testContext(t, alice, http.MethodDelete, "/api/events", nil, params)
	h.Delete(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("delete foreign event status = %d, want 404", w.Code)
	}

	var count int64
	db.Model(&models.Event{}).Where("id = ?", event.ID).Count(&count)
	if count != 1 {
		t.Error("foreign event row was deleted")
	}
}
