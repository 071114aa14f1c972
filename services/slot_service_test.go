package services

import (
	"errors"
	"testing"
	"time"

	"biketours-backend/models"
)

func TestSlotCreateAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)

	tour := createTestTour(t, db, "Harbor Tour", 2, 700)
	guide := createTestGuide(t, db, "guide-gk")
	at := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)

	slot := models.Slot{TourID: tour.ID, GuideID: guide.ID, Datetime: at}
	if err := svc.Create(&slot); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if slot.ID == 0 {
		t.Fatal("slot id not assigned")
	}

	dup := models.Slot{TourID: tour.ID, GuideID: guide.ID, Datetime: at}
	if err := svc.Create(&dup); !errors.Is(err, ErrSlotExists) {
		t.Errorf("duplicate Create error = %v, want ErrSlotExists", err)
	}

	if err := svc.Create(&models.Slot{TourID: 9999, GuideID: guide.ID, Datetime: at}); !errors.Is(err, ErrTourNotFound) {
		t.Errorf("unknown tour error = %v, want ErrTourNotFound", err)
	}
	if err := svc.Create(&models.Slot{TourID: tour.ID, GuideID: 9999, Datetime: at}); !errors.Is(err, ErrGuideNotFound) {
		t.Errorf("unknown guide error = %v, want ErrGuideNotFound", err)
	}
}

func TestSlotListAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)

	tour := createTestTour(t, db, "River Route", 2, 600)
	otherTour := createTestTour(t, db, "Other Route", 2, 600)
	guide := createTestGuide(t, db, "guide-hm")

	late := createTestSlot(t, db, tour.ID, guide.ID, nil, time.Date(2026, 10, 3, 15, 0, 0, 0, time.UTC))
	early := createTestSlot(t, db, tour.ID, guide.ID, nil, time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC))
	booked := createTestSlot(t, db, tour.ID, guide.ID, nil, time.Date(2026, 10, 2, 12, 0, 0, 0, time.UTC))
	createTestSlot(t, db, otherTour.ID, guide.ID, nil, time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC))

	if err := db.Model(&models.Slot{}).Where("id = ?", booked.ID).Update("is_booked", true).Error; err != nil {
		t.Fatal(err)
	}

	slots, err := svc.ListAvailable(tour.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if slots[0].ID != early.ID || slots[1].ID != late.ID {
		t.Errorf("slots not ordered earliest first: got %d, %d", slots[0].ID, slots[1].ID)
	}
	for _, s := range slots {
		if s.IsBooked {
			t.Errorf("booked slot %d leaked into available list", s.ID)
		}
	}
}

func TestSlotUpdateBooked(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)

	tour := createTestTour(t, db, "Canal Loop", 1, 400)
	guide := createTestGuide(t, db, "guide-iv")
	slot := createTestSlot(t, db, tour.ID, guide.ID, nil, time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC))

	if err := db.Model(&models.Slot{}).Where("id = ?", slot.ID).Update("is_booked", true).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.Update(slot.ID, guide.ID, nil, time.Date(2026, 10, 6, 9, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Update on booked slot error = %v, want ErrSlotUnavailable", err)
	}

	if _, err := svc.Update(9999, guide.ID, nil, time.Now()); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("Update on missing slot error = %v, want ErrSlotNotFound", err)
	}
}

func TestSlotDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)

	tour := createTestTour(t, db, "Short Spin", 1, 300)
	guide := createTestGuide(t, db, "guide-jo")
	slot := createTestSlot(t, db, tour.ID, guide.ID, nil, time.Date(2026, 10, 7, 9, 0, 0, 0, time.UTC))

	if err := svc.Delete(slot.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(slot.ID); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("second Delete error = %v, want ErrSlotNotFound", err)
	}
}

func TestCreateWeeklySlotsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)

	tour := createTestTour(t, db, "Morning Commute", 1, 250)
	guide := createTestGuide(t, db, "guide-kl")

	created, err := svc.CreateWeeklySlots(tour.ID, guide.ID, "09:30", 7)
	if err != nil {
		t.Fatalf("CreateWeeklySlots failed: %v", err)
	}
	if created != 7 {
		t.Fatalf("first run created %d slots, want 7", created)
	}

	created, err = svc.CreateWeeklySlots(tour.ID, guide.ID, "09:30", 7)
	if err != nil {
		t.Fatalf("second CreateWeeklySlots failed: %v", err)
	}
	if created != 0 {
		t.Errorf("second run created %d slots, want 0", created)
	}
	if n := countRows(t, db, &models.Slot{}); n != 7 {
		t.Errorf("total slots = %d, want 7", n)
	}

	// A different time of day is a fresh batch.
	created, err = svc.CreateWeeklySlots(tour.ID, guide.ID, "14:00", 7)
	if err != nil {
		t.Fatal(err)
	}
	if created != 7 {
		t.Errorf("new time of day created %d slots, want 7", created)
	}
}

func TestCreateWeeklySlotsDefaultsAndValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)

	tour := createTestTour(t, db, "Evening Ride", 2, 500)
	guide := createTestGuide(t, db, "guide-lm")

	// days <= 0 falls back to a full week.
	created, err := svc.CreateWeeklySlots(tour.ID, guide.ID, "18:00", 0)
	if err != nil {
		t.Fatal(err)
	}
	if created != 7 {
		t.Errorf("created %d slots, want 7", created)
	}

	if _, err := svc.CreateWeeklySlots(tour.ID, guide.ID, "25:00", 7); err == nil {
		t.Error("expected error for invalid time of day")
	}
	if _, err := svc.CreateWeeklySlots(9999, guide.ID, "10:00", 7); !errors.Is(err, ErrTourNotFound) {
		t.Errorf("unknown tour error = %v, want ErrTourNotFound", err)
	}
	if _, err := svc.CreateWeeklySlots(tour.ID, 9999, "10:00", 7); !errors.Is(err, ErrGuideNotFound) {
		t.Errorf("unknown guide error = %v, want ErrGuideNotFound", err)
	}
}
