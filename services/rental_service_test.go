package services

import (
	"errors"
	"testing"
	"time"

	"biketours-backend/models"
)

func TestRentalCreatePricesFromBike(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	user := createTestUser(t, db, "renter", models.RoleUser)
	bike := createTestBike(t, db, models.BikeStatusAvailable, 12, 50)

	start := time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC)

	// Three hours bills hourly.
	rental, err := svc.Create(user.ID, bike.ID, start, start.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rental.TotalPrice != 36 {
		t.Errorf("3h price = %v, want 36", rental.TotalPrice)
	}
	if rental.BikeID == nil || *rental.BikeID != bike.ID {
		t.Errorf("rental bike = %v, want %d", rental.BikeID, bike.ID)
	}

	// Past the cutoff it bills the day rate instead.
	rental, err = svc.Create(user.ID, bike.ID, start, start.Add(8*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if rental.TotalPrice != 50 {
		t.Errorf("8h price = %v, want day rate 50", rental.TotalPrice)
	}
}

func TestRentalCreateRejectsUnavailableBike(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	user := createTestUser(t, db, "renter", models.RoleUser)
	broken := createTestBike(t, db, models.BikeStatusBroken, 10, 40)
	inShop := createTestBike(t, db, models.BikeStatusMaintenance, 10, 40)

	start := time.Date(2026, 9, 21, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	for _, bikeID := range []uint{broken.ID, inShop.ID} {
		if _, err := svc.Create(user.ID, bikeID, start, end); !errors.Is(err, ErrBikeUnavailable) {
			t.Errorf("bike %d error = %v, want ErrBikeUnavailable", bikeID, err)
		}
	}
	if _, err := svc.Create(user.ID, 9999, start, end); !errors.Is(err, ErrBikeNotFound) {
		t.Errorf("unknown bike error = %v, want ErrBikeNotFound", err)
	}
	if n := countRows(t, db, &models.Rental{}); n != 0 {
		t.Errorf("expected no rentals, found %d", n)
	}
}

func TestRentalCreateInvalidInterval(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	user := createTestUser(t, db, "renter", models.RoleUser)
	bike := createTestBike(t, db, models.BikeStatusAvailable, 10, 40)

	start := time.Date(2026, 9, 22, 9, 0, 0, 0, time.UTC)

	if _, err := svc.Create(user.ID, bike.ID, start, start); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("zero interval error = %v, want ErrInvalidDuration", err)
	}
	if _, err := svc.Create(user.ID, bike.ID, start, start.Add(-time.Hour)); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative interval error = %v, want ErrInvalidDuration", err)
	}
}

func TestRentalListScoping(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	alice := createTestUser(t, db, "alice", models.RoleUser)
	bob := createTestUser(t, db, "bob", models.RoleUser)
	bike := createTestBike(t, db, models.BikeStatusAvailable, 10, 40)

	start := time.Date(2026, 9, 23, 9, 0, 0, 0, time.UTC)
	for i, uid := range []uint{alice.ID, alice.ID, bob.ID} {
		s := start.Add(time.Duration(i) * 24 * time.Hour)
		if _, err := svc.Create(uid, bike.ID, s, s.Add(time.Hour)); err != nil {
			t.Fatal(err)
		}
	}

	// Scoped to alice.
	rentals, total, err := svc.List(RentalFilter{UserID: alice.ID})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(rentals) != 2 {
		t.Fatalf("alice sees %d rentals (total %d), want 2", len(rentals), total)
	}
	for _, r := range rentals {
		if r.UserID != alice.ID {
			t.Errorf("foreign rental %d leaked into scoped list", r.ID)
		}
	}
	// Newest first.
	if !rentals[0].StartTime.After(rentals[1].StartTime) {
		t.Errorf("rentals not ordered newest first")
	}

	// Unrestricted view sees everything.
	_, total, err = svc.List(RentalFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("manager view total = %d, want 3", total)
	}

	// Username search narrows within the manager view.
	_, total, err = svc.List(RentalFilter{UserSearch: "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Errorf("search by username total = %d, want 1", total)
	}
}

func TestRentalUpdateReprices(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	user := createTestUser(t, db, "renter", models.RoleUser)
	bike := createTestBike(t, db, models.BikeStatusAvailable, 10, 40)
	pricier := createTestBike(t, db, models.BikeStatusAvailable, 20, 80)

	start := time.Date(2026, 9, 24, 9, 0, 0, 0, time.UTC)
	rental, err := svc.Create(user.ID, bike.ID, start, start.Add(2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if rental.TotalPrice != 20 {
		t.Fatalf("initial price = %v, want 20", rental.TotalPrice)
	}

	updated, err := svc.Update(rental.ID, pricier.ID, start, start.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.TotalPrice != 40 {
		t.Errorf("repriced total = %v, want 40", updated.TotalPrice)
	}
	if updated.BikeID == nil || *updated.BikeID != pricier.ID {
		t.Errorf("bike not switched: %v", updated.BikeID)
	}

	if _, err := svc.Update(9999, bike.ID, start, start.Add(time.Hour)); !errors.Is(err, ErrRentalNotFound) {
		t.Errorf("Update on missing rental error = %v, want ErrRentalNotFound", err)
	}
}

func TestRentalDeleteAuthorization(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	owner := createTestUser(t, db, "owner", models.RoleUser)
	stranger := createTestUser(t, db, "stranger", models.RoleUser)
	manager := createTestUser(t, db, "manager", models.RoleManager)
	bike := createTestBike(t, db, models.BikeStatusAvailable, 10, 40)

	start := time.Date(2026, 9, 25, 9, 0, 0, 0, time.UTC)

	mkRental := func() *models.Rental {
		r, err := svc.Create(owner.ID, bike.ID, start, start.Add(time.Hour))
		if err != nil {
			t.Fatal(err)
		}
		return r
	}

	r := mkRental()
	if err := svc.Delete(r.ID, stranger.ID, models.RoleUser); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger delete error = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(r.ID, owner.ID, models.RoleUser); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}

	r = mkRental()
	if err := svc.Delete(r.ID, manager.ID, models.RoleManager); err != nil {
		t.Errorf("manager delete failed: %v", err)
	}

	if err := svc.Delete(9999, owner.ID, models.RoleUser); !errors.Is(err, ErrRentalNotFound) {
		t.Errorf("missing rental delete error = %v, want ErrRentalNotFound", err)
	}
}
