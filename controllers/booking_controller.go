// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biketours-backend/services"
	"biketours-backend/utils"
)

type BookingController struct {
	Reservations *services.ReservationService
}

func NewBookingController(svc *services.ReservationService) *BookingController {
	return &BookingController{Reservations: svc}
}

type BookSlotRequest struct {
	SlotID uint `json:"slot_id" binding:"required"`
}

// BookSlot books a slot of a tour for the authenticated user. Success
// returns the booking and rental identifiers; a slot already taken by a
// concurrent booking comes back as 409 slot_unavailable.
func (bc *BookingController) BookSlot(c *gin.Context) {
	tourID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	if !currentRole(c).CanBookTours() {
		utils.JSONError(c, http.StatusForbidden, "staff accounts cannot book tours")
		return
	}

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := bc.Reservations.BookSlot(userID, tourID, req.SlotID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, result)
}

// MyBookings lists the authenticated user's bookings.
func (bc *BookingController) MyBookings(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	bookings, err := bc.Reservations.BookingsForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
