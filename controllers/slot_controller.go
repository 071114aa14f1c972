// controllers/slot_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"biketours-backend/models"
	"biketours-backend/services"
	"biketours-backend/utils"
)

type SlotController struct {
	Slots *services.SlotService
}

func NewSlotController(slots *services.SlotService) *SlotController {
	return &SlotController{Slots: slots}
}

// GetAvailableSlots lists the free slots of a tour, earliest first.
func (sc *SlotController) GetAvailableSlots(c *gin.Context) {
	tourID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	slots, err := sc.Slots.ListAvailable(tourID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slots)
}

type SlotRequest struct {
	GuideID  uint      `json:"guide_id" binding:"required"`
	BikeID   *uint     `json:"bike_id"`
	Datetime time.Time `json:"datetime" binding:"required"`
}

func (sc *SlotController) CreateSlot(c *gin.Context) {
	tourID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	slot := models.Slot{
		TourID:   tourID,
		GuideID:  req.GuideID,
		BikeID:   req.BikeID,
		Datetime: req.Datetime,
	}
	if err := sc.Slots.Create(&slot); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, slot)
}

func (sc *SlotController) UpdateSlot(c *gin.Context) {
	slotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	slot, err := sc.Slots.Update(slotID, req.GuideID, req.BikeID, req.Datetime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slot)
}

func (sc *SlotController) DeleteSlot(c *gin.Context) {
	slotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.Slots.Delete(slotID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": slotID})
}

type WeeklySlotsRequest struct {
	GuideID   uint   `json:"guide_id" binding:"required"`
	TimeOfDay string `json:"time_of_day" binding:"required"` // "HH:MM"
	Days      int    `json:"days"`
}

// CreateWeeklySlots bulk-creates one slot per day for the coming week.
func (sc *SlotController) CreateWeeklySlots(c *gin.Context) {
	tourID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req WeeklySlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := sc.Slots.CreateWeeklySlots(tourID, req.GuideID, req.TimeOfDay, req.Days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"created": created})
}
