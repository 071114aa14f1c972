// controllers/bike_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"biketours-backend/models"
	"biketours-backend/services"
	"biketours-backend/utils"
)

type BikeController struct {
	Bikes *services.BikeService
}

func NewBikeController(svc *services.BikeService) *BikeController {
	return &BikeController{Bikes: svc}
}

func (bc *BikeController) GetBikes(c *gin.Context) {
	f := services.BikeFilter{Type: c.Query("type")}
	if id, err := strconv.ParseUint(c.Query("status_id"), 10, 64); err == nil {
		f.StatusID = uint(id)
	}
	if id, err := strconv.ParseUint(c.Query("location_id"), 10, 64); err == nil {
		f.LocationID = uint(id)
	}
	bikes, err := bc.Bikes.List(f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bikes)
}

func (bc *BikeController) GetBike(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	bike, err := bc.Bikes.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bike)
}

type BikeRequest struct {
	Type            string  `json:"type" binding:"required,oneof=standard electric"`
	StatusID        uint    `json:"status_id" binding:"required"`
	RentalPriceHour float64 `json:"rental_price_hour"`
	RentalPriceDay  float64 `json:"rental_price_day"`
	LocationID      uint    `json:"location_id" binding:"required"`
}

func (bc *BikeController) CreateBike(c *gin.Context) {
	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	bike := models.Bike{
		Type:            req.Type,
		StatusID:        req.StatusID,
		RentalPriceHour: req.RentalPriceHour,
		RentalPriceDay:  req.RentalPriceDay,
		LocationID:      req.LocationID,
	}
	if err := bc.Bikes.Create(&bike); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bike)
}

func (bc *BikeController) UpdateBike(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	bike, err := bc.Bikes.Update(id, func(b *models.Bike) {
		b.Type = req.Type
		b.StatusID = req.StatusID
		b.RentalPriceHour = req.RentalPriceHour
		b.RentalPriceDay = req.RentalPriceDay
		b.LocationID = req.LocationID
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bike)
}

func (bc *BikeController) DeleteBike(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := bc.Bikes.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (bc *BikeController) GetBikeStatuses(c *gin.Context) {
	statuses, err := bc.Bikes.Statuses()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, statuses)
}
