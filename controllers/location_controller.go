// controllers/location_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biketours-backend/models"
	"biketours-backend/services"
	"biketours-backend/utils"
)

type LocationController struct {
	Locations *services.LocationService
}

func NewLocationController(svc *services.LocationService) *LocationController {
	return &LocationController{Locations: svc}
}

func (lc *LocationController) GetLocations(c *gin.Context) {
	locations, err := lc.Locations.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, locations)
}

type LocationRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (lc *LocationController) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	loc := models.Location{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := lc.Locations.Create(&loc); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, loc)
}

func (lc *LocationController) UpdateLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	loc, err := lc.Locations.Update(id, func(l *models.Location) {
		l.Name = req.Name
		l.Address = req.Address
		l.Latitude = req.Latitude
		l.Longitude = req.Longitude
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, loc)
}

func (lc *LocationController) DeleteLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := lc.Locations.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
