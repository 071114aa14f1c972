// controllers/rental_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"biketours-backend/services"
	"biketours-backend/utils"
)

type RentalController struct {
	Rentals *services.RentalService
}

func NewRentalController(svc *services.RentalService) *RentalController {
	return &RentalController{Rentals: svc}
}

type RentalRequest struct {
	BikeID    uint      `json:"bike_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// CreateRental is the manual rental path: the price is computed from the
// bike's own rates, with the day-rate cutoff.
func (rc *RentalController) CreateRental(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rental, err := rc.Rentals.Create(userID, req.BikeID, req.StartTime, req.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rental)
}

// GetRentals pages through rentals; non-managers only see their own.
func (rc *RentalController) GetRentals(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	f := services.RentalFilter{
		UserSearch: strings.TrimSpace(c.Query("user_search")),
		BikeSearch: strings.TrimSpace(c.Query("bike_search")),
	}
	if !currentRole(c).CanManageRentals() {
		f.UserID = userID
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		f.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		f.PageSize = size
	}

	rentals, total, err := rc.Rentals.List(f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, rentals, total)
}

func (rc *RentalController) UpdateRental(c *gin.Context) {
	rentalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !currentRole(c).CanManageRentals() {
		utils.JSONError(c, http.StatusForbidden, "forbidden")
		return
	}
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rental, err := rc.Rentals.Update(rentalID, req.BikeID, req.StartTime, req.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rental)
}

func (rc *RentalController) DeleteRental(c *gin.Context) {
	rentalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	if err := rc.Rentals.Delete(rentalID, userID, currentRole(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": rentalID})
}
