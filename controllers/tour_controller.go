// controllers/tour_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"biketours-backend/models"
	"biketours-backend/services"
	"biketours-backend/utils"
)

type TourController struct {
	Tours   *services.TourService
	Reviews *services.ReviewService
}

func NewTourController(tours *services.TourService, reviews *services.ReviewService) *TourController {
	return &TourController{Tours: tours, Reviews: reviews}
}

func parseFloatQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseTimeQuery(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func parseBoolQuery(c *gin.Context, name string) *bool {
	switch c.Query(name) {
	case "1", "true":
		v := true
		return &v
	case "0", "false":
		v := false
		return &v
	}
	return nil
}

func filterFromQuery(c *gin.Context) services.TourFilter {
	f := services.TourFilter{
		Search:          strings.TrimSpace(c.Query("search")),
		Location:        strings.TrimSpace(c.Query("location")),
		NameStartsWith:  strings.TrimSpace(c.Query("name_starts_with")),
		ExcludeLocation: strings.TrimSpace(c.Query("exclude_location")),
		MinPrice:        parseFloatQuery(c, "min_price"),
		MaxPrice:        parseFloatQuery(c, "max_price"),
		CreatedAfter:    parseTimeQuery(c, "created_after"),
		CreatedBefore:   parseTimeQuery(c, "created_before"),
		ActiveOnly:      c.Query("active") == "1" || c.Query("active") == "true",
		HasGuide:        parseBoolQuery(c, "has_guide"),
		HasReviews:      parseBoolQuery(c, "has_reviews"),
	}
	for _, raw := range c.QueryArray("duration") {
		if d, err := strconv.Atoi(raw); err == nil {
			f.Durations = append(f.Durations, d)
		}
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		f.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		f.PageSize = size
	}
	return f
}

// GetTours lists the catalog with the filter options from the query string.
func (tc *TourController) GetTours(c *gin.Context) {
	tours, total, err := tc.Tours.List(filterFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, tours, total)
}

// GetTour returns one tour with its rating summary and similar tours.
func (tc *TourController) GetTour(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tour, err := tc.Tours.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	avg, err := tc.Reviews.AverageRating(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	highlyRated, err := tc.Reviews.IsHighlyRated(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	similar, err := tc.Tours.Similar(tour, 4)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"tour":            tour,
		"average_rating":  avg, // null when the tour has no reviews
		"is_highly_rated": highlyRated,
		"similar_tours":   similar,
	})
}

type TourRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Location    string  `json:"location"`
	IsActive    *bool   `json:"is_active"`
}

func (tc *TourController) CreateTour(c *gin.Context) {
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	tour := models.Tour{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Location:    req.Location,
		IsActive:    true,
	}
	if req.IsActive != nil {
		tour.IsActive = *req.IsActive
	}
	if err := tc.Tours.Create(&tour); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, tour)
}

func (tc *TourController) UpdateTour(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	tour, err := tc.Tours.Update(id, func(t *models.Tour) {
		t.Name = req.Name
		t.Description = req.Description
		t.Duration = req.Duration
		t.Price = req.Price
		t.Location = req.Location
		if req.IsActive != nil {
			t.IsActive = *req.IsActive
		}
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tour)
}

func (tc *TourController) DeleteTour(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := tc.Tours.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
