// controllers/review_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biketours-backend/services"
	"biketours-backend/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: svc}
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	tourID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := rc.Reviews.Create(userID, tourID, req.Rating, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

func (rc *ReviewController) GetTourReviews(c *gin.Context) {
	tourID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	reviews, err := rc.Reviews.ListByTour(tourID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	avg, err := rc.Reviews.AverageRating(tourID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": avg,
	})
}
