// controllers/guide_controller.go
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"biketours-backend/models"
	"biketours-backend/services"
	"biketours-backend/utils"
)

type GuideController struct {
	Guides *services.GuideService
}

func NewGuideController(svc *services.GuideService) *GuideController {
	return &GuideController{Guides: svc}
}

func (gc *GuideController) GetGuides(c *gin.Context) {
	guides, err := gc.Guides.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guides)
}

func (gc *GuideController) GetGuide(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	guide, err := gc.Guides.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guide)
}

type GuideRequest struct {
	UserID     uint     `json:"user_id" binding:"required"`
	Experience int      `json:"experience" binding:"min=0"`
	Languages  []string `json:"languages"`
	ResumeURL  string   `json:"resume_url"`
	ProfileURL string   `json:"profile_url"`
}

func languagesJSON(languages []string) datatypes.JSON {
	if len(languages) == 0 {
		return nil
	}
	raw, err := json.Marshal(languages)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func (gc *GuideController) CreateGuide(c *gin.Context) {
	var req GuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	guide := models.Guide{
		UserID:     req.UserID,
		Experience: req.Experience,
		Languages:  languagesJSON(req.Languages),
		ResumeURL:  req.ResumeURL,
		ProfileURL: req.ProfileURL,
	}
	if err := gc.Guides.Create(&guide); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guide)
}

func (gc *GuideController) UpdateGuide(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req GuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	guide, err := gc.Guides.Update(id, func(g *models.Guide) {
		g.Experience = req.Experience
		g.Languages = languagesJSON(req.Languages)
		g.ResumeURL = req.ResumeURL
		g.ProfileURL = req.ProfileURL
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guide)
}

type AssignTourRequest struct {
	TourID uint `json:"tour_id" binding:"required"`
}

func (gc *GuideController) AssignTour(c *gin.Context) {
	guideID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AssignTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := gc.Guides.AssignTour(guideID, req.TourID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"guide_id": guideID, "tour_id": req.TourID})
}

func (gc *GuideController) UnassignTour(c *gin.Context) {
	guideID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tourID, ok := parseIDParam(c, "tourId")
	if !ok {
		return
	}
	if err := gc.Guides.UnassignTour(guideID, tourID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"guide_id": guideID, "tour_id": tourID})
}
