package controllers

import (
	"net/http"
	"time"

	"veggieweek/middlewares"
	"veggieweek/models"
	"veggieweek/services"

	"github.com/gin-gonic/gin"
)

// ProgressController serves the weekly diversity views. The evaluation
// date is taken once per request here; everything below it is a pure
// function of that date.
type ProgressController struct {
	diversity *services.DiversityService
}

func NewProgressController(diversity *services.DiversityService) *ProgressController {
	return &ProgressController{diversity: diversity}
}

// GET /user_progress
func (ctl *ProgressController) VegetableProgress(c *gin.Context) {
	count, err := ctl.diversity.VegetableProgress(middlewares.UserID(c), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vegetable_count": count})
}

// GET /diversity_metrics
func (ctl *ProgressController) DiversityMetrics(c *gin.Context) {
	prebiotic, probiotic, err := ctl.diversity.Metrics(middlewares.UserID(c), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prebiotic_count": prebiotic, "probiotic_count": probiotic})
}

// GET /suggested_foods
func (ctl *ProgressController) SuggestedFoods(c *gin.Context) {
	foods, err := ctl.diversity.SuggestedFoods(middlewares.UserID(c), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /user_vegetables
func (ctl *ProgressController) Vegetables(c *gin.Context) {
	ctl.namedItems(c, services.TagVegetable)
}

// GET /user_prebiotics
func (ctl *ProgressController) Prebiotics(c *gin.Context) {
	ctl.namedItems(c, services.TagPrebiotic)
}

// GET /user_probiotics
func (ctl *ProgressController) Probiotics(c *gin.Context) {
	ctl.namedItems(c, services.TagProbiotic)
}

func (ctl *ProgressController) namedItems(c *gin.Context, tag func(models.Food) bool) {
	names, err := ctl.diversity.NamedItems(middlewares.UserID(c), time.Now(), tag)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}
