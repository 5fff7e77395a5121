package controllers

import (
	"net/http"

	"veggieweek/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	catalog *services.CatalogService
}

func NewFoodController(catalog *services.CatalogService) *FoodController {
	return &FoodController{catalog: catalog}
}

// GET /foods?lang=xx
func (ctl *FoodController) ListFoods(c *gin.Context) {
	foods, err := ctl.catalog.ListFoods(c.Query("lang"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}
