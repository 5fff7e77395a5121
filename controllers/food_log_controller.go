package controllers

import (
	"net/http"
	"strconv"
	"time"

	"veggieweek/apperr"
	"veggieweek/middlewares"
	"veggieweek/services"

	"github.com/gin-gonic/gin"
)

type FoodLogController struct {
	logs *services.FoodLogService
}

func NewFoodLogController(logs *services.FoodLogService) *FoodLogController {
	return &FoodLogController{logs: logs}
}

type AddLogInput struct {
	FoodID uint `json:"food_id" binding:"required"`
}

// POST /user_food_logs
func (ctl *FoodLogController) Create(c *gin.Context) {
	var input AddLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "food_id is required"))
		return
	}

	entryID, err := ctl.logs.AddEntry(middlewares.UserID(c), input.FoodID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry_id": entryID})
}

// GET /user_food_logs
func (ctl *FoodLogController) List(c *gin.Context) {
	entries, err := ctl.logs.ListEntries(middlewares.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /user_food_logs/:id
func (ctl *FoodLogController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid entry id"))
		return
	}

	if err := ctl.logs.DeleteEntry(middlewares.UserID(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "log entry deleted"})
}
