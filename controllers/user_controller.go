package controllers

import (
	"net/http"

	"veggieweek/apperr"
	"veggieweek/middlewares"
	"veggieweek/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GET /user/goal
func (ctl *UserController) GetGoal(c *gin.Context) {
	goal, err := ctl.users.GetGoal(middlewares.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly_vegetable_goal": goal})
}

type GoalInput struct {
	// Pointer so a missing field is distinguishable from zero; zero and
	// negative values are rejected by the service.
	Goal *int `json:"goal" binding:"required"`
}

// PUT /user/goal
func (ctl *UserController) UpdateGoal(c *gin.Context) {
	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "goal is required"))
		return
	}

	if err := ctl.users.UpdateGoal(middlewares.UserID(c), *input.Goal); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weekly_vegetable_goal": *input.Goal})
}
