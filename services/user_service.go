package services

import (
	"errors"

	"veggieweek/apperr"
	"veggieweek/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetGoal(userID uint) (int, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.New(apperr.KindNotFound, "user not found")
		}
		return 0, apperr.Wrap(apperr.KindStorage, "find user", err)
	}
	return user.WeeklyVegetableGoal, nil
}

// UpdateGoal sets the weekly vegetable goal. The goal is always a positive
// integer; anything else is rejected before touching storage.
func (s *UserService) UpdateGoal(userID uint, goal int) error {
	if goal < 1 {
		return apperr.New(apperr.KindInvalidInput, "goal must be a positive integer")
	}

	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("weekly_vegetable_goal", goal)
	if res.Error != nil {
		return apperr.Wrap(apperr.KindStorage, "update goal", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	return nil
}
