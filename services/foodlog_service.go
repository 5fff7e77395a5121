package services

import (
	"errors"
	"time"

	"veggieweek/apperr"
	"veggieweek/models"

	"gorm.io/gorm"
)

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// AddEntry records that the user ate the food at the given time. The food
// id is resolved against the catalog first so a dangling reference never
// reaches the log table.
func (s *FoodLogService) AddEntry(userID, foodID uint, consumedAt time.Time) (uint, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.New(apperr.KindInvalidInput, "food does not exist")
		}
		return 0, apperr.Wrap(apperr.KindStorage, "resolve food", err)
	}

	entry := models.FoodLogEntry{
		UserID:       userID,
		FoodID:       foodID,
		DateConsumed: consumedAt,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return 0, apperr.Wrap(apperr.KindStorage, "create log entry", err)
	}

	return entry.ID, nil
}

// DeleteEntry removes one of the user's own log entries. Ownership is
// checked before the delete: an entry owned by someone else is Forbidden
// no matter what.
func (s *FoodLogService) DeleteEntry(userID, entryID uint) error {
	var entry models.FoodLogEntry
	if err := s.db.First(&entry, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "log entry not found")
		}
		return apperr.Wrap(apperr.KindStorage, "find log entry", err)
	}

	if entry.UserID != userID {
		return apperr.New(apperr.KindForbidden, "log entry belongs to another user")
	}

	if err := s.db.Delete(&entry).Error; err != nil {
		return apperr.Wrap(apperr.KindStorage, "delete log entry", err)
	}
	return nil
}

// ListEntries returns the user's whole log, most recent first.
func (s *FoodLogService) ListEntries(userID uint) ([]models.FoodLogEntry, error) {
	var entries []models.FoodLogEntry
	err := s.db.Preload("Food").
		Where("user_id = ?", userID).
		Order("date_consumed desc, id desc").
		Find(&entries).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "list log entries", err)
	}
	return entries, nil
}
