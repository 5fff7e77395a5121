package models

import (
    "time"

    "gorm.io/gorm"
)

// One "I ate this" record. A user may log the same food many times per day;
// there is deliberately no uniqueness constraint.
type FoodLogEntry struct {
    gorm.Model
    UserID       uint      `gorm:"index;not null" json:"user_id"`
    FoodID       uint      `gorm:"not null" json:"food_id"`
    DateConsumed time.Time `gorm:"index;not null" json:"date_consumed"`

    Food Food `json:"food"`
}
