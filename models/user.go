package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username            string `gorm:"uniqueIndex;not null" json:"username"`
    PasswordHash        string `gorm:"not null" json:"-"`
    FullName            string `json:"full_name"`
    WeeklyVegetableGoal int    `gorm:"not null;default:5" json:"weekly_vegetable_goal"`
}
