package models

import "gorm.io/gorm"

// A catalog entry. The tag flags drive the weekly diversity metrics.
type Food struct {
    gorm.Model
    Name                    string `gorm:"not null" json:"name"`
    IsVegetableForChallenge bool   `json:"is_vegetable_for_challenge"`
    IsPrebiotic             bool   `json:"is_prebiotic"`
    IsProbiotic             bool   `json:"is_probiotic"`

    Translations []FoodTranslation `json:"-"`
}

// At most one translation per language per food.
type FoodTranslation struct {
    gorm.Model
    FoodID         uint   `gorm:"uniqueIndex:idx_food_language;not null" json:"food_id"`
    LanguageCode   string `gorm:"uniqueIndex:idx_food_language;type:varchar(8);not null" json:"language_code"`
    TranslatedName string `gorm:"not null" json:"translated_name"`
}
