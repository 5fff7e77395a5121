package services

import (
	"veggieweek/apperr"
	"veggieweek/models"

	"gorm.io/gorm"
)

// LocalizedFood is a catalog entry with its name resolved for one language.
type LocalizedFood struct {
	ID                      uint   `json:"id"`
	Name                    string `json:"name"`
	IsVegetableForChallenge bool   `json:"is_vegetable_for_challenge"`
	IsPrebiotic             bool   `json:"is_prebiotic"`
	IsProbiotic             bool   `json:"is_probiotic"`
}

type CatalogService struct {
	db          *gorm.DB
	defaultLang string
}

func NewCatalogService(db *gorm.DB, defaultLang string) *CatalogService {
	return &CatalogService{db: db, defaultLang: defaultLang}
}

// ListFoods returns the whole catalog with names resolved for lang. An
// empty lang means the configured default.
func (s *CatalogService) ListFoods(lang string) ([]LocalizedFood, error) {
	if lang == "" {
		lang = s.defaultLang
	}

	var foods []models.Food
	if err := s.db.Preload("Translations").Order("id").Find(&foods).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "load catalog", err)
	}

	out := make([]LocalizedFood, 0, len(foods))
	for _, f := range foods {
		out = append(out, LocalizedFood{
			ID:                      f.ID,
			Name:                    LocalizedName(f, lang),
			IsVegetableForChallenge: f.IsVegetableForChallenge,
			IsPrebiotic:             f.IsPrebiotic,
			IsProbiotic:             f.IsProbiotic,
		})
	}
	return out, nil
}

// LocalizedName picks the translation for lang, falling back to the
// canonical name when none exists.
func LocalizedName(f models.Food, lang string) string {
	for _, t := range f.Translations {
		if t.LanguageCode == lang {
			return t.TranslatedName
		}
	}
	return f.Name
}
