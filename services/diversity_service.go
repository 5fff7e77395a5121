package services

import (
	"time"

	"veggieweek/apperr"
	"veggieweek/models"

	"gorm.io/gorm"
)

// Tag predicates over catalog foods, used to select which flag a metric
// counts. A food carrying several tags counts toward each independently.
var (
	TagVegetable = func(f models.Food) bool { return f.IsVegetableForChallenge }
	TagPrebiotic = func(f models.Food) bool { return f.IsPrebiotic }
	TagProbiotic = func(f models.Food) bool { return f.IsProbiotic }
)

// DiversityService computes the weekly engagement metrics. It fetches the
// week's log rows once and does all set arithmetic in memory, so every
// result is a function of the evaluation date and the stored log only.
type DiversityService struct {
	db *gorm.DB
}

func NewDiversityService(db *gorm.DB) *DiversityService {
	return &DiversityService{db: db}
}

func (s *DiversityService) weekEntries(userID uint, eval time.Time) ([]models.FoodLogEntry, error) {
	start, end := WeekWindow(eval)
	var entries []models.FoodLogEntry
	err := s.db.Preload("Food").
		Where("user_id = ? AND date_consumed >= ? AND date_consumed < ?",
			userID, start, end.AddDate(0, 0, 1)).
		Find(&entries).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "load week entries", err)
	}
	return entries, nil
}

// VegetableProgress counts the distinct challenge vegetables the user
// logged during the week containing eval. Logging the same vegetable five
// times still counts once.
func (s *DiversityService) VegetableProgress(userID uint, eval time.Time) (int, error) {
	entries, err := s.weekEntries(userID, eval)
	if err != nil {
		return 0, err
	}
	return distinctCount(entries, TagVegetable), nil
}

// Metrics returns the distinct prebiotic and probiotic counts for the week
// containing eval.
func (s *DiversityService) Metrics(userID uint, eval time.Time) (prebiotic, probiotic int, err error) {
	entries, err := s.weekEntries(userID, eval)
	if err != nil {
		return 0, 0, err
	}
	return distinctCount(entries, TagPrebiotic), distinctCount(entries, TagProbiotic), nil
}

// SuggestedFoods returns every catalog food the user has not logged during
// the week containing eval, regardless of tags. A user with no logs this
// week gets the whole catalog back.
func (s *DiversityService) SuggestedFoods(userID uint, eval time.Time) ([]models.Food, error) {
	entries, err := s.weekEntries(userID, eval)
	if err != nil {
		return nil, err
	}
	var catalog []models.Food
	if err := s.db.Order("id").Find(&catalog).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "load catalog", err)
	}
	return complementFoods(catalog, entries), nil
}

// NamedItems returns the distinct names of the user's logged foods that
// match the tag, for the week containing eval.
func (s *DiversityService) NamedItems(userID uint, eval time.Time, tag func(models.Food) bool) ([]string, error) {
	entries, err := s.weekEntries(userID, eval)
	if err != nil {
		return nil, err
	}
	return distinctNames(entries, tag), nil
}

// distinctCount counts unique food ids among the entries whose food
// matches the tag.
func distinctCount(entries []models.FoodLogEntry, tag func(models.Food) bool) int {
	seen := make(map[uint]struct{})
	for _, e := range entries {
		if tag(e.Food) {
			seen[e.FoodID] = struct{}{}
		}
	}
	return len(seen)
}

func distinctNames(entries []models.FoodLogEntry, tag func(models.Food) bool) []string {
	seen := make(map[uint]struct{})
	names := make([]string, 0)
	for _, e := range entries {
		if !tag(e.Food) {
			continue
		}
		if _, dup := seen[e.FoodID]; dup {
			continue
		}
		seen[e.FoodID] = struct{}{}
		names = append(names, e.Food.Name)
	}
	return names
}

// complementFoods is the catalog minus the exact set of food ids present
// in entries.
func complementFoods(catalog []models.Food, entries []models.FoodLogEntry) []models.Food {
	eaten := make(map[uint]struct{}, len(entries))
	for _, e := range entries {
		eaten[e.FoodID] = struct{}{}
	}
	out := make([]models.Food, 0, len(catalog))
	for _, f := range catalog {
		if _, ok := eaten[f.ID]; !ok {
			out = append(out, f)
		}
	}
	return out
}
