package services

import (
	"errors"
	"strings"
	"time"

	"veggieweek/apperr"
	"veggieweek/models"
	"veggieweek/utils"

	"gorm.io/gorm"
)

// New accounts start with this weekly vegetable goal so the
// positive-integer invariant holds from creation.
const defaultWeeklyVegetableGoal = 5

type AuthService struct {
	db       *gorm.DB
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{db: db, secret: secret, tokenTTL: tokenTTL}
}

// Register creates the account and returns its id. Only the bcrypt hash of
// the password is stored.
func (s *AuthService) Register(username, password, fullName string) (uint, error) {
	username = strings.TrimSpace(username)
	fullName = strings.TrimSpace(fullName)
	if username == "" || password == "" || fullName == "" {
		return 0, apperr.New(apperr.KindInvalidInput, "username, password and full_name are required")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindStorage, "hash password", err)
	}

	user := models.User{
		Username:            username,
		PasswordHash:        hash,
		FullName:            fullName,
		WeeklyVegetableGoal: defaultWeeklyVegetableGoal,
	}

	// The unique index on username is the backstop for the duplicate
	// check; both run inside one transaction so a failed insert rolls back.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return apperr.Wrap(apperr.KindStorage, "check username", err)
		}
		if count > 0 {
			return apperr.New(apperr.KindConflict, "username already taken")
		}
		if err := tx.Create(&user).Error; err != nil {
			return apperr.Wrap(apperr.KindStorage, "create user", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// Login verifies the credentials and issues a signed token carrying the
// user id. Unknown username and wrong password produce the same error.
func (s *AuthService) Login(username, password string) (string, string, error) {
	if username == "" || password == "" {
		return "", "", apperr.New(apperr.KindInvalidInput, "username and password are required")
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperr.New(apperr.KindUnauthorized, "invalid credentials")
		}
		return "", "", apperr.Wrap(apperr.KindStorage, "find user", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", "", apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return "", "", apperr.Wrap(apperr.KindStorage, "sign token", err)
	}

	return token, user.FullName, nil
}
