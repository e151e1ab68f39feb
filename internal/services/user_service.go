package services

import (
	"errors"

	"sublingo_go_backend/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateOrUpdateUser(externalID, email, name string) (*models.User, error) {
	user := models.User{
		ExternalID: externalID,
		Email:      email,
		Name:       name,
	}
	result := s.db.Where(models.User{ExternalID: externalID}).FirstOrCreate(&user)

	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func (s *UserService) GetByExternalID(externalID string) (*models.User, error) {
	var user models.User
	result := s.db.Where("external_id = ?", externalID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}
