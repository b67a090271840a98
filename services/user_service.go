package services

import (
	"errors"

	"github.com/Akoirala47/bett/config"
	"github.com/Akoirala47/bett/models"
	"github.com/Akoirala47/bett/utils"
)

// ErrLobbyFull: the product is built for exactly two participants. A third
// registration is refused up front instead of surfacing as an insert
// failure later.
var ErrLobbyFull = errors.New("lobby is full: this game is for two players")

func RegisterUser(email, password, displayName string) (*models.Profile, error) {
	var count int64
	if err := config.DB.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count >= 2 {
		return nil, ErrLobbyFull
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Email:       email,
		Password:    hashed,
		DisplayName: displayName,
	}
	if err := config.DB.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var profile models.Profile
	result := config.DB.Where("email = ?", email).First(&profile)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, profile.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(profile.ID, profile.Email)
}

func FindProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := config.DB.First(&profile, userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
