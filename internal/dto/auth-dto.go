package dto

import "github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	User         *entities.User `json:"user"`
}
