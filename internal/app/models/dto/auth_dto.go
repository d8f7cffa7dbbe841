package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Phone           string `json:"phone"`
	AttendanceYears string `json:"attendanceYears"`
	Department      string `json:"department"`
	AcademicLevel   string `json:"academicLevel"`
}

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID                   int64      `json:"id"`
	Email                string     `json:"email"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	Phone                *string    `json:"phone,omitempty"`
	Birthday             *time.Time `json:"birthday,omitempty"`
	AttendanceYears      *string    `json:"attendanceYears,omitempty"`
	ProfileImageURL      *string    `json:"profileImageUrl,omitempty"`
	Department           *string    `json:"department,omitempty"`
	AcademicLevel        *string    `json:"academicLevel,omitempty"`
	Role                 string     `json:"role"`
	CanPostAnnouncements bool       `json:"canPostAnnouncements"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// ToUserResponse maps a user model to its API representation
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:                   user.ID,
		Email:                user.Email,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		Phone:                user.Phone,
		Birthday:             user.Birthday,
		AttendanceYears:      user.AttendanceYears,
		ProfileImageURL:      user.ProfileImageURL,
		Department:           user.Department,
		AcademicLevel:        user.AcademicLevel,
		Role:                 string(user.Role),
		CanPostAnnouncements: user.CanPostAnnouncements,
		CreatedAt:            user.CreatedAt,
	}
}
