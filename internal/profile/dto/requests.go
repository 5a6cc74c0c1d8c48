package dto

import "profile-backend/internal/profile/domain"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type TokenResponse struct {
	Token string             `json:"token"`
	User  *domain.UserEntity `json:"user"`
}

type CreateDeviceRequest struct {
	Name       string `json:"name" binding:"required"`
	DeviceType string `json:"device_type" binding:"required"`
	Platform   string `json:"platform" binding:"required"`
}

// UpdateDeviceRequest carries a partial update; nil fields keep the current
// value.
type UpdateDeviceRequest struct {
	Name       *string `json:"name,omitempty"`
	DeviceType *string `json:"device_type,omitempty"`
	Platform   *string `json:"platform,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type CreateSessionRequest struct {
	SessionToken string  `json:"session_token" binding:"required"`
	DeviceName   *string `json:"device_name,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
	UserAgent    *string `json:"user_agent,omitempty"`
}
