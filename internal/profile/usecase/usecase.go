// Package usecase holds the business rules layered over the repositories.
// Services validate, enforce uniqueness ahead of the store, and compose
// repository operations; they never touch persisted records directly.
package usecase

import (
	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
)

// UserService defines the account-facing business operations.
type UserService interface {
	CreateUser(username, email, password string) (*domain.UserEntity, error)
	GetUser(username string) (*domain.UserEntity, error)

	// Login verifies the credentials, opens a session recording the client
	// context, and returns a signed access token.
	Login(req *dto.LoginRequest, deviceName, ipAddress, userAgent *string) (*dto.TokenResponse, error)

	// ValidateToken resolves an access token back to its user.
	ValidateToken(token string) (*domain.UserEntity, error)

	ChangePassword(username, newPassword string) error
	DeleteUser(username string) error
}

// DeviceService defines the device-facing business operations.
type DeviceService interface {
	// RegisterDevice rejects a duplicate (name, owner) pair with a
	// descriptive error before delegating to the repository.
	RegisterDevice(name, deviceType, platform, username string) (*domain.DeviceEntity, error)

	GetUserDevices(username string) ([]*domain.DeviceEntity, error)
	GetDeviceByID(id uint) (*domain.DeviceEntity, error)

	// UpdateDevice applies a partial update: nil request fields keep the
	// stored values, and the uniqueness constraint is re-checked only when
	// the name actually changes.
	UpdateDevice(id uint, req *dto.UpdateDeviceRequest) (*domain.DeviceEntity, error)

	DeactivateDevice(id uint) (*domain.DeviceEntity, error)
	DeleteDevice(id uint) error
}

// SessionService defines the session lifecycle operations. There is no
// time-based expiry policy here; if expiry is required, it belongs to an
// external collaborator.
type SessionService interface {
	CreateSession(token, username string, deviceName, ipAddress, userAgent *string) (*domain.SessionEntity, error)
	GetSession(token string) (*domain.SessionEntity, error)
	GetUserSessions(username string, activeOnly bool) ([]*domain.SessionEntity, error)
	UpdateSessionActivity(token string) error
	DeactivateSession(token string) error
	LogoutUser(username string) error

	// CleanupInactiveSessions removes only sessions already marked
	// inactive and reports how many were removed.
	CleanupInactiveSessions() (int64, error)
}
