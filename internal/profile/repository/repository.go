// Package repository is the only layer that talks to the persistence store.
// Find operations return (nil, nil) when nothing matches; operations that
// require an existing row report domain.ErrNotFound.
package repository

import "profile-backend/internal/profile/domain"

// UserRepository defines the persistence capabilities for user accounts.
type UserRepository interface {
	Add(user *domain.UserEntity) (*domain.UserEntity, error)
	FindByUsername(username string) (*domain.UserEntity, error)
	Delete(username string) error
	ChangePassword(username, newPassword string) error

	// Authenticate verifies the credentials against the stored hash and
	// returns domain.ErrInvalidCredentials on any mismatch.
	Authenticate(username, password string) (*domain.UserEntity, error)
}

// DeviceRepository defines the persistence capabilities for devices.
type DeviceRepository interface {
	Add(device *domain.DeviceEntity) (*domain.DeviceEntity, error)
	FindByID(id uint) (*domain.DeviceEntity, error)
	FindByUser(username string) ([]*domain.DeviceEntity, error)
	FindByNameAndUser(name, username string) (*domain.DeviceEntity, error)
	Update(device *domain.DeviceEntity) (*domain.DeviceEntity, error)
	DeleteByID(id uint) error
	SetActiveStatus(name, username string, isActive bool) error
}

// SessionRepository defines the persistence capabilities for sessions.
type SessionRepository interface {
	Add(session *domain.SessionEntity) (*domain.SessionEntity, error)
	FindByToken(token string) (*domain.SessionEntity, error)
	FindByUser(username string) ([]*domain.SessionEntity, error)
	FindActiveByUser(username string) ([]*domain.SessionEntity, error)
	UpdateLastActivity(token string) error
	Deactivate(token string) error
	DeactivateUserSessions(username string) error
	Delete(token string) error

	// DeleteInactiveSessions removes sessions already marked inactive and
	// returns how many were removed. It never inspects timestamps.
	DeleteInactiveSessions() (int64, error)
}
