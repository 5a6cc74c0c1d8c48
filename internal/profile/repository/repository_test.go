package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/record"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite keeps one database per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&record.User{}, &record.Device{}, &record.Session{}))
	return db
}

func addUser(t *testing.T, repo UserRepository, username string) *domain.UserEntity {
	t.Helper()
	user, err := repo.Add(&domain.UserEntity{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func addDevice(t *testing.T, repo DeviceRepository, username, name string) *domain.DeviceEntity {
	t.Helper()
	device, err := repo.Add(&domain.DeviceEntity{
		Name:       name,
		DeviceType: "phone",
		Platform:   "android",
		Username:   username,
		IsActive:   true,
	})
	require.NoError(t, err)
	return device
}

func addSession(t *testing.T, repo SessionRepository, username, token string, deviceName *string) *domain.SessionEntity {
	t.Helper()
	session, err := repo.Add(&domain.SessionEntity{
		SessionToken: token,
		Username:     username,
		DeviceName:   deviceName,
		IsActive:     true,
	})
	require.NoError(t, err)
	return session
}
