package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/record"
	"profile-backend/internal/profile/repository"
)

// Full account lifecycle against real repositories: register, attach a
// device, log in, deactivate the device, delete the account.
func TestAccountLifecycle(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&record.User{}, &record.Device{}, &record.Session{}))

	users := NewUserService(repository.NewUserRepository(db), repository.NewSessionRepository(db), testConfig())
	devices := NewDeviceService(repository.NewDeviceRepository(db))
	sessions := NewSessionService(repository.NewSessionRepository(db))

	_, err = users.CreateUser("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	device, err := devices.RegisterDevice("Pixel 8", "phone", "android", "alice")
	require.NoError(t, err)

	_, err = devices.RegisterDevice("Pixel 8", "tablet", "android", "alice")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	ip := "10.0.0.1"
	agent := "Mozilla/5.0"
	resp, err := users.Login(&dto.LoginRequest{Username: "alice", Password: "secret123"}, &device.Name, &ip, &agent)
	require.NoError(t, err)

	authed, err := users.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", authed.Username)

	active, err := sessions.GetUserSessions("alice", true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.NotNil(t, active[0].DeviceName)
	assert.Equal(t, "Pixel 8", *active[0].DeviceName)
	require.NotNil(t, active[0].IPAddress)
	assert.Equal(t, ip, *active[0].IPAddress)

	// Deactivating the device flips only the flag; the session keeps its
	// device reference.
	deactivated, err := devices.DeactivateDevice(*device.DeviceID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
	assert.Equal(t, "Pixel 8", deactivated.Name)
	assert.Equal(t, "phone", deactivated.DeviceType)

	stillActive, err := sessions.GetUserSessions("alice", true)
	require.NoError(t, err)
	require.Len(t, stillActive, 1)
	require.NotNil(t, stillActive[0].DeviceName)

	require.NoError(t, sessions.LogoutUser("alice"))
	active, err = sessions.GetUserSessions("alice", true)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, users.DeleteUser("alice"))

	var deviceCount, sessionCount int64
	require.NoError(t, db.Model(&record.Device{}).Count(&deviceCount).Error)
	require.NoError(t, db.Model(&record.Session{}).Count(&sessionCount).Error)
	assert.Zero(t, deviceCount)
	assert.Zero(t, sessionCount)
}
