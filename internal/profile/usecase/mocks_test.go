package usecase

import (
	"github.com/stretchr/testify/mock"

	"profile-backend/internal/profile/domain"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Add(user *domain.UserEntity) (*domain.UserEntity, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserEntity), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(username string) (*domain.UserEntity, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserEntity), args.Error(1)
}

func (m *mockUserRepo) Delete(username string) error {
	return m.Called(username).Error(0)
}

func (m *mockUserRepo) ChangePassword(username, newPassword string) error {
	return m.Called(username, newPassword).Error(0)
}

func (m *mockUserRepo) Authenticate(username, password string) (*domain.UserEntity, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserEntity), args.Error(1)
}

type mockDeviceRepo struct{ mock.Mock }

func (m *mockDeviceRepo) Add(device *domain.DeviceEntity) (*domain.DeviceEntity, error) {
	args := m.Called(device)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceEntity), args.Error(1)
}

func (m *mockDeviceRepo) FindByID(id uint) (*domain.DeviceEntity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceEntity), args.Error(1)
}

func (m *mockDeviceRepo) FindByUser(username string) ([]*domain.DeviceEntity, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DeviceEntity), args.Error(1)
}

func (m *mockDeviceRepo) FindByNameAndUser(name, username string) (*domain.DeviceEntity, error) {
	args := m.Called(name, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceEntity), args.Error(1)
}

func (m *mockDeviceRepo) Update(device *domain.DeviceEntity) (*domain.DeviceEntity, error) {
	args := m.Called(device)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceEntity), args.Error(1)
}

func (m *mockDeviceRepo) DeleteByID(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockDeviceRepo) SetActiveStatus(name, username string, isActive bool) error {
	return m.Called(name, username, isActive).Error(0)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Add(session *domain.SessionEntity) (*domain.SessionEntity, error) {
	args := m.Called(session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionEntity), args.Error(1)
}

func (m *mockSessionRepo) FindByToken(token string) (*domain.SessionEntity, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionEntity), args.Error(1)
}

func (m *mockSessionRepo) FindByUser(username string) ([]*domain.SessionEntity, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SessionEntity), args.Error(1)
}

func (m *mockSessionRepo) FindActiveByUser(username string) ([]*domain.SessionEntity, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SessionEntity), args.Error(1)
}

func (m *mockSessionRepo) UpdateLastActivity(token string) error {
	return m.Called(token).Error(0)
}

func (m *mockSessionRepo) Deactivate(token string) error {
	return m.Called(token).Error(0)
}

func (m *mockSessionRepo) DeactivateUserSessions(username string) error {
	return m.Called(username).Error(0)
}

func (m *mockSessionRepo) Delete(token string) error {
	return m.Called(token).Error(0)
}

func (m *mockSessionRepo) DeleteInactiveSessions() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
