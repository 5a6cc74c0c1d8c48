package usecase

import (
	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/repository"
)

// deviceService implements DeviceService.
type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new instance of deviceService.
func NewDeviceService(deviceRepo repository.DeviceRepository) DeviceService {
	return &deviceService{deviceRepo: deviceRepo}
}

func (s *deviceService) RegisterDevice(name, deviceType, platform, username string) (*domain.DeviceEntity, error) {
	// Pre-check alongside the repository's own guard and the store index.
	existing, err := s.deviceRepo.FindByNameAndUser(name, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.DuplicateDevice(name, username)
	}

	return s.deviceRepo.Add(&domain.DeviceEntity{
		Name:       name,
		DeviceType: deviceType,
		Platform:   platform,
		Username:   username,
		IsActive:   true,
	})
}

func (s *deviceService) GetUserDevices(username string) ([]*domain.DeviceEntity, error) {
	return s.deviceRepo.FindByUser(username)
}

func (s *deviceService) GetDeviceByID(id uint) (*domain.DeviceEntity, error) {
	device, err := s.deviceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.NotFoundf("device with id %d", id)
	}
	return device, nil
}

func (s *deviceService) UpdateDevice(id uint, req *dto.UpdateDeviceRequest) (*domain.DeviceEntity, error) {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return nil, err
	}

	// The uniqueness constraint is re-checked only when the name changes.
	if req.Name != nil && *req.Name != device.Name {
		existing, err := s.deviceRepo.FindByNameAndUser(*req.Name, device.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.DuplicateDevice(*req.Name, device.Username)
		}
	}

	if req.Name != nil {
		device.Name = *req.Name
	}
	if req.DeviceType != nil {
		device.DeviceType = *req.DeviceType
	}
	if req.Platform != nil {
		device.Platform = *req.Platform
	}
	if req.IsActive != nil {
		device.IsActive = *req.IsActive
	}

	return s.deviceRepo.Update(device)
}

// DeactivateDevice is a partial update: the entity is fetched first and only
// the active flag changes.
func (s *deviceService) DeactivateDevice(id uint) (*domain.DeviceEntity, error) {
	inactive := false
	return s.UpdateDevice(id, &dto.UpdateDeviceRequest{IsActive: &inactive})
}

func (s *deviceService) DeleteDevice(id uint) error {
	if _, err := s.GetDeviceByID(id); err != nil {
		return err
	}
	return s.deviceRepo.DeleteByID(id)
}
