package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/usecase"
)

// DeviceHandler handles device-related HTTP requests.
type DeviceHandler struct {
	deviceService usecase.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(deviceService usecase.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// CreateDevice registers a device for the authenticated user.
// POST /api/profile/devices
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req dto.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device, err := h.deviceService.RegisterDevice(req.Name, req.DeviceType, req.Platform, c.GetString("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

// ListDevices returns all devices of the authenticated user.
// GET /api/profile/devices/list
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	devices, err := h.deviceService.GetUserDevices(c.GetString("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

// GetDevice returns one device, verifying ownership.
// GET /api/profile/devices/:id
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	device, err := h.ownedDevice(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

// UpdateDevice partially updates one device.
// PUT /api/profile/devices/:id
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	device, err := h.ownedDevice(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.deviceService.UpdateDevice(*device.DeviceID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeactivateDevice flips only the active flag.
// POST /api/profile/devices/:id/deactivate
func (h *DeviceHandler) DeactivateDevice(c *gin.Context) {
	device, err := h.ownedDevice(c)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.deviceService.DeactivateDevice(*device.DeviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDevice removes one device; sessions referencing it keep running
// with their device reference nullified by the store.
// DELETE /api/profile/devices/:id
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	device, err := h.ownedDevice(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.deviceService.DeleteDevice(*device.DeviceID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedDevice loads the device from the :id parameter and verifies it
// belongs to the authenticated user; foreign devices read as not found.
func (h *DeviceHandler) ownedDevice(c *gin.Context) (*domain.DeviceEntity, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, domain.NotFoundf("device %q", c.Param("id"))
	}

	device, err := h.deviceService.GetDeviceByID(uint(id))
	if err != nil {
		return nil, err
	}
	if device.Username != c.GetString("username") {
		return nil, domain.NotFoundf("device with id %d", id)
	}
	return device, nil
}
