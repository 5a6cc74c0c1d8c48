package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"profile-backend/internal/profile/delivery"
	"profile-backend/internal/profile/schema"
	"profile-backend/internal/profile/usecase"
	"profile-backend/pkg/config"
)

// Handler wires the services and schema registry into the HTTP surface.
type Handler struct {
	userService    usecase.UserService
	deviceService  usecase.DeviceService
	sessionService usecase.SessionService
	adminHandler   *delivery.AdminHandler
	config         *config.Config
	logger         zerolog.Logger
}

// Curated admin overrides, merged over the generated configuration.
var adminOverrides = map[string]*schema.AdminConfig{
	"Device": {
		ListDisplay:  []string{"name", "device_type", "platform", "user_id", "is_active", "created_at"},
		ListFilter:   []string{"device_type", "platform", "is_active", "created_at"},
		SearchFields: []string{"name"},
	},
	"Session": {
		ListDisplay:  []string{"session_token", "user_id", "device_id", "ip_address", "is_active", "created_at", "last_activity"},
		ListFilter:   []string{"is_active", "created_at", "last_activity"},
		SearchFields: []string{"session_token", "ip_address", "user_agent"},
	},
}

func NewHandler(userService usecase.UserService, deviceService usecase.DeviceService,
	sessionService usecase.SessionService, registry *schema.Registry,
	cfg *config.Config, logger zerolog.Logger) (*Handler, error) {
	adminHandler, err := delivery.NewAdminHandler(registry, adminOverrides)
	if err != nil {
		return nil, err
	}

	return &Handler{
		userService:    userService,
		deviceService:  deviceService,
		sessionService: sessionService,
		adminHandler:   adminHandler,
		config:         cfg,
		logger:         logger,
	}, nil
}

func (h *Handler) Start(addr string) error {
	if h.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(delivery.Logger(h.logger), gin.Recovery())

	SetupRoutes(r, h.userService, h.deviceService, h.sessionService, h.adminHandler, h.config.AuthCookieMaxAge)

	return r.Run(addr)
}
