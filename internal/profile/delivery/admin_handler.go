package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profile-backend/internal/profile/schema"
)

// AdminHandler serves the generated schemas and admin configuration for an
// external admin UI. Read-only; the registry never changes after startup.
type AdminHandler struct {
	registry *schema.Registry
	configs  map[string]schema.AdminConfig
}

// NewAdminHandler derives the admin configuration for every registered
// schema, applying the curated overrides.
func NewAdminHandler(registry *schema.Registry, overrides map[string]*schema.AdminConfig) (*AdminHandler, error) {
	configs := make(map[string]schema.AdminConfig)
	for _, name := range registry.Names() {
		ts, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		configs[name] = schema.GenerateAdminConfig(ts, overrides[name])
	}
	return &AdminHandler{registry: registry, configs: configs}, nil
}

// GetSchemas returns every generated schema with its admin configuration.
// GET /api/admin/schema
func (h *AdminHandler) GetSchemas(c *gin.Context) {
	out := make([]gin.H, 0, len(h.configs))
	for _, name := range h.registry.Names() {
		ts, err := h.registry.Get(name)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, gin.H{
			"schema": ts,
			"admin":  h.configs[name],
		})
	}
	c.JSON(http.StatusOK, out)
}
