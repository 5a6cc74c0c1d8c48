package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profile-backend/internal/profile/delivery"
	"profile-backend/internal/profile/usecase"
)

func SetupRoutes(r *gin.Engine, userService usecase.UserService, deviceService usecase.DeviceService,
	sessionService usecase.SessionService, adminHandler *delivery.AdminHandler, cookieMaxAge int) {
	authHandler := delivery.NewAuthHandler(userService, sessionService, cookieMaxAge)
	deviceHandler := delivery.NewDeviceHandler(deviceService)
	sessionHandler := delivery.NewSessionHandler(sessionService)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		profile := api.Group("/profile")
		{
			profile.POST("/register", authHandler.Register)
			profile.POST("/login", authHandler.Login)

			authed := profile.Group("")
			authed.Use(delivery.AuthMiddleware(userService))
			{
				authed.GET("/me", authHandler.Me)
				authed.POST("/change-password", authHandler.ChangePassword)
				authed.POST("/logout", authHandler.Logout)
				authed.DELETE("/delete", authHandler.DeleteUser)

				authed.POST("/devices", deviceHandler.CreateDevice)
				authed.GET("/devices/list", deviceHandler.ListDevices)
				authed.GET("/devices/:id", deviceHandler.GetDevice)
				authed.PUT("/devices/:id", deviceHandler.UpdateDevice)
				authed.DELETE("/devices/:id", deviceHandler.DeleteDevice)
				authed.POST("/devices/:id/deactivate", deviceHandler.DeactivateDevice)

				authed.POST("/sessions", sessionHandler.CreateSession)
				authed.GET("/sessions/list", sessionHandler.ListSessions)
				authed.POST("/sessions/:token/activity", sessionHandler.TouchSession)
				authed.POST("/sessions/:token/deactivate", sessionHandler.DeactivateSession)
				authed.POST("/sessions/cleanup", sessionHandler.CleanupSessions)
			}
		}

		// Generated schema + admin configuration for the external admin UI
		admin := api.Group("/admin")
		admin.Use(delivery.AuthMiddleware(userService))
		{
			admin.GET("/schema", adminHandler.GetSchemas)
		}
	}
}
