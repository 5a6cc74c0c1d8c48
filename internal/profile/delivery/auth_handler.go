package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/usecase"
)

// AuthHandler handles account-related HTTP requests.
type AuthHandler struct {
	userService    usecase.UserService
	sessionService usecase.SessionService
	cookieMaxAge   int
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService usecase.UserService, sessionService usecase.SessionService, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		cookieMaxAge:   cookieMaxAge,
	}
}

// Register creates a new user account.
// POST /api/profile/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and returns the access token, also placing it
// in an http-only cookie.
// POST /api/profile/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := c.ClientIP()
	userAgent := c.Request.UserAgent()
	var uaPtr *string
	if userAgent != "" {
		uaPtr = &userAgent
	}

	resp, err := h.userService.Login(&req, nil, &ip, uaPtr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie("auth_token", resp.Token, h.cookieMaxAge, "/", "", true, true)
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user.
// GET /api/profile/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.userService.GetUser(c.GetString("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword changes the authenticated user's password.
// POST /api/profile/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.GetString("username"), req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "password changed"})
}

// Logout deactivates all of the authenticated user's sessions.
// POST /api/profile/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessionService.LogoutUser(c.GetString("username")); err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"detail": "logged out"})
}

// DeleteUser removes the authenticated user's account; the store cascades
// to the user's devices and sessions.
// DELETE /api/profile/delete
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.GetString("username")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
