package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/usecase"
)

// SessionHandler handles session lifecycle HTTP requests.
type SessionHandler struct {
	sessionService usecase.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService usecase.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSession opens a session for the authenticated user.
// POST /api/profile/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.CreateSession(req.SessionToken, c.GetString("username"),
		req.DeviceName, req.IPAddress, req.UserAgent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListSessions returns the authenticated user's sessions, optionally only
// the active ones.
// GET /api/profile/sessions/list?active=true
func (h *SessionHandler) ListSessions(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	sessions, err := h.sessionService.GetUserSessions(c.GetString("username"), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// TouchSession refreshes the session's last-activity timestamp.
// POST /api/profile/sessions/:token/activity
func (h *SessionHandler) TouchSession(c *gin.Context) {
	session, err := h.ownedSession(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.sessionService.UpdateSessionActivity(session.SessionToken); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "activity updated"})
}

// DeactivateSession marks the session inactive.
// POST /api/profile/sessions/:token/deactivate
func (h *SessionHandler) DeactivateSession(c *gin.Context) {
	session, err := h.ownedSession(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.sessionService.DeactivateSession(session.SessionToken); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "session deactivated"})
}

// CleanupSessions deletes all sessions already marked inactive.
// POST /api/profile/sessions/cleanup
func (h *SessionHandler) CleanupSessions(c *gin.Context) {
	removed, err := h.sessionService.CleanupInactiveSessions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ownedSession loads the session from the :token parameter and verifies it
// belongs to the authenticated user.
func (h *SessionHandler) ownedSession(c *gin.Context) (*domain.SessionEntity, error) {
	token := c.Param("token")
	session, err := h.sessionService.GetSession(token)
	if err != nil {
		return nil, err
	}
	if session.Username != c.GetString("username") {
		return nil, domain.NotFoundf("session with token %q", token)
	}
	return session, nil
}
