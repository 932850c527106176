package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"jobly/internal/auth"
	dom "jobly/internal/domain"
	"jobly/internal/dto"

	"github.com/gin-gonic/gin"
)

// SessionStore is the subset of auth.Store the handler uses.
type SessionStore interface {
	Create(ctx context.Context, sess auth.Session) (string, error)
	Delete(ctx context.Context, id string) error
	TTL() time.Duration
}

// Accounts registers and authenticates users.
type Accounts interface {
	Register(ctx context.Context, u dom.User, password string) (dom.User, error)
	Authenticate(ctx context.Context, username, password string) (dom.User, error)
}

// AuthHandler handles login, register and logout.
type AuthHandler struct {
	sessions SessionStore
	accounts Accounts
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(sessions SessionStore, accounts Accounts) *AuthHandler {
	return &AuthHandler{sessions: sessions, accounts: accounts}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if !h.startSession(c, user) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": userToResponse(user)})
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "New account"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.accounts.Register(c.Request.Context(), dom.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if !h.startSession(c, user) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "user": userToResponse(user)})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
			log.Printf("delete session: %v", err)
		}
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) startSession(c *gin.Context, u dom.User) bool {
	sessionID, err := h.sessions.Create(c.Request.Context(), auth.Session{Username: u.Username, IsAdmin: u.IsAdmin})
	if err != nil {
		log.Printf("create session: %v", err)
		errorJSON(c, http.StatusInternalServerError, "failed to create session")
		return false
	}
	c.SetCookie(auth.SessionCookieName, sessionID, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	return true
}
