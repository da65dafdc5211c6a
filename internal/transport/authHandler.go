package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"excursion-booking/config"
	"excursion-booking/internal/entity"
	"excursion-booking/internal/service"
	"excursion-booking/pkg/session"
)

type AuthHandler struct {
	authService service.AuthService
	sessions    session.Store
	cookieCfg   config.SessionConfig
}

func NewAuthHandler(authService service.AuthService, sessions session.Store, cookieCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cookieCfg:   cookieCfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	principal, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.establishSession(c, principal); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success:  true,
		Message:  "welcome, " + principal.Name,
		Data:     principal,
		Redirect: "/",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	principal, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.establishSession(c, principal); err != nil {
		respondError(c, err)
		return
	}

	// Admins land on the admin view, everyone else on the home view.
	redirect := "/"
	if principal.IsAdmin() {
		redirect = "/admin"
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success:  true,
		Message:  "welcome, " + principal.Name,
		Data:     principal,
		Redirect: redirect,
	})
}

// Logout clears the session unconditionally; an anonymous caller gets the
// same reply as a logged-in one.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieCfg.CookieName); err == nil && token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			logrus.Errorf("failed to delete session: %v", err)
		}
	}
	c.SetCookie(h.cookieCfg.CookieName, "", -1, "/", "", h.cookieCfg.CookieSecure, true)

	c.JSON(http.StatusOK, SuccessResponse{
		Success:  true,
		Message:  "logged out",
		Redirect: "/",
	})
}

func (h *AuthHandler) establishSession(c *gin.Context, principal *entity.Principal) error {
	token, err := h.sessions.Create(c.Request.Context(), principal)
	if err != nil {
		return err
	}
	c.SetCookie(
		h.cookieCfg.CookieName,
		token,
		int(h.cookieCfg.TTL.Seconds()),
		"/",
		"",
		h.cookieCfg.CookieSecure,
		true,
	)
	return nil
}
