package api

import (
	"net/http"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// CookieConfig describes the session cookie handed to browsers.
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

type AuthHandler struct {
	service auth.AuthUseCase
	cookie  CookieConfig
}

func NewAuthHandler(service auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: service, cookie: cookie}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/signup", h.signup)
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
}

func (h *AuthHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.POST("/login", h.adminLogin)
}

type sessionResponse struct {
	Message   string      `json:"message"`
	SessionID string      `json:"sessionId"`
	GuestID   string      `json:"guestId,omitempty"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
}

func (h *AuthHandler) signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *AuthHandler) login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sess, msg, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.setCookie(c, sess.ID, h.cookie.MaxAge)
	c.JSON(http.StatusOK, newSessionResponse(sess, msg))
}

func (h *AuthHandler) adminLogin(c *gin.Context) {
	var req auth.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sess, err := h.service.AdminLogin(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.setCookie(c, sess.ID, h.cookie.MaxAge)
	c.JSON(http.StatusOK, newSessionResponse(sess, "Welcome, admin"))
}

func (h *AuthHandler) logout(c *gin.Context) {
	if sess := currentSession(c); sess != nil {
		if err := h.service.Logout(c.Request.Context(), sess.ID); err != nil {
			writeError(c, err)
			return
		}
	}
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

func newSessionResponse(sess *domain.Session, msg string) sessionResponse {
	return sessionResponse{
		Message:   msg,
		SessionID: sess.ID,
		GuestID:   sess.GuestID,
		Name:      sess.Name,
		Email:     sess.Email,
		Role:      sess.Role,
	}
}
