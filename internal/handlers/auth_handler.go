package handlers

import (
	"devjobs_backend/internal/middleware"
	"devjobs_backend/internal/services"
	"devjobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes wires the account and password-reset routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/crear-cuenta", h.Register)
	rg.POST("/iniciar-sesion", h.Login)
	rg.GET("/cerrar-sesion", h.Logout)
	rg.POST("/reestablecer-password", h.RequestPasswordReset)
	rg.POST("/reestablecer-password/:token", h.ResetPassword)
}

// Register handles POST /crear-cuenta.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		h.FlashServiceError(c, err, "/crear-cuenta")
		return
	}

	h.FlashAndRedirect(c, "correcto", "Usuario Creado Correctamente", middleware.LoginPath)
}

// Login handles POST /iniciar-sesion.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.FlashServiceError(c, err, middleware.LoginPath)
		return
	}

	h.SetSessionCookie(c, token)
	c.Set("sessionToken", token)
	h.FlashAndRedirect(c, "correcto", "Iniciaste Sesión Correctamente", "/administracion")
}

// Logout handles GET /cerrar-sesion.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.GetSessionToken(c); token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			h.HandleServiceError(c, err)
			return
		}
	}

	h.ClearSessionCookie(c)
	c.Set("sessionToken", "")
	h.FlashAndRedirect(c, "correcto", "Cerraste Sesión Correctamente", middleware.LoginPath)
}

// RequestPasswordReset handles POST /reestablecer-password.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.FlashServiceError(c, err, "/reestablecer-password")
		return
	}

	h.FlashAndRedirect(c, "correcto", "Revisa tu email por las instrucciones", middleware.LoginPath)
}

// ResetPassword handles POST /reestablecer-password/:token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req dto.NewPasswordRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(token, req.Password); err != nil {
		h.FlashServiceError(c, err, middleware.LoginPath)
		return
	}

	h.FlashAndRedirect(c, "correcto", "Password Modificado Correctamente", middleware.LoginPath)
}
