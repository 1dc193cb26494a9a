package handlers

import (
	"net/http"

	"devjobs_backend/internal/middleware"
	"devjobs_backend/internal/services"
	"devjobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService   services.UserService
	uploadService services.UploadService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, uploadService services.UploadService) *UserHandler {
	return &UserHandler{
		BaseHandler:   base,
		userService:   userService,
		uploadService: uploadService,
	}
}

// RegisterRoutes wires the profile routes. Both require a live session.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	perfil := rg.Group("/editar-perfil")
	perfil.Use(middleware.RequireAuth())
	{
		perfil.GET("", h.Profile)
		perfil.POST("", h.EditProfile)
	}
}

// Profile handles GET /editar-perfil.
func (h *UserHandler) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario": dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
	}})
}

// EditProfile handles POST /editar-perfil. The multipart form may carry a new
// profile image under "imagen"; leaving it out keeps the current one.
func (h *UserHandler) EditProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	var newImage string
	if file, err := c.FormFile("imagen"); err == nil {
		outcome, err := h.uploadService.Accept(c.Request.Context(), file, services.PurposeProfileImage)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		if !outcome.Accepted() {
			h.FlashAndRedirect(c, "error", string(outcome.Rejection), "/editar-perfil")
			return
		}
		newImage = outcome.FileName
	}

	if _, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req, newImage); err != nil {
		h.FlashServiceError(c, err, "/editar-perfil")
		return
	}

	h.FlashAndRedirect(c, "correcto", "Cambios Guardados Correctamente", "/administracion")
}
