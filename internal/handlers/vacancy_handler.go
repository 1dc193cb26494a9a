package handlers

import (
	"net/http"

	"devjobs_backend/internal/middleware"
	"devjobs_backend/internal/services"
	"devjobs_backend/internal/services/dto"
	"devjobs_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	*BaseHandler
	vacancyService services.VacancyService
	uploadService  services.UploadService
}

func NewVacancyHandler(base *BaseHandler, vacancyService services.VacancyService, uploadService services.UploadService) *VacancyHandler {
	return &VacancyHandler{
		BaseHandler:    base,
		vacancyService: vacancyService,
		uploadService:  uploadService,
	}
}

// RegisterRoutes wires the posting routes. Browsing and applying are public;
// authoring requires a live session.
func (h *VacancyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/vacantes/:url", h.Show)
	rg.POST("/vacantes/:url", h.Apply)

	authed := rg.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/administracion", h.Dashboard)
		authed.POST("/vacantes/nueva", h.Create)
		authed.POST("/vacantes/editar/:url", h.Update)
		authed.DELETE("/vacantes/eliminar/:id", h.Delete)
		authed.GET("/candidatos/:id", h.Candidates)
	}
}

// List handles GET /, the public listing.
func (h *VacancyHandler) List(c *gin.Context) {
	vacancies, err := h.vacancyService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vacantes": vacancies})
}

// Show handles GET /vacantes/:url.
func (h *VacancyHandler) Show(c *gin.Context) {
	vacancy, err := h.vacancyService.GetBySlug(c.Param("url"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vacante": vacancy})
}

// Dashboard handles GET /administracion, the author's own postings.
func (h *VacancyHandler) Dashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	vacancies, err := h.vacancyService.ListByAuthor(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vacantes": vacancies})
}

// Create handles POST /vacantes/nueva.
func (h *VacancyHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req dto.VacancyRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	vacancy, err := h.vacancyService.Create(userID, &req)
	if err != nil {
		h.FlashServiceError(c, err, "/vacantes/nueva")
		return
	}

	h.FlashAndRedirect(c, "correcto", "Vacante Creada Correctamente", "/vacantes/"+vacancy.Slug)
}

// Update handles POST /vacantes/editar/:url.
func (h *VacancyHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	slug := c.Param("url")

	var req dto.VacancyRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	vacancy, err := h.vacancyService.Update(slug, userID, &req)
	if err != nil {
		h.FlashServiceError(c, err, "/vacantes/editar/"+slug)
		return
	}

	h.FlashAndRedirect(c, "correcto", "Vacante Actualizada Correctamente", "/vacantes/"+vacancy.Slug)
}

// Delete handles DELETE /vacantes/eliminar/:id. The client calls this from a
// script, so the answer is plain text rather than a redirect.
func (h *VacancyHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.vacancyService.Delete(c.Param("id"), userID); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode < http.StatusInternalServerError {
			c.String(appErr.HTTPCode, appErr.Message)
			return
		}
		c.String(http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	c.String(http.StatusOK, "Vacante eliminada correctamente")
}

// Apply handles POST /vacantes/:url, the public application form. The resume
// is mandatory and must pass the upload gatekeeper before the candidate row
// is recorded.
func (h *VacancyHandler) Apply(c *gin.Context) {
	slug := c.Param("url")
	backTo := "/vacantes/" + slug

	var req dto.ApplyRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	file, err := c.FormFile("cv")
	if err != nil {
		h.FlashAndRedirect(c, "error", "Es obligatorio subir su CV", backTo)
		return
	}

	outcome, err := h.uploadService.Accept(c.Request.Context(), file, services.PurposeResume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !outcome.Accepted() {
		h.FlashAndRedirect(c, "error", string(outcome.Rejection), backTo)
		return
	}

	if err := h.vacancyService.Apply(slug, &req, outcome.FileName); err != nil {
		h.FlashServiceError(c, err, backTo)
		return
	}

	h.FlashAndRedirect(c, "correcto", "Se envió tu Curriculum Correctamente", "/")
}

// Candidates handles GET /candidatos/:id; only the posting's author may look.
func (h *VacancyHandler) Candidates(c *gin.Context) {
	userID := middleware.GetUserID(c)

	candidates, err := h.vacancyService.Candidates(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidatos": candidates})
}
