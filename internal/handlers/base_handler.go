package handlers

import (
	"context"
	"net/http"

	"devjobs_backend/internal/logger"
	"devjobs_backend/internal/middleware"
	"devjobs_backend/internal/sessions"
	"devjobs_backend/internal/validator"
	"devjobs_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// normalizable is implemented by form DTOs that sanitize themselves before
// validation.
type normalizable interface {
	Normalize()
}

// CookieConfig carries the session cookie settings shared by every handler.
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

// FlashQueue is the sink for one-shot user notices; *sessions.FlashStore
// satisfies it.
type FlashQueue interface {
	Add(ctx context.Context, sessionID, category, message string) error
	Drain(ctx context.Context, sessionID string) ([]sessions.FlashMessage, error)
}

type BaseHandler struct {
	validator *validator.Validator
	flashes   FlashQueue
	cookie    CookieConfig
}

func NewBaseHandler(v *validator.Validator, flashes FlashQueue, cookie CookieConfig) *BaseHandler {
	return &BaseHandler{
		validator: v,
		flashes:   flashes,
		cookie:    cookie,
	}
}

// BindAndValidateForm binds the urlencoded or multipart form, sanitizes the
// DTO and runs every validation rule. A violation answers 400 with the full
// list of messages so the form can surface all problems at once.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind form body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Formulario inválido"))
		return false
	}

	if n, ok := obj.(normalizable); ok {
		n.Normalize()
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Messages()))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError renders a service error as the standard JSON envelope.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// FlashAndRedirect queues a one-shot message for the session and answers 303
// so the browser re-fetches the target with GET.
func (h *BaseHandler) FlashAndRedirect(c *gin.Context, category, message, location string) {
	sessionID := h.ensureFlashSession(c)
	if err := h.flashes.Add(c.Request.Context(), sessionID, category, message); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to queue flash message", err)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// FlashServiceError turns a user-level service error into a flash plus a 303
// back to the form. Internal errors still come back as a JSON 500.
func (h *BaseHandler) FlashServiceError(c *gin.Context, err error, backTo string) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.HTTPCode >= http.StatusInternalServerError {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxWarn(c.Request.Context(), "request rejected",
		"error", appErr.Message,
		"path", c.Request.URL.Path,
	)
	h.FlashAndRedirect(c, "error", appErr.Message, backTo)
}

// SetSessionCookie installs the login token as the session cookie.
func (h *BaseHandler) SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

// ClearSessionCookie drops the session cookie on logout.
func (h *BaseHandler) ClearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

// ensureFlashSession returns the token flash messages are keyed under.
// Anonymous visitors get a cookie minted on the spot; it carries no identity,
// it only ties their next page load to the queued messages.
func (h *BaseHandler) ensureFlashSession(c *gin.Context) string {
	if token := middleware.GetSessionToken(c); token != "" {
		return token
	}

	token := uuid.NewString()
	h.SetSessionCookie(c, token)
	c.Set("sessionToken", token)
	return token
}

// Messages drains the pending flash messages for the session.
func (h *BaseHandler) Messages(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"mensajes": []sessions.FlashMessage{}})
		return
	}

	messages, err := h.flashes.Drain(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensajes": messages})
}
