package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"devjobs_backend/internal/models"
	"devjobs_backend/internal/services/dto"
	"devjobs_backend/internal/sessions"
	"devjobs_backend/internal/validator"
	"devjobs_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeFlashQueue collects queued notices in memory.
type fakeFlashQueue struct {
	added []sessions.FlashMessage
}

func (f *fakeFlashQueue) Add(_ context.Context, _, category, message string) error {
	f.added = append(f.added, sessions.FlashMessage{Category: category, Message: message})
	return nil
}

func (f *fakeFlashQueue) Drain(_ context.Context, _ string) ([]sessions.FlashMessage, error) {
	messages := f.added
	f.added = nil
	return messages, nil
}

type mockVacancyService struct {
	mock.Mock
}

func (m *mockVacancyService) Create(authorID string, req *dto.VacancyRequest) (*models.Vacancy, error) {
	args := m.Called(authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vacancy), args.Error(1)
}

func (m *mockVacancyService) Update(slug, requesterID string, req *dto.VacancyRequest) (*models.Vacancy, error) {
	args := m.Called(slug, requesterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vacancy), args.Error(1)
}

func (m *mockVacancyService) Delete(id, requesterID string) error {
	return m.Called(id, requesterID).Error(0)
}

func (m *mockVacancyService) GetBySlug(slug string) (*dto.VacancyResponse, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VacancyResponse), args.Error(1)
}

func (m *mockVacancyService) List(ctx context.Context) ([]dto.VacancyResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VacancyResponse), args.Error(1)
}

func (m *mockVacancyService) ListByAuthor(authorID string) ([]dto.VacancyResponse, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VacancyResponse), args.Error(1)
}

func (m *mockVacancyService) Apply(slug string, req *dto.ApplyRequest, cvFile string) error {
	return m.Called(slug, req, cvFile).Error(0)
}

func (m *mockVacancyService) Candidates(id, requesterID string) ([]dto.CandidateResponse, error) {
	args := m.Called(id, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CandidateResponse), args.Error(1)
}

func newDeleteRouter(svc *mockVacancyService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New(), nil, CookieConfig{Name: "devjobs_session"})
	handler := NewVacancyHandler(base, svc, nil)

	router := gin.New()
	router.DELETE("/vacantes/eliminar/:id", func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		handler.Delete(c)
	})
	return router
}

func TestDeleteVacancy_PlainTextResponses(t *testing.T) {
	t.Run("author gets confirmation text", func(t *testing.T) {
		svc := new(mockVacancyService)
		svc.On("Delete", "vac-1", "author-1").Return(nil)
		router := newDeleteRouter(svc, "author-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/vacantes/eliminar/vac-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Vacante eliminada correctamente", w.Body.String())
	})

	t.Run("non-author gets 403 text", func(t *testing.T) {
		svc := new(mockVacancyService)
		svc.On("Delete", "vac-1", "intruso").Return(apperrors.ErrNotVacancyAuthor)
		router := newDeleteRouter(svc, "intruso")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/vacantes/eliminar/vac-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "No eres el autor de esta vacante", w.Body.String())
	})

	t.Run("storage fault gets 500 text", func(t *testing.T) {
		svc := new(mockVacancyService)
		svc.On("Delete", "vac-1", "author-1").Return(assert.AnError)
		router := newDeleteRouter(svc, "author-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/vacantes/eliminar/vac-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error interno del servidor", w.Body.String())
	})
}

func TestApply_WithoutFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	flashes := &fakeFlashQueue{}
	base := NewBaseHandler(validator.New(), flashes, CookieConfig{Name: "devjobs_session"})

	svc := new(mockVacancyService)
	handler := NewVacancyHandler(base, svc, nil)

	router := gin.New()
	router.POST("/vacantes/:url", handler.Apply)

	form := url.Values{}
	form.Set("nombre", "Ana")
	form.Set("email", "ana@correo.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/vacantes/dev-go-abcd1234", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	// Bounced back to the posting; no candidate recorded.
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/vacantes/dev-go-abcd1234", w.Header().Get("Location"))
	svc.AssertNotCalled(t, "Apply")

	require.Len(t, flashes.added, 1)
	assert.Equal(t, "error", flashes.added[0].Category)
	assert.Equal(t, "Es obligatorio subir su CV", flashes.added[0].Message)
}

func TestShowVacancy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New(), nil, CookieConfig{Name: "devjobs_session"})

	t.Run("known slug", func(t *testing.T) {
		svc := new(mockVacancyService)
		svc.On("GetBySlug", "dev-go-abcd1234").Return(&dto.VacancyResponse{
			ID:    "vac-1",
			Title: "Desarrollador Go",
			Slug:  "dev-go-abcd1234",
		}, nil)
		handler := NewVacancyHandler(base, svc, nil)

		router := gin.New()
		router.GET("/vacantes/:url", handler.Show)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/vacantes/dev-go-abcd1234", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Desarrollador Go")
	})

	t.Run("unknown slug", func(t *testing.T) {
		svc := new(mockVacancyService)
		svc.On("GetBySlug", "no-existe").Return(nil, apperrors.ErrNotFound(assert.AnError))
		handler := NewVacancyHandler(base, svc, nil)

		router := gin.New()
		router.GET("/vacantes/:url", handler.Show)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/vacantes/no-existe", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
