package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"devjobs_backend/internal/cache"
	"devjobs_backend/internal/models"
	"devjobs_backend/internal/repositories"
	"devjobs_backend/internal/services/dto"
	"devjobs_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const (
	listCacheKey = "vacantes:list"
	listCacheTTL = 30 * time.Second
	listPageSize = 100
)

type VacancyService interface {
	Create(authorID string, req *dto.VacancyRequest) (*models.Vacancy, error)
	Update(slug, requesterID string, req *dto.VacancyRequest) (*models.Vacancy, error)
	Delete(id, requesterID string) error
	GetBySlug(slug string) (*dto.VacancyResponse, error)
	List(ctx context.Context) ([]dto.VacancyResponse, error)
	ListByAuthor(authorID string) ([]dto.VacancyResponse, error)
	Apply(slug string, req *dto.ApplyRequest, cvFile string) error
	Candidates(id, requesterID string) ([]dto.CandidateResponse, error)
}

type VacancyServiceImpl struct {
	vacancyRepo repositories.VacancyRepository
	cache       *cache.Cache
}

func NewVacancyService(vacancyRepo repositories.VacancyRepository, c *cache.Cache) VacancyService {
	return &VacancyServiceImpl{
		vacancyRepo: vacancyRepo,
		cache:       c,
	}
}

// Create persists a new posting with the session identity as author and a
// slug derived from the title.
func (s *VacancyServiceImpl) Create(authorID string, req *dto.VacancyRequest) (*models.Vacancy, error) {
	skills, err := json.Marshal(req.SkillList())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	vacancy := &models.Vacancy{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		ContractType: req.ContractType,
		Salary:       req.Salary,
		Description:  req.Description,
		Skills:       datatypes.JSON(skills),
		Slug:         makeSlug(req.Title),
		AuthorID:     authorID,
	}

	if err := s.vacancyRepo.Create(vacancy); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.invalidateList()
	return vacancy, nil
}

// Update overwrites the posting's fields after verifying authorship. Author
// and slug stay fixed, so edit links remain valid.
func (s *VacancyServiceImpl) Update(slug, requesterID string, req *dto.VacancyRequest) (*models.Vacancy, error) {
	vacancy, err := s.vacancyRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVacancyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if vacancy.AuthorID != requesterID {
		return nil, apperrors.ErrNotVacancyAuthor
	}

	skills, err := json.Marshal(req.SkillList())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	vacancy.Title = req.Title
	vacancy.Company = req.Company
	vacancy.Location = req.Location
	vacancy.ContractType = req.ContractType
	vacancy.Salary = req.Salary
	vacancy.Description = req.Description
	vacancy.Skills = datatypes.JSON(skills)

	if err := s.vacancyRepo.Update(vacancy); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.invalidateList()
	return vacancy, nil
}

// Delete removes the posting after verifying the requester authored it.
func (s *VacancyServiceImpl) Delete(id, requesterID string) error {
	vacancy, err := s.vacancyRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVacancyNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if vacancy.AuthorID != requesterID {
		return apperrors.ErrNotVacancyAuthor
	}

	if err := s.vacancyRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	s.invalidateList()
	return nil
}

func (s *VacancyServiceImpl) GetBySlug(slug string) (*dto.VacancyResponse, error) {
	vacancy, err := s.vacancyRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVacancyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	response := toVacancyResponse(vacancy)
	return &response, nil
}

// List returns the public listing through a short-lived read-through cache.
func (s *VacancyServiceImpl) List(ctx context.Context) ([]dto.VacancyResponse, error) {
	load := func(ctx context.Context) ([]byte, error) {
		vacancies, err := s.vacancyRepo.FindAll(listPageSize, 0)
		if err != nil {
			return nil, err
		}
		responses := make([]dto.VacancyResponse, 0, len(vacancies))
		for i := range vacancies {
			responses = append(responses, toVacancyResponse(&vacancies[i]))
		}
		return json.Marshal(responses)
	}

	var raw []byte
	var err error
	if s.cache != nil {
		raw, err = s.cache.GetOrLoad(ctx, listCacheKey, listCacheTTL, load)
	} else {
		raw, err = load(ctx)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var responses []dto.VacancyResponse
	if err := json.Unmarshal(raw, &responses); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return responses, nil
}

// ListByAuthor returns the postings belonging to one account, for the
// administration page. Not cached; authors expect their edits immediately.
func (s *VacancyServiceImpl) ListByAuthor(authorID string) ([]dto.VacancyResponse, error) {
	vacancies, err := s.vacancyRepo.FindByAuthor(authorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.VacancyResponse, 0, len(vacancies))
	for i := range vacancies {
		responses = append(responses, toVacancyResponse(&vacancies[i]))
	}
	return responses, nil
}

// Apply appends a candidate to the posting. The candidate lands in its own
// row, so two simultaneous applications never overwrite each other.
func (s *VacancyServiceImpl) Apply(slug string, req *dto.ApplyRequest, cvFile string) error {
	vacancy, err := s.vacancyRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVacancyNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	candidate := &models.Candidate{
		VacancyID: vacancy.ID,
		Name:      req.Name,
		Email:     req.Email,
		CVFile:    cvFile,
	}

	if err := s.vacancyRepo.AddCandidate(candidate); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// Candidates lists the applications; only the author may see them.
func (s *VacancyServiceImpl) Candidates(id, requesterID string) ([]dto.CandidateResponse, error) {
	vacancy, err := s.vacancyRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVacancyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if vacancy.AuthorID != requesterID {
		return nil, apperrors.ErrNotVacancyAuthor
	}

	candidates, err := s.vacancyRepo.FindCandidates(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		responses = append(responses, dto.CandidateResponse{
			Name:   c.Name,
			Email:  c.Email,
			CVFile: c.CVFile,
		})
	}
	return responses, nil
}

func (s *VacancyServiceImpl) invalidateList() {
	if s.cache == nil {
		return
	}
	// Best effort; a stale listing expires on its own within the TTL.
	_ = s.cache.Invalidate(context.Background(), listCacheKey)
}

func toVacancyResponse(v *models.Vacancy) dto.VacancyResponse {
	var skills []string
	_ = json.Unmarshal(v.Skills, &skills)

	return dto.VacancyResponse{
		ID:           v.ID,
		Title:        v.Title,
		Company:      v.Company,
		Location:     v.Location,
		ContractType: v.ContractType,
		Salary:       v.Salary,
		Description:  v.Description,
		Skills:       skills,
		Slug:         v.Slug,
		AuthorID:     v.AuthorID,
		Candidates:   len(v.Candidates),
	}
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// makeSlug builds a URL-safe slug from the title plus a short random suffix
// to keep equal titles from colliding.
func makeSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "vacante"
	}
	return slug + "-" + randomSuffix()
}

func randomSuffix() string {
	bytes := make([]byte, 4)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
