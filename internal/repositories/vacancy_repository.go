package repositories

import (
	"errors"

	"devjobs_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVacancyNotFound = errors.New("vacancy not found")

type VacancyRepository interface {
	FindByID(id string) (*models.Vacancy, error)
	FindBySlug(slug string) (*models.Vacancy, error)
	FindAll(limit, offset int) ([]models.Vacancy, error)
	FindByAuthor(authorID string) ([]models.Vacancy, error)
	Create(vacancy *models.Vacancy) error
	Update(vacancy *models.Vacancy) error
	Delete(id string) error

	// AddCandidate inserts a candidate row tied to the vacancy. Row-level
	// insert means concurrent applications cannot overwrite each other.
	AddCandidate(candidate *models.Candidate) error
	FindCandidates(vacancyID string) ([]models.Candidate, error)
}

type VacancyRepositoryImpl struct {
	db *gorm.DB
}

func NewVacancyRepository(db *gorm.DB) VacancyRepository {
	return &VacancyRepositoryImpl{db: db}
}

func (r *VacancyRepositoryImpl) FindByID(id string) (*models.Vacancy, error) {
	var vacancy models.Vacancy
	err := r.db.First(&vacancy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacancyNotFound
		}
		return nil, err
	}
	return &vacancy, nil
}

func (r *VacancyRepositoryImpl) FindBySlug(slug string) (*models.Vacancy, error) {
	var vacancy models.Vacancy
	err := r.db.Preload("Candidates").First(&vacancy, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacancyNotFound
		}
		return nil, err
	}
	return &vacancy, nil
}

func (r *VacancyRepositoryImpl) FindAll(limit, offset int) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&vacancies).Error
	return vacancies, err
}

func (r *VacancyRepositoryImpl) FindByAuthor(authorID string) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	err := r.db.Order("created_at DESC").Find(&vacancies, "author_id = ?", authorID).Error
	return vacancies, err
}

func (r *VacancyRepositoryImpl) Create(vacancy *models.Vacancy) error {
	return r.db.Create(vacancy).Error
}

func (r *VacancyRepositoryImpl) Update(vacancy *models.Vacancy) error {
	return r.db.Save(vacancy).Error
}

func (r *VacancyRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Vacancy{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVacancyNotFound
	}
	return nil
}

func (r *VacancyRepositoryImpl) AddCandidate(candidate *models.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *VacancyRepositoryImpl) FindCandidates(vacancyID string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.Order("created_at ASC").Find(&candidates, "vacancy_id = ?", vacancyID).Error
	return candidates, err
}
