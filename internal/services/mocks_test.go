package services

import (
	"context"
	"io"
	"sync"
	"time"

	"devjobs_backend/internal/models"
	"devjobs_backend/internal/sessions"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByResetToken(token string) (*models.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepository) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepository) Delete(userID string) error {
	return m.Called(userID).Error(0)
}

type mockVacancyRepository struct {
	mock.Mock
}

func (m *mockVacancyRepository) FindByID(id string) (*models.Vacancy, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vacancy), args.Error(1)
}

func (m *mockVacancyRepository) FindBySlug(slug string) (*models.Vacancy, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vacancy), args.Error(1)
}

func (m *mockVacancyRepository) FindAll(limit, offset int) ([]models.Vacancy, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vacancy), args.Error(1)
}

func (m *mockVacancyRepository) FindByAuthor(authorID string) ([]models.Vacancy, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vacancy), args.Error(1)
}

func (m *mockVacancyRepository) Create(vacancy *models.Vacancy) error {
	return m.Called(vacancy).Error(0)
}

func (m *mockVacancyRepository) Update(vacancy *models.Vacancy) error {
	return m.Called(vacancy).Error(0)
}

func (m *mockVacancyRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockVacancyRepository) AddCandidate(candidate *models.Candidate) error {
	return m.Called(candidate).Error(0)
}

func (m *mockVacancyRepository) FindCandidates(vacancyID string) ([]models.Candidate, error) {
	args := m.Called(vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

// mockStorage records saved and deleted paths instead of touching disk.
type mockStorage struct {
	mu      sync.Mutex
	saved   map[string][]byte
	deleted []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{saved: make(map[string][]byte)}
}

func (s *mockStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[path] = data
	return nil
}

func (s *mockStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, path)
	delete(s.saved, path)
	return nil
}

// mockEmailSender captures outgoing reset mails.
type mockEmailSender struct {
	mu         sync.Mutex
	resetMails []string // recipient addresses
	lastToken  string
}

func (m *mockEmailSender) Send(to, subject, body string) error {
	return nil
}

func (m *mockEmailSender) SendPasswordReset(to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetMails = append(m.resetMails, to)
	m.lastToken = token
	return nil
}

// memorySessionStore backs the authenticator in tests. TTLs are ignored.
type memorySessionStore struct {
	mu      sync.Mutex
	records map[string]string
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{records: make(map[string]string)}
}

func (s *memorySessionStore) Put(_ context.Context, token, record string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[token] = record
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[token]
	if !ok {
		return "", sessions.ErrSessionNotFound
	}
	return record, nil
}

func (s *memorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
	return nil
}
