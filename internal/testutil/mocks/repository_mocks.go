// Package mocks provides in-memory repository implementations for tests.
package mocks

import (
	"context"
	"sync"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User

	// Error injection
	GetByUsernameErr  error
	CreateIfAbsentErr error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*entity.User),
	}
}

func (r *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if r.GetByUsernameErr != nil {
		return nil, r.GetByUsernameErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[username]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

// CreateIfAbsent behaves like a unique index on username: the first insert
// wins and every later attempt reports (false, nil).
func (r *MockUserRepository) CreateIfAbsent(ctx context.Context, user *entity.User) (bool, error) {
	if r.CreateIfAbsentErr != nil {
		return false, r.CreateIfAbsentErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return false, nil
	}
	copied := *user
	r.users[user.Username] = &copied
	return true, nil
}

// Count returns the number of stored users.
func (r *MockUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// MockSettingsRepository is a mock implementation of SettingsRepository.
// It holds a single entity value; the mongo-level upsert and field merge
// are covered by the integration suite under tests/integration.
type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings *entity.CompanySettings

	// Error injection
	GetErr            error
	EnsureDefaultsErr error
	UpdateErr         error
}

var _ repository.SettingsRepository = (*MockSettingsRepository)(nil)

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (r *MockSettingsRepository) Get(ctx context.Context) (*entity.CompanySettings, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return nil, nil
	}
	copied := *r.settings
	return &copied, nil
}

func (r *MockSettingsRepository) EnsureDefaults(ctx context.Context, defaults *entity.CompanySettings) (dao.SettingsSeedOutcome, error) {
	if r.EnsureDefaultsErr != nil {
		return dao.SettingsSeedOutcome{}, r.EnsureDefaultsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		copied := *defaults
		r.settings = &copied
		return dao.SettingsSeedOutcome{Created: true}, nil
	}

	// An existing document is left alone. Partially filled documents only
	// occur at the storage level and are covered by the mongo integration
	// tests.
	return dao.SettingsSeedOutcome{}, nil
}

func (r *MockSettingsRepository) UpdateCompanyInfo(ctx context.Context, name *string, addresses []entity.Address, defaultLanguage *string) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return dao.ErrSettingsNotSeeded
	}
	if name != nil {
		r.settings.CompanyName = *name
	}
	if addresses != nil {
		r.settings.Addresses = addresses
	}
	if defaultLanguage != nil {
		r.settings.DefaultLanguage = *defaultLanguage
	}
	return nil
}

func (r *MockSettingsRepository) UpdateTheme(ctx context.Context, theme entity.Theme) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return dao.ErrSettingsNotSeeded
	}
	r.settings.Theme = theme
	return nil
}

func (r *MockSettingsRepository) UpdateTax(ctx context.Context, tax entity.TaxSettings) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return dao.ErrSettingsNotSeeded
	}
	r.settings.Tax = tax
	return nil
}

func (r *MockSettingsRepository) UpdateEmail(ctx context.Context, email entity.EmailSettings) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return dao.ErrSettingsNotSeeded
	}
	r.settings.Email = email
	return nil
}

func (r *MockSettingsRepository) SetLogo(ctx context.Context, logoURL *string) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return dao.ErrSettingsNotSeeded
	}
	if logoURL == nil {
		r.settings.Logo = ""
	} else {
		r.settings.Logo = *logoURL
	}
	return nil
}

// Seed installs a settings document directly.
func (r *MockSettingsRepository) Seed(settings *entity.CompanySettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *settings
	r.settings = &copied
}

// MockCatalogRepository is a mock implementation of CatalogRepository
type MockCatalogRepository struct {
	mu         sync.RWMutex
	categories []*entity.ServiceCategory
	services   []*entity.AdditionalService

	// Error injection
	CreateCategoryErr error
	CreateServiceErr  error
	ListErr           error
}

var _ repository.CatalogRepository = (*MockCatalogRepository)(nil)

func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{}
}

func (r *MockCatalogRepository) CreateCategoryIfAbsent(ctx context.Context, category *entity.ServiceCategory) (bool, error) {
	if r.CreateCategoryErr != nil {
		return false, r.CreateCategoryErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.Name == category.Name {
			return false, nil
		}
	}
	copied := *category
	r.categories = append(r.categories, &copied)
	return true, nil
}

func (r *MockCatalogRepository) CreateServiceIfAbsent(ctx context.Context, service *entity.AdditionalService) (bool, error) {
	if r.CreateServiceErr != nil {
		return false, r.CreateServiceErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.services {
		if existing.Name == service.Name && existing.Category == service.Category {
			return false, nil
		}
	}
	copied := *service
	r.services = append(r.services, &copied)
	return true, nil
}

func (r *MockCatalogRepository) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.ServiceCategory, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *MockCatalogRepository) ListServices(ctx context.Context) ([]*entity.AdditionalService, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.AdditionalService, len(r.services))
	copy(out, r.services)
	return out, nil
}
