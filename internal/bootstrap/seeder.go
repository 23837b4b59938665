package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
)

// AdminSeeder guarantees the default administrator account exists.
type AdminSeeder struct {
	users  repository.UserRepository
	hasher *security.PasswordHasher
	logger *zap.Logger
}

// NewAdminSeeder creates a new AdminSeeder instance.
func NewAdminSeeder(users repository.UserRepository, hasher *security.PasswordHasher, logger *zap.Logger) *AdminSeeder {
	return &AdminSeeder{users: users, hasher: hasher, logger: logger}
}

// EnsureDefaultAdmin creates the admin account if no account with the given
// username exists. An existing account is left completely untouched, in
// particular its password hash, so a restart never resets credentials an
// administrator has rotated.
func (s *AdminSeeder) EnsureDefaultAdmin(ctx context.Context, username, password, email string) error {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("lookup admin account: %w", err)
	}
	if existing != nil {
		s.logger.Debug("admin account already exists, seeding skipped",
			zap.String("username", username))
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     entity.RoleAdmin,
		IsActive: true,
	}

	created, err := s.users.CreateIfAbsent(ctx, admin)
	if err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	if created {
		s.logger.Info("default admin account created", zap.String("username", username))
	} else {
		// Another process won the first-boot race; the account exists.
		s.logger.Debug("admin account created concurrently", zap.String("username", username))
	}
	return nil
}

// SettingsSeeder guarantees the singleton company-settings document exists
// with every default field present.
type SettingsSeeder struct {
	settings repository.SettingsRepository
	logger   *zap.Logger
}

// NewSettingsSeeder creates a new SettingsSeeder instance.
func NewSettingsSeeder(settings repository.SettingsRepository, logger *zap.Logger) *SettingsSeeder {
	return &SettingsSeeder{settings: settings, logger: logger}
}

// EnsureCompanySettings creates the settings document from defaults, or
// adds only the top-level fields an existing document is missing.
func (s *SettingsSeeder) EnsureCompanySettings(ctx context.Context, defaults *entity.CompanySettings) error {
	outcome, err := s.settings.EnsureDefaults(ctx, defaults)
	if err != nil {
		return fmt.Errorf("seed company settings: %w", err)
	}

	switch {
	case outcome.Created:
		s.logger.Info("company settings created from defaults")
	case len(outcome.MergedFields) > 0:
		s.logger.Info("company settings completed with missing fields",
			zap.Strings("fields", outcome.MergedFields))
	default:
		s.logger.Debug("company settings already complete")
	}
	return nil
}

// CatalogSeeder guarantees the baseline pricing catalog entries exist.
type CatalogSeeder struct {
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

// NewCatalogSeeder creates a new CatalogSeeder instance.
func NewCatalogSeeder(catalog repository.CatalogRepository, logger *zap.Logger) *CatalogSeeder {
	return &CatalogSeeder{catalog: catalog, logger: logger}
}

// EnsureCatalog inserts the default categories and additional services that
// are not present yet, in the given order. Existing entries are never
// updated or deleted. An additional service is seeded independently of
// whether its category was inserted or already existed.
func (s *CatalogSeeder) EnsureCatalog(ctx context.Context, categories []entity.ServiceCategory, services []entity.AdditionalService) error {
	for i := range categories {
		category := categories[i]
		created, err := s.catalog.CreateCategoryIfAbsent(ctx, &category)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", category.Name, err)
		}
		if created {
			s.logger.Info("service category created", zap.String("name", category.Name))
		}
	}

	for i := range services {
		service := services[i]
		created, err := s.catalog.CreateServiceIfAbsent(ctx, &service)
		if err != nil {
			return fmt.Errorf("seed additional service %q: %w", service.Name, err)
		}
		if created {
			s.logger.Info("additional service created",
				zap.String("name", service.Name),
				zap.String("category", service.Category))
		}
	}
	return nil
}
