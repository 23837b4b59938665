package repository

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// SettingsRepository provides access to the singleton company settings.
type SettingsRepository interface {
	// Get returns the settings, or nil when the singleton has never
	// been seeded.
	Get(ctx context.Context) (*entity.CompanySettings, error)

	// EnsureDefaults creates the singleton or merges in missing
	// top-level fields; present fields are never overwritten.
	EnsureDefaults(ctx context.Context, defaults *entity.CompanySettings) (dao.SettingsSeedOutcome, error)

	UpdateCompanyInfo(ctx context.Context, name *string, addresses []entity.Address, defaultLanguage *string) error
	UpdateTheme(ctx context.Context, theme entity.Theme) error
	UpdateTax(ctx context.Context, tax entity.TaxSettings) error
	UpdateEmail(ctx context.Context, email entity.EmailSettings) error
	SetLogo(ctx context.Context, logoURL *string) error
}
