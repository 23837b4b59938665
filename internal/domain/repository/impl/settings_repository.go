package impl

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
)

// settingsRepository implements repository.SettingsRepository by delegating
// to SettingsDAO.
type settingsRepository struct {
	dao dao.SettingsDAO
}

// NewSettingsRepository creates a new SettingsRepository instance.
func NewSettingsRepository(settingsDAO dao.SettingsDAO) repository.SettingsRepository {
	return &settingsRepository{dao: settingsDAO}
}

// Get retrieves the singleton company settings.
func (r *settingsRepository) Get(ctx context.Context) (*entity.CompanySettings, error) {
	return r.dao.Find(ctx)
}

// EnsureDefaults creates or field-merges the singleton document.
func (r *settingsRepository) EnsureDefaults(ctx context.Context, defaults *entity.CompanySettings) (dao.SettingsSeedOutcome, error) {
	return r.dao.EnsureDefaults(ctx, defaults)
}

// UpdateCompanyInfo applies a partial update of the basic company fields.
func (r *settingsRepository) UpdateCompanyInfo(ctx context.Context, name *string, addresses []entity.Address, defaultLanguage *string) error {
	return r.dao.UpdateCompanyInfo(ctx, name, addresses, defaultLanguage)
}

// UpdateTheme replaces the theme section.
func (r *settingsRepository) UpdateTheme(ctx context.Context, theme entity.Theme) error {
	return r.dao.UpdateTheme(ctx, theme)
}

// UpdateTax replaces the tax section.
func (r *settingsRepository) UpdateTax(ctx context.Context, tax entity.TaxSettings) error {
	return r.dao.UpdateTax(ctx, tax)
}

// UpdateEmail replaces the email section.
func (r *settingsRepository) UpdateEmail(ctx context.Context, email entity.EmailSettings) error {
	return r.dao.UpdateEmail(ctx, email)
}

// SetLogo stores the relative logo URL; nil clears it.
func (r *settingsRepository) SetLogo(ctx context.Context, logoURL *string) error {
	return r.dao.SetLogo(ctx, logoURL)
}
