package dao

import (
	"context"
	"errors"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// ErrSettingsNotSeeded is returned by update operations when the singleton
// settings document does not exist yet.
var ErrSettingsNotSeeded = errors.New("company settings document does not exist")

// SettingsSeedOutcome describes what EnsureDefaults did to the singleton
// company-settings document.
type SettingsSeedOutcome struct {
	Created      bool
	MergedFields []string
}

// SettingsDAO provides access to the singleton company-settings document.
type SettingsDAO interface {
	// Find returns the settings document, or nil if it has never been
	// seeded.
	Find(ctx context.Context) (*entity.CompanySettings, error)

	// EnsureDefaults makes sure the singleton exists and carries every
	// default top-level field. An absent document is inserted whole; an
	// existing document only gains the fields it is missing; values
	// already present are never touched.
	EnsureDefaults(ctx context.Context, defaults *entity.CompanySettings) (SettingsSeedOutcome, error)

	// UpdateCompanyInfo applies a partial update of the basic company
	// fields. Nil pointers leave the stored value alone.
	UpdateCompanyInfo(ctx context.Context, name *string, addresses []entity.Address, defaultLanguage *string) error

	UpdateTheme(ctx context.Context, theme entity.Theme) error
	UpdateTax(ctx context.Context, tax entity.TaxSettings) error
	UpdateEmail(ctx context.Context, email entity.EmailSettings) error

	// SetLogo stores the relative logo URL; a nil value clears it.
	SetLogo(ctx context.Context, logoURL *string) error
}
