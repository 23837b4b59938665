package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/request"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
)

var (
	// ErrSettingsNotFound is returned when the settings document has not
	// been created yet.
	ErrSettingsNotFound = errors.New("company settings not found")

	// ErrNoLogo is returned when deleting a logo that is not set.
	ErrNoLogo = errors.New("no logo set")

	// ErrInvalidFileType is returned for uploads that are not an
	// accepted image format.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrFileTooLarge is returned for uploads above the size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// SettingsService manages the singleton company settings document
type SettingsService interface {
	// GetPublicSettings returns the redacted settings view, creating the
	// document from defaults when it does not exist yet.
	GetPublicSettings(ctx context.Context) (*response.CompanySettingsResponse, error)

	// GetSettings returns the full settings, including the email section.
	GetSettings(ctx context.Context) (*entity.CompanySettings, error)

	// UpdateCompanyInfo applies a partial update of the basic fields.
	UpdateCompanyInfo(ctx context.Context, req *request.UpdateCompanyRequest) error

	// UpdateTheme replaces the theme section.
	UpdateTheme(ctx context.Context, theme entity.Theme) error

	// UpdateTax replaces the tax section.
	UpdateTax(ctx context.Context, tax entity.TaxSettings) error

	// UpdateEmail replaces the email section.
	UpdateEmail(ctx context.Context, email entity.EmailSettings) error

	// UploadLogo validates and stores a new logo file and records its
	// public URL. The previous logo file is removed best-effort.
	UploadLogo(ctx context.Context, file *multipart.FileHeader) (string, error)

	// DeleteLogo removes the stored logo file and clears the logo field.
	DeleteLogo(ctx context.Context) error
}
