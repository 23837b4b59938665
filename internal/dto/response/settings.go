package response

import (
	"time"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// PublicEmailInfo is the redacted email section exposed on the public
// settings endpoint: sender identity only, no SMTP credentials.
type PublicEmailInfo struct {
	FromEmail string `json:"fromEmail"`
	FromName  string `json:"fromName"`
}

// CompanySettingsResponse is the public view of the company settings
type CompanySettingsResponse struct {
	CompanyName        string             `json:"companyName"`
	Logo               string             `json:"logo,omitempty"`
	Addresses          []entity.Address   `json:"addresses"`
	Theme              entity.Theme       `json:"theme"`
	DefaultLanguage    string             `json:"defaultLanguage"`
	SupportedLanguages []string           `json:"supportedLanguages"`
	Tax                entity.TaxSettings `json:"tax"`
	Email              PublicEmailInfo    `json:"email"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// NewCompanySettingsResponse builds the redacted public view.
func NewCompanySettingsResponse(settings *entity.CompanySettings) *CompanySettingsResponse {
	return &CompanySettingsResponse{
		CompanyName:        settings.CompanyName,
		Logo:               settings.Logo,
		Addresses:          settings.Addresses,
		Theme:              settings.Theme,
		DefaultLanguage:    settings.DefaultLanguage,
		SupportedLanguages: settings.SupportedLanguages,
		Tax:                settings.Tax,
		Email: PublicEmailInfo{
			FromEmail: settings.Email.FromEmail,
			FromName:  settings.Email.FromName,
		},
		UpdatedAt: settings.UpdatedAt,
	}
}

// LogoResponse is returned after a logo upload
type LogoResponse struct {
	Logo string `json:"logo"`
}
