package request

import (
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// UpdateCompanyRequest is a partial update of the basic company fields.
// Nil fields are left unchanged; an empty string is a valid new value.
type UpdateCompanyRequest struct {
	CompanyName     *string          `json:"companyName"`
	Addresses       []entity.Address `json:"addresses"`
	DefaultLanguage *string          `json:"defaultLanguage"`
}

// UpdateThemeRequest replaces the theme colors
type UpdateThemeRequest struct {
	Primary   string `json:"primary" binding:"required"`
	Secondary string `json:"secondary" binding:"required"`
	Accent    string `json:"accent" binding:"required"`
}

// ToEntity converts the request to the theme entity.
func (r *UpdateThemeRequest) ToEntity() entity.Theme {
	return entity.Theme{Primary: r.Primary, Secondary: r.Secondary, Accent: r.Accent}
}

// UpdateTaxRequest replaces the tax settings
type UpdateTaxRequest struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate" binding:"gte=0,lte=1"`
	Label   string  `json:"label" binding:"required"`
}

// ToEntity converts the request to the tax settings entity.
func (r *UpdateTaxRequest) ToEntity() entity.TaxSettings {
	return entity.TaxSettings{Enabled: r.Enabled, Rate: r.Rate, Label: r.Label}
}

// UpdateEmailRequest replaces the email settings
type UpdateEmailRequest struct {
	SMTPHost     string `json:"smtpHost" binding:"required"`
	SMTPPort     int    `json:"smtpPort" binding:"required,gt=0"`
	SMTPUser     string `json:"smtpUser"`
	SMTPPassword string `json:"smtpPassword"`
	FromEmail    string `json:"fromEmail" binding:"required,email"`
	FromName     string `json:"fromName" binding:"required"`
	UseTLS       bool   `json:"useTLS"`
}

// ToEntity converts the request to the email settings entity.
func (r *UpdateEmailRequest) ToEntity() entity.EmailSettings {
	return entity.EmailSettings{
		SMTPHost:     r.SMTPHost,
		SMTPPort:     r.SMTPPort,
		SMTPUser:     r.SMTPUser,
		SMTPPassword: r.SMTPPassword,
		FromEmail:    r.FromEmail,
		FromName:     r.FromName,
		UseTLS:       r.UseTLS,
	}
}
