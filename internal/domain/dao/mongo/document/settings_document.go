package document

import (
	"time"
)

// SettingsDocumentID is the fixed identifier of the singleton
// company-settings document. Addressing the document by a well-known _id
// guarantees at most one logical instance.
const SettingsDocumentID = "company_settings"

// AddressDocument is a single company location.
type AddressDocument struct {
	Type    string `bson:"type"`
	Street  string `bson:"street"`
	City    string `bson:"city"`
	ZipCode string `bson:"zipCode"`
	Country string `bson:"country"`
	Phone   string `bson:"phone"`
	Email   string `bson:"email"`
	Website string `bson:"website"`
}

// ThemeDocument holds the frontend color palette.
type ThemeDocument struct {
	Primary   string `bson:"primary"`
	Secondary string `bson:"secondary"`
	Accent    string `bson:"accent"`
}

// TaxDocument holds VAT configuration.
type TaxDocument struct {
	Enabled bool    `bson:"enabled"`
	Rate    float64 `bson:"rate"`
	Label   string  `bson:"label"`
}

// EmailDocument holds SMTP configuration.
type EmailDocument struct {
	SMTPHost     string `bson:"smtpHost"`
	SMTPPort     int    `bson:"smtpPort"`
	SMTPUser     string `bson:"smtpUser"`
	SMTPPassword string `bson:"smtpPassword"`
	FromEmail    string `bson:"fromEmail"`
	FromName     string `bson:"fromName"`
	UseTLS       bool   `bson:"useTLS"`
}

// SettingsDocument represents the singleton company-settings document.
// Logo is a pointer so an unset logo is stored as null rather than "".
type SettingsDocument struct {
	ID                 string            `bson:"_id"`
	CompanyName        string            `bson:"companyName"`
	Logo               *string           `bson:"logo,omitempty"`
	Addresses          []AddressDocument `bson:"addresses"`
	Theme              ThemeDocument     `bson:"theme"`
	DefaultLanguage    string            `bson:"defaultLanguage"`
	SupportedLanguages []string          `bson:"supportedLanguages"`
	Tax                TaxDocument       `bson:"tax"`
	Email              EmailDocument     `bson:"email"`
	UpdatedAt          time.Time         `bson:"updatedAt"`
}

// CollectionName returns the MongoDB collection name for company settings.
func (SettingsDocument) CollectionName() string {
	return "company_settings"
}
