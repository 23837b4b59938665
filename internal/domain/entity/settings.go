package entity

import (
	"time"
)

// AddressType tags an address with its role within the company
type AddressType string

const (
	AddressHeadquarters AddressType = "hauptsitz"
	AddressBranch       AddressType = "filiale"
)

// Address is a single company location
type Address struct {
	Type    AddressType `json:"type"`
	Street  string      `json:"street"`
	City    string      `json:"city"`
	ZipCode string      `json:"zipCode"`
	Country string      `json:"country"`
	Phone   string      `json:"phone"`
	Email   string      `json:"email"`
	Website string      `json:"website"`
}

// Theme holds the color palette used by the frontend
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// TaxSettings holds VAT configuration for offers and invoices
type TaxSettings struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate"`
	Label   string  `json:"label"`
}

// EmailSettings holds outbound SMTP configuration
type EmailSettings struct {
	SMTPHost     string `json:"smtpHost"`
	SMTPPort     int    `json:"smtpPort"`
	SMTPUser     string `json:"smtpUser"`
	SMTPPassword string `json:"-"`
	FromEmail    string `json:"fromEmail"`
	FromName     string `json:"fromName"`
	UseTLS       bool   `json:"useTLS"`
}

// CompanySettings is the singleton company configuration. Exactly one
// instance exists in the store; it is seeded at startup and mutated by the
// settings endpoints, never deleted.
type CompanySettings struct {
	CompanyName        string        `json:"companyName"`
	Logo               string        `json:"logo,omitempty"`
	Addresses          []Address     `json:"addresses"`
	Theme              Theme         `json:"theme"`
	DefaultLanguage    string        `json:"defaultLanguage"`
	SupportedLanguages []string      `json:"supportedLanguages"`
	Tax                TaxSettings   `json:"tax"`
	Email              EmailSettings `json:"email"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}
