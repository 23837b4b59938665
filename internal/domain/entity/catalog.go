package entity

import (
	"time"
)

// PricingMode determines how a catalog entry is priced on an offer
type PricingMode string

const (
	// PricingCustom entries carry no default amount; the price is set
	// per offer by the business logic.
	PricingCustom PricingMode = "custom"
	PricingHourly PricingMode = "hourly"
	PricingFixed  PricingMode = "fixed"
)

// ServiceCategory is a top-level pricing catalog entry, unique by name
type ServiceCategory struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	PricingMode PricingMode `json:"pricingMode"`
	HourlyRate  float64     `json:"hourlyRate,omitempty"`
	BasePrice   float64     `json:"basePrice,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// AdditionalService is an add-on offered under a category, unique by
// (name, category)
type AdditionalService struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	PricingMode PricingMode `json:"pricingMode"`
	Amount      float64     `json:"amount"`
	CreatedAt   time.Time   `json:"createdAt"`
}
