package config

import (
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// DefaultCompanySettings returns the company configuration seeded when no
// singleton document exists yet. Seeding never overwrites fields that an
// administrator has already customized.
func DefaultCompanySettings() *entity.CompanySettings {
	return &entity.CompanySettings{
		CompanyName: "Gelbe-Umzüge",
		Addresses: []entity.Address{
			{
				Type:    entity.AddressHeadquarters,
				Street:  "Sandstrasse 5",
				City:    "Schönbühl",
				ZipCode: "3322",
				Country: "CH",
				Phone:   "031 557 24 31",
				Email:   "info@gelbe-umzuege.ch",
				Website: "www.gelbe-umzuege.ch",
			},
		},
		Theme: entity.Theme{
			Primary:   "#FFD700",
			Secondary: "#1A1A1A",
			Accent:    "#F5B301",
		},
		DefaultLanguage:    "de",
		SupportedLanguages: []string{"de", "fr", "it", "en"},
		Tax: entity.TaxSettings{
			Enabled: true,
			Rate:    0.077,
			Label:   "MwSt",
		},
		Email: entity.EmailSettings{
			SMTPHost:  "smtp.gelbe-umzuege.ch",
			SMTPPort:  587,
			FromEmail: "info@gelbe-umzuege.ch",
			FromName:  "Gelbe-Umzüge",
			UseTLS:    true,
		},
	}
}

// DefaultCategories returns the baseline service categories. Order matters:
// entries are seeded in this order on first boot.
func DefaultCategories() []entity.ServiceCategory {
	return []entity.ServiceCategory{
		{Name: "Umzug", PricingMode: entity.PricingHourly, HourlyRate: 150},
		{Name: "Möbeltransport", PricingMode: entity.PricingHourly, HourlyRate: 120},
		{Name: "Reinigung", PricingMode: entity.PricingFixed, BasePrice: 450},
	}
}

// DefaultAdditionalServices returns the baseline add-on services, keyed by
// (name, category).
func DefaultAdditionalServices() []entity.AdditionalService {
	return []entity.AdditionalService{
		{Name: "Möbellift", Category: "Umzug", PricingMode: entity.PricingFixed, Amount: 250},
		{Name: "Ein- und Auspacken", Category: "Umzug", PricingMode: entity.PricingHourly, Amount: 65},
		{Name: "Verpackungsmaterial", Category: "Umzug", PricingMode: entity.PricingFixed, Amount: 120},
		{Name: "Endreinigung mit Abnahmegarantie", Category: "Reinigung", PricingMode: entity.PricingFixed, Amount: 380},
	}
}
