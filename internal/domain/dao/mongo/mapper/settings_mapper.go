package mapper

import (
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/document"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// SettingsMapper converts between CompanySettings and SettingsDocument.
type SettingsMapper struct{}

// NewSettingsMapper creates a new SettingsMapper instance.
func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

// ToDocument converts a CompanySettings entity to a SettingsDocument with
// the fixed singleton identifier.
func (m *SettingsMapper) ToDocument(settings *entity.CompanySettings) *document.SettingsDocument {
	if settings == nil {
		return nil
	}

	doc := &document.SettingsDocument{
		ID:                 document.SettingsDocumentID,
		CompanyName:        settings.CompanyName,
		Addresses:          AddressesToDocuments(settings.Addresses),
		Theme:              ThemeToDocument(settings.Theme),
		DefaultLanguage:    settings.DefaultLanguage,
		SupportedLanguages: settings.SupportedLanguages,
		Tax:                TaxToDocument(settings.Tax),
		Email:              EmailToDocument(settings.Email),
		UpdatedAt:          settings.UpdatedAt,
	}

	if settings.Logo != "" {
		logo := settings.Logo
		doc.Logo = &logo
	}

	return doc
}

// ToEntity converts a SettingsDocument to a CompanySettings entity.
func (m *SettingsMapper) ToEntity(doc *document.SettingsDocument) *entity.CompanySettings {
	if doc == nil {
		return nil
	}

	settings := &entity.CompanySettings{
		CompanyName:        doc.CompanyName,
		Addresses:          AddressesToEntities(doc.Addresses),
		Theme:              entity.Theme(doc.Theme),
		DefaultLanguage:    doc.DefaultLanguage,
		SupportedLanguages: doc.SupportedLanguages,
		Tax:                entity.TaxSettings(doc.Tax),
		Email:              entity.EmailSettings(doc.Email),
		UpdatedAt:          doc.UpdatedAt,
	}

	if doc.Logo != nil {
		settings.Logo = *doc.Logo
	}

	return settings
}

// AddressesToDocuments converts address entities to documents.
func AddressesToDocuments(addresses []entity.Address) []document.AddressDocument {
	if addresses == nil {
		return nil
	}
	docs := make([]document.AddressDocument, len(addresses))
	for i, a := range addresses {
		docs[i] = document.AddressDocument{
			Type:    string(a.Type),
			Street:  a.Street,
			City:    a.City,
			ZipCode: a.ZipCode,
			Country: a.Country,
			Phone:   a.Phone,
			Email:   a.Email,
			Website: a.Website,
		}
	}
	return docs
}

// AddressesToEntities converts address documents to entities.
func AddressesToEntities(docs []document.AddressDocument) []entity.Address {
	if docs == nil {
		return nil
	}
	addresses := make([]entity.Address, len(docs))
	for i, d := range docs {
		addresses[i] = entity.Address{
			Type:    entity.AddressType(d.Type),
			Street:  d.Street,
			City:    d.City,
			ZipCode: d.ZipCode,
			Country: d.Country,
			Phone:   d.Phone,
			Email:   d.Email,
			Website: d.Website,
		}
	}
	return addresses
}

// ThemeToDocument converts a theme entity to its document form.
func ThemeToDocument(theme entity.Theme) document.ThemeDocument {
	return document.ThemeDocument(theme)
}

// TaxToDocument converts tax settings to their document form.
func TaxToDocument(tax entity.TaxSettings) document.TaxDocument {
	return document.TaxDocument(tax)
}

// EmailToDocument converts email settings to their document form.
func EmailToDocument(email entity.EmailSettings) document.EmailDocument {
	return document.EmailDocument(email)
}
