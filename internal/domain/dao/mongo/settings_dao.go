package mongo

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/document"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/mapper"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// settingsDAO implements dao.SettingsDAO using MongoDB.
type settingsDAO struct {
	*baseMongoDAO[document.SettingsDocument]
	mapper *mapper.SettingsMapper
}

// NewSettingsDAO creates a new MongoDB-based SettingsDAO.
func NewSettingsDAO(db *mongo.Database) dao.SettingsDAO {
	return &settingsDAO{
		baseMongoDAO: newBaseMongoDAO[document.SettingsDocument](db, document.SettingsDocument{}.CollectionName()),
		mapper:       mapper.NewSettingsMapper(),
	}
}

func singletonFilter() bson.M {
	return bson.M{"_id": document.SettingsDocumentID}
}

// Find retrieves the singleton settings document.
func (d *settingsDAO) Find(ctx context.Context) (*entity.CompanySettings, error) {
	var doc document.SettingsDocument
	err := d.findOneByFilter(ctx, singletonFilter(), &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// EnsureDefaults inserts the singleton if absent, or adds only the missing
// top-level fields to an existing document. Present fields, including whole
// nested sections like theme or tax, are never overwritten, so re-running
// with the same defaults after a customization changes nothing.
func (d *settingsDAO) EnsureDefaults(ctx context.Context, defaults *entity.CompanySettings) (dao.SettingsSeedOutcome, error) {
	doc := d.mapper.ToDocument(defaults)
	doc.UpdatedAt = time.Now()

	created, err := d.insertIfAbsent(ctx, singletonFilter(), doc)
	if err != nil {
		return dao.SettingsSeedOutcome{}, err
	}
	if created {
		return dao.SettingsSeedOutcome{Created: true}, nil
	}

	// Document pre-exists, possibly with only some fields. Diff at the
	// top level and add what is missing.
	var existing bson.M
	if err := d.findOneByFilter(ctx, singletonFilter(), &existing); err != nil {
		return dao.SettingsSeedOutcome{}, err
	}

	wanted, err := toMap(doc)
	if err != nil {
		return dao.SettingsSeedOutcome{}, err
	}
	delete(wanted, "updatedAt")

	missing := dao.MissingFields(existing, wanted)
	if missing == nil {
		return dao.SettingsSeedOutcome{}, nil
	}

	merged := make([]string, 0, len(missing))
	for key := range missing {
		merged = append(merged, key)
	}
	sort.Strings(merged)

	missing["updatedAt"] = time.Now()
	if _, err := d.updateOne(ctx, singletonFilter(), bson.M{"$set": missing}); err != nil {
		return dao.SettingsSeedOutcome{}, err
	}
	return dao.SettingsSeedOutcome{MergedFields: merged}, nil
}

// UpdateCompanyInfo applies a partial update of the basic company fields.
func (d *settingsDAO) UpdateCompanyInfo(ctx context.Context, name *string, addresses []entity.Address, defaultLanguage *string) error {
	set := bson.M{"updatedAt": time.Now()}
	if name != nil {
		set["companyName"] = *name
	}
	if addresses != nil {
		set["addresses"] = mapper.AddressesToDocuments(addresses)
	}
	if defaultLanguage != nil {
		set["defaultLanguage"] = *defaultLanguage
	}
	return d.setFields(ctx, set)
}

// UpdateTheme replaces the theme section.
func (d *settingsDAO) UpdateTheme(ctx context.Context, theme entity.Theme) error {
	return d.setFields(ctx, bson.M{"theme": mapper.ThemeToDocument(theme), "updatedAt": time.Now()})
}

// UpdateTax replaces the tax section.
func (d *settingsDAO) UpdateTax(ctx context.Context, tax entity.TaxSettings) error {
	return d.setFields(ctx, bson.M{"tax": mapper.TaxToDocument(tax), "updatedAt": time.Now()})
}

// UpdateEmail replaces the email section.
func (d *settingsDAO) UpdateEmail(ctx context.Context, email entity.EmailSettings) error {
	return d.setFields(ctx, bson.M{"email": mapper.EmailToDocument(email), "updatedAt": time.Now()})
}

// SetLogo stores the relative logo URL; a nil value clears it.
func (d *settingsDAO) SetLogo(ctx context.Context, logoURL *string) error {
	return d.setFields(ctx, bson.M{"logo": logoURL, "updatedAt": time.Now()})
}

func (d *settingsDAO) setFields(ctx context.Context, set bson.M) error {
	matched, err := d.updateOne(ctx, singletonFilter(), bson.M{"$set": set})
	if err != nil {
		return err
	}
	if matched == 0 {
		return dao.ErrSettingsNotSeeded
	}
	return nil
}
