//go:build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	mongodao "github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/document"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/testutil"
)

func TestIntegration_MongoDB_SettingsDAO_EnsureDefaults(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMongo(t)

	cfg := testutil.DefaultTestConfig()
	_, db := testutil.NewTestMongoDB(t, cfg)

	settingsDAO := mongodao.NewSettingsDAO(db)
	ctx := context.Background()

	t.Run("first run inserts the whole document", func(t *testing.T) {
		outcome, err := settingsDAO.EnsureDefaults(ctx, config.DefaultCompanySettings())
		require.NoError(t, err)
		assert.True(t, outcome.Created)
		assert.Empty(t, outcome.MergedFields)

		found, err := settingsDAO.Find(ctx)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, config.DefaultCompanySettings().CompanyName, found.CompanyName)
		assert.Equal(t, config.DefaultCompanySettings().Tax, found.Tax)
	})

	t.Run("rerun changes nothing", func(t *testing.T) {
		outcome, err := settingsDAO.EnsureDefaults(ctx, config.DefaultCompanySettings())
		require.NoError(t, err)
		assert.False(t, outcome.Created)
		assert.Empty(t, outcome.MergedFields)
	})
}

// A document that pre-exists with only some top-level fields gains the
// missing ones; fields already present, customized or not, survive
// untouched.
func TestIntegration_MongoDB_SettingsDAO_MergesMissingFields(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMongo(t)

	cfg := testutil.DefaultTestConfig()
	_, db := testutil.NewTestMongoDB(t, cfg)

	ctx := context.Background()
	collection := db.Collection(document.SettingsDocument{}.CollectionName())
	_, err := collection.InsertOne(ctx, bson.M{
		"_id":         document.SettingsDocumentID,
		"companyName": "Custom GmbH",
		"theme": bson.M{
			"primary":   "#000000",
			"secondary": "#111111",
			"accent":    "#222222",
		},
	})
	require.NoError(t, err)

	settingsDAO := mongodao.NewSettingsDAO(db)
	outcome, err := settingsDAO.EnsureDefaults(ctx, config.DefaultCompanySettings())
	require.NoError(t, err)
	assert.False(t, outcome.Created)
	assert.Contains(t, outcome.MergedFields, "tax")
	assert.Contains(t, outcome.MergedFields, "email")
	assert.NotContains(t, outcome.MergedFields, "theme")
	assert.NotContains(t, outcome.MergedFields, "companyName")

	found, err := settingsDAO.Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)

	// The customized fields survived the merge.
	assert.Equal(t, "Custom GmbH", found.CompanyName)
	assert.Equal(t, "#000000", found.Theme.Primary)

	// The missing sections now carry the defaults.
	assert.Equal(t, config.DefaultCompanySettings().Tax, found.Tax)
	assert.Equal(t, config.DefaultCompanySettings().DefaultLanguage, found.DefaultLanguage)

	// A second run finds nothing left to merge.
	outcome, err = settingsDAO.EnsureDefaults(ctx, config.DefaultCompanySettings())
	require.NoError(t, err)
	assert.False(t, outcome.Created)
	assert.Empty(t, outcome.MergedFields)
}

func TestIntegration_MongoDB_SettingsDAO_UpdateRequiresSeed(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMongo(t)

	cfg := testutil.DefaultTestConfig()
	_, db := testutil.NewTestMongoDB(t, cfg)

	settingsDAO := mongodao.NewSettingsDAO(db)
	ctx := context.Background()

	err := settingsDAO.UpdateTheme(ctx, entity.Theme{Primary: "#123456"})
	assert.ErrorIs(t, err, dao.ErrSettingsNotSeeded)

	_, err = settingsDAO.EnsureDefaults(ctx, config.DefaultCompanySettings())
	require.NoError(t, err)

	require.NoError(t, settingsDAO.UpdateTheme(ctx, entity.Theme{Primary: "#123456", Secondary: "#654321", Accent: "#abcdef"}))
	found, err := settingsDAO.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#123456", found.Theme.Primary)
}

// Concurrent inserts race on the username's unique index: exactly one
// wins, the rest report (false, nil).
func TestIntegration_MongoDB_UserDAO_ConcurrentInsertIfAbsent(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMongo(t)

	cfg := testutil.DefaultTestConfig()
	_, db := testutil.NewTestMongoDB(t, cfg)

	ctx := context.Background()
	require.NoError(t, mongodao.EnsureIndexes(ctx, db))

	userDAO := mongodao.NewUserDAO(db)

	var wg sync.WaitGroup
	var created int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := userDAO.InsertIfAbsent(ctx, &entity.User{
				Username: "admin",
				Email:    "info@example.com",
				Password: "hashedpassword",
				Role:     entity.RoleAdmin,
				IsActive: true,
			})
			assert.NoError(t, err)
			if ok {
				atomic.AddInt32(&created, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, created)

	found, err := userDAO.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, found)

	count, err := db.Collection(document.UserDocument{}.CollectionName()).CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestIntegration_MongoDB_UserDAO_FindByUsernameMissing(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMongo(t)

	cfg := testutil.DefaultTestConfig()
	_, db := testutil.NewTestMongoDB(t, cfg)

	userDAO := mongodao.NewUserDAO(db)
	found, err := userDAO.FindByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestIntegration_MongoDB_CatalogDAO_SeedIdempotent(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMongo(t)

	cfg := testutil.DefaultTestConfig()
	_, db := testutil.NewTestMongoDB(t, cfg)

	ctx := context.Background()
	require.NoError(t, mongodao.EnsureIndexes(ctx, db))

	catalogDAO := mongodao.NewCatalogDAO(db)

	for round := 0; round < 2; round++ {
		wantCreated := round == 0
		for _, c := range config.DefaultCategories() {
			category := c
			created, err := catalogDAO.InsertCategoryIfAbsent(ctx, &category)
			require.NoError(t, err)
			assert.Equal(t, wantCreated, created, fmt.Sprintf("category %q round %d", category.Name, round))
		}
		for _, s := range config.DefaultAdditionalServices() {
			service := s
			created, err := catalogDAO.InsertServiceIfAbsent(ctx, &service)
			require.NoError(t, err)
			assert.Equal(t, wantCreated, created, fmt.Sprintf("service %q round %d", service.Name, round))
		}
	}

	categories, err := catalogDAO.FindAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(config.DefaultCategories()))

	services, err := catalogDAO.FindAllServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, len(config.DefaultAdditionalServices()))
}
