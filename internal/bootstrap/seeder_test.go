package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/testutil/mocks"
)

func TestAdminSeeder_CreatesAccount(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	seeder := NewAdminSeeder(repo, security.NewPasswordHasher(), zap.NewNop())

	if err := seeder.EnsureDefaultAdmin(context.Background(), "admin", "admin123", "info@example.com"); err != nil {
		t.Fatalf("EnsureDefaultAdmin() error = %v", err)
	}

	user, err := repo.GetByUsername(context.Background(), "admin")
	if err != nil || user == nil {
		t.Fatalf("GetByUsername() = %v, %v", user, err)
	}
	if !user.IsActive {
		t.Error("seeded admin is not active")
	}
	if user.Password == "admin123" {
		t.Error("password stored in plaintext")
	}
	if !security.NewPasswordHasher().Verify("admin123", user.Password) {
		t.Error("stored hash does not verify against the seed password")
	}
}

// A rotated password must survive any number of restarts.
func TestAdminSeeder_NeverOverwritesExistingAccount(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	hasher := security.NewPasswordHasher()
	seeder := NewAdminSeeder(repo, hasher, zap.NewNop())

	if err := seeder.EnsureDefaultAdmin(context.Background(), "admin", "admin123", "info@example.com"); err != nil {
		t.Fatalf("EnsureDefaultAdmin() error = %v", err)
	}
	first, _ := repo.GetByUsername(context.Background(), "admin")

	for i := 0; i < 3; i++ {
		if err := seeder.EnsureDefaultAdmin(context.Background(), "admin", "different-password", "other@example.com"); err != nil {
			t.Fatalf("EnsureDefaultAdmin() rerun error = %v", err)
		}
	}

	after, _ := repo.GetByUsername(context.Background(), "admin")
	if after.Password != first.Password {
		t.Error("password hash changed on reseed")
	}
	if after.Email != first.Email {
		t.Error("email changed on reseed")
	}
	if repo.Count() != 1 {
		t.Errorf("user count = %d, want 1", repo.Count())
	}
}

func TestAdminSeeder_ConcurrentSeeding(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	hasher := security.NewPasswordHasher()

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seeder := NewAdminSeeder(repo, hasher, zap.NewNop())
			errs[i] = seeder.EnsureDefaultAdmin(context.Background(), "admin", "admin123", "info@example.com")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("seeder %d error = %v", i, err)
		}
	}
	if repo.Count() != 1 {
		t.Errorf("user count = %d, want exactly 1", repo.Count())
	}
}

func TestAdminSeeder_StoreError(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	repo.GetByUsernameErr = errors.New("store down")
	seeder := NewAdminSeeder(repo, security.NewPasswordHasher(), zap.NewNop())

	if err := seeder.EnsureDefaultAdmin(context.Background(), "admin", "admin123", "info@example.com"); err == nil {
		t.Error("EnsureDefaultAdmin() expected error")
	}
}

func TestSettingsSeeder_CreatesSingleton(t *testing.T) {
	repo := mocks.NewMockSettingsRepository()
	seeder := NewSettingsSeeder(repo, zap.NewNop())

	if err := seeder.EnsureCompanySettings(context.Background(), config.DefaultCompanySettings()); err != nil {
		t.Fatalf("EnsureCompanySettings() error = %v", err)
	}

	settings, err := repo.Get(context.Background())
	if err != nil || settings == nil {
		t.Fatalf("Get() = %v, %v", settings, err)
	}
	if settings.CompanyName == "" {
		t.Error("seeded settings have no company name")
	}
}

func TestSettingsSeeder_PreservesCustomizations(t *testing.T) {
	repo := mocks.NewMockSettingsRepository()
	seeder := NewSettingsSeeder(repo, zap.NewNop())

	custom := config.DefaultCompanySettings()
	custom.CompanyName = "Customized GmbH"
	custom.Theme.Primary = "#123456"
	repo.Seed(custom)

	if err := seeder.EnsureCompanySettings(context.Background(), config.DefaultCompanySettings()); err != nil {
		t.Fatalf("EnsureCompanySettings() error = %v", err)
	}

	after, _ := repo.Get(context.Background())
	if after.CompanyName != "Customized GmbH" {
		t.Errorf("CompanyName = %v, customization lost", after.CompanyName)
	}
	if after.Theme.Primary != "#123456" {
		t.Errorf("Theme.Primary = %v, customization lost", after.Theme.Primary)
	}
}

func TestCatalogSeeder_SeedsDefaults(t *testing.T) {
	repo := mocks.NewMockCatalogRepository()
	seeder := NewCatalogSeeder(repo, zap.NewNop())

	if err := seeder.EnsureCatalog(context.Background(), config.DefaultCategories(), config.DefaultAdditionalServices()); err != nil {
		t.Fatalf("EnsureCatalog() error = %v", err)
	}

	categories, _ := repo.ListCategories(context.Background())
	services, _ := repo.ListServices(context.Background())
	if len(categories) != len(config.DefaultCategories()) {
		t.Errorf("categories = %d, want %d", len(categories), len(config.DefaultCategories()))
	}
	if len(services) != len(config.DefaultAdditionalServices()) {
		t.Errorf("services = %d, want %d", len(services), len(config.DefaultAdditionalServices()))
	}
}

func TestCatalogSeeder_Idempotent(t *testing.T) {
	repo := mocks.NewMockCatalogRepository()
	seeder := NewCatalogSeeder(repo, zap.NewNop())

	for i := 0; i < 3; i++ {
		if err := seeder.EnsureCatalog(context.Background(), config.DefaultCategories(), config.DefaultAdditionalServices()); err != nil {
			t.Fatalf("EnsureCatalog() run %d error = %v", i+1, err)
		}
	}

	categories, _ := repo.ListCategories(context.Background())
	if len(categories) != len(config.DefaultCategories()) {
		t.Errorf("categories duplicated: %d", len(categories))
	}
}

func TestCatalogSeeder_ErrorNamesEntry(t *testing.T) {
	repo := mocks.NewMockCatalogRepository()
	repo.CreateCategoryErr = errors.New("store down")
	seeder := NewCatalogSeeder(repo, zap.NewNop())

	err := seeder.EnsureCatalog(context.Background(), config.DefaultCategories(), nil)
	if err == nil {
		t.Fatal("EnsureCatalog() expected error")
	}
}
