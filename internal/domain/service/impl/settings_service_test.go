package impl

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/bootstrap"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/request"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/testutil/mocks"
)

func updateCompanyReq(name string) request.UpdateCompanyRequest {
	return request.UpdateCompanyRequest{CompanyName: &name}
}

func setupSettingsService(t *testing.T) (service.SettingsService, *mocks.MockSettingsRepository, afero.Fs) {
	t.Helper()
	repo := mocks.NewMockSettingsRepository()
	fs := afero.NewMemMapFs()
	uploadDir := bootstrap.NewUploadDir(fs, "/app/uploads")
	cfg := config.UploadsConfig{
		Root:       "/app",
		MaxSizeMB:  1,
		PublicPath: "/uploads",
	}
	svc := NewSettingsService(repo, uploadDir, cfg, zap.NewNop())
	return svc, repo, fs
}

func logoUpload(t *testing.T, filename string, size int) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := fw.Write(bytes.Repeat([]byte("x"), size)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("ParseMultipartForm() error = %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSettingsService_GetPublicSettings_CreatesDefaults(t *testing.T) {
	svc, repo, _ := setupSettingsService(t)

	resp, err := svc.GetPublicSettings(context.Background())
	if err != nil {
		t.Fatalf("GetPublicSettings() error = %v", err)
	}
	if resp.CompanyName == "" {
		t.Error("GetPublicSettings() CompanyName is empty")
	}
	if resp.Email.FromEmail == "" {
		t.Error("GetPublicSettings() FromEmail is empty")
	}

	stored, err := repo.Get(context.Background())
	if err != nil || stored == nil {
		t.Fatalf("Get() after lazy creation = %v, %v", stored, err)
	}
}

func TestSettingsService_GetPublicSettings_RedactsEmail(t *testing.T) {
	svc, repo, _ := setupSettingsService(t)
	settings := config.DefaultCompanySettings()
	settings.Email.SMTPPassword = "super-secret"
	repo.Seed(settings)

	resp, err := svc.GetPublicSettings(context.Background())
	if err != nil {
		t.Fatalf("GetPublicSettings() error = %v", err)
	}
	// The public view carries only the sender identity.
	if resp.Email.FromEmail != settings.Email.FromEmail {
		t.Errorf("FromEmail = %v, want %v", resp.Email.FromEmail, settings.Email.FromEmail)
	}
	if resp.Email.FromName != settings.Email.FromName {
		t.Errorf("FromName = %v, want %v", resp.Email.FromName, settings.Email.FromName)
	}
}

func TestSettingsService_Update_NotSeeded(t *testing.T) {
	svc, _, _ := setupSettingsService(t)

	name := "New Name"
	req := updateCompanyReq(name)
	err := svc.UpdateCompanyInfo(context.Background(), &req)
	if !errors.Is(err, service.ErrSettingsNotFound) {
		t.Errorf("UpdateCompanyInfo() error = %v, want ErrSettingsNotFound", err)
	}
}

func TestSettingsService_UpdateCompanyInfo_PartialUpdate(t *testing.T) {
	svc, repo, _ := setupSettingsService(t)
	repo.Seed(config.DefaultCompanySettings())

	name := "Gelbe Umzüge GmbH"
	req := updateCompanyReq(name)
	if err := svc.UpdateCompanyInfo(context.Background(), &req); err != nil {
		t.Fatalf("UpdateCompanyInfo() error = %v", err)
	}

	stored, _ := repo.Get(context.Background())
	if stored.CompanyName != name {
		t.Errorf("CompanyName = %v, want %v", stored.CompanyName, name)
	}
	// Language was not part of the request and must be untouched.
	if stored.DefaultLanguage != config.DefaultCompanySettings().DefaultLanguage {
		t.Errorf("DefaultLanguage changed to %v", stored.DefaultLanguage)
	}
}

func TestSettingsService_UploadLogo_Success(t *testing.T) {
	svc, repo, fs := setupSettingsService(t)
	repo.Seed(config.DefaultCompanySettings())

	logoURL, err := svc.UploadLogo(context.Background(), logoUpload(t, "logo.png", 128))
	if err != nil {
		t.Fatalf("UploadLogo() error = %v", err)
	}
	if !strings.HasPrefix(logoURL, "/uploads/logo_") || !strings.HasSuffix(logoURL, ".png") {
		t.Errorf("UploadLogo() url = %v", logoURL)
	}

	stored, _ := repo.Get(context.Background())
	if stored.Logo != logoURL {
		t.Errorf("stored logo = %v, want %v", stored.Logo, logoURL)
	}

	name := strings.TrimPrefix(logoURL, "/uploads/")
	exists, _ := afero.Exists(fs, "/app/uploads/"+name)
	if !exists {
		t.Error("uploaded file missing on disk")
	}
}

func TestSettingsService_UploadLogo_ReplacesOldFile(t *testing.T) {
	svc, repo, fs := setupSettingsService(t)
	repo.Seed(config.DefaultCompanySettings())

	first, err := svc.UploadLogo(context.Background(), logoUpload(t, "old.png", 64))
	if err != nil {
		t.Fatalf("UploadLogo() error = %v", err)
	}
	second, err := svc.UploadLogo(context.Background(), logoUpload(t, "new.webp", 64))
	if err != nil {
		t.Fatalf("UploadLogo() error = %v", err)
	}

	oldName := strings.TrimPrefix(first, "/uploads/")
	oldExists, _ := afero.Exists(fs, "/app/uploads/"+oldName)
	if oldExists {
		t.Error("old logo file still present after replacement")
	}

	stored, _ := repo.Get(context.Background())
	if stored.Logo != second {
		t.Errorf("stored logo = %v, want %v", stored.Logo, second)
	}
}

func TestSettingsService_UploadLogo_InvalidType(t *testing.T) {
	svc, repo, _ := setupSettingsService(t)
	repo.Seed(config.DefaultCompanySettings())

	_, err := svc.UploadLogo(context.Background(), logoUpload(t, "logo.svg", 64))
	if !errors.Is(err, service.ErrInvalidFileType) {
		t.Errorf("UploadLogo() error = %v, want ErrInvalidFileType", err)
	}
}

func TestSettingsService_UploadLogo_TooLarge(t *testing.T) {
	svc, repo, _ := setupSettingsService(t)
	repo.Seed(config.DefaultCompanySettings())

	_, err := svc.UploadLogo(context.Background(), logoUpload(t, "logo.png", 1024*1024+1))
	if !errors.Is(err, service.ErrFileTooLarge) {
		t.Errorf("UploadLogo() error = %v, want ErrFileTooLarge", err)
	}
}

func TestSettingsService_DeleteLogo_NoLogo(t *testing.T) {
	svc, repo, _ := setupSettingsService(t)
	repo.Seed(config.DefaultCompanySettings())

	err := svc.DeleteLogo(context.Background())
	if !errors.Is(err, service.ErrNoLogo) {
		t.Errorf("DeleteLogo() error = %v, want ErrNoLogo", err)
	}
}

func TestSettingsService_DeleteLogo_KeepsFileWhenStoreFails(t *testing.T) {
	svc, repo, fs := setupSettingsService(t)
	repo.Seed(config.DefaultCompanySettings())

	logoURL, err := svc.UploadLogo(context.Background(), logoUpload(t, "logo.png", 64))
	if err != nil {
		t.Fatalf("UploadLogo() error = %v", err)
	}

	repo.UpdateErr = errors.New("write conflict")
	if err := svc.DeleteLogo(context.Background()); err == nil {
		t.Fatal("DeleteLogo() succeeded despite store failure")
	}

	// The settings still reference the logo, so the file must survive.
	stored, _ := repo.Get(context.Background())
	if stored.Logo != logoURL {
		t.Errorf("stored logo = %v, want %v", stored.Logo, logoURL)
	}
	name := strings.TrimPrefix(logoURL, "/uploads/")
	exists, _ := afero.Exists(fs, "/app/uploads/"+name)
	if !exists {
		t.Error("logo file removed although the settings still reference it")
	}
}

func TestSettingsService_DeleteLogo_RemovesFileAndClearsField(t *testing.T) {
	svc, repo, fs := setupSettingsService(t)
	repo.Seed(config.DefaultCompanySettings())

	logoURL, err := svc.UploadLogo(context.Background(), logoUpload(t, "logo.jpg", 64))
	if err != nil {
		t.Fatalf("UploadLogo() error = %v", err)
	}

	if err := svc.DeleteLogo(context.Background()); err != nil {
		t.Fatalf("DeleteLogo() error = %v", err)
	}

	stored, _ := repo.Get(context.Background())
	if stored.Logo != "" {
		t.Errorf("logo still set: %v", stored.Logo)
	}

	name := strings.TrimPrefix(logoURL, "/uploads/")
	exists, _ := afero.Exists(fs, "/app/uploads/"+name)
	if exists {
		t.Error("logo file still present after delete")
	}
}
