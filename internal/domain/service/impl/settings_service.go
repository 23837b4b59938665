package impl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/bootstrap"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/request"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
)

// allowedLogoExtensions lists the accepted logo formats by extension.
var allowedLogoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type settingsService struct {
	settings  repository.SettingsRepository
	uploadDir *bootstrap.UploadDir
	uploads   config.UploadsConfig
	logger    *zap.Logger
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(
	settings repository.SettingsRepository,
	uploadDir *bootstrap.UploadDir,
	uploads config.UploadsConfig,
	logger *zap.Logger,
) service.SettingsService {
	return &settingsService{
		settings:  settings,
		uploadDir: uploadDir,
		uploads:   uploads,
		logger:    logger,
	}
}

// GetPublicSettings returns the redacted view. A missing document is
// created from the defaults on the spot, so a fresh deployment serves a
// usable response on the very first read.
func (s *settingsService) GetPublicSettings(ctx context.Context) (*response.CompanySettingsResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		if _, err := s.settings.EnsureDefaults(ctx, config.DefaultCompanySettings()); err != nil {
			return nil, err
		}
		settings, err = s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			return nil, service.ErrSettingsNotFound
		}
	}
	return response.NewCompanySettingsResponse(settings), nil
}

func (s *settingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, service.ErrSettingsNotFound
	}
	return settings, nil
}

func (s *settingsService) UpdateCompanyInfo(ctx context.Context, req *request.UpdateCompanyRequest) error {
	return mapNotSeeded(s.settings.UpdateCompanyInfo(ctx, req.CompanyName, req.Addresses, req.DefaultLanguage))
}

func (s *settingsService) UpdateTheme(ctx context.Context, theme entity.Theme) error {
	return mapNotSeeded(s.settings.UpdateTheme(ctx, theme))
}

func (s *settingsService) UpdateTax(ctx context.Context, tax entity.TaxSettings) error {
	return mapNotSeeded(s.settings.UpdateTax(ctx, tax))
}

func (s *settingsService) UpdateEmail(ctx context.Context, email entity.EmailSettings) error {
	return mapNotSeeded(s.settings.UpdateEmail(ctx, email))
}

// mapNotSeeded translates the storage-level missing-singleton error into
// the service-level not-found error handlers know about.
func mapNotSeeded(err error) error {
	if errors.Is(err, dao.ErrSettingsNotSeeded) {
		return service.ErrSettingsNotFound
	}
	return err
}

// UploadLogo validates the file, re-validates the upload directory, stores
// the file under a timestamped name and records its public URL. The old
// logo file is removed best-effort once the new one is in place.
func (s *settingsService) UploadLogo(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedLogoExtensions[ext] {
		return "", service.ErrInvalidFileType
	}
	if file.Size > s.maxUploadBytes() {
		return "", service.ErrFileTooLarge
	}

	// The directory is validated on every upload, not just at startup, so
	// a fixed volume mount or permission change is picked up immediately.
	if err := s.uploadDir.Validate(); err != nil {
		return "", err
	}

	previous, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("logo_%d%s", time.Now().UnixNano(), ext)
	if err := s.writeUpload(file, name); err != nil {
		return "", err
	}

	logoURL := path.Join(s.uploads.PublicPath, name)
	if err := mapNotSeeded(s.settings.SetLogo(ctx, &logoURL)); err != nil {
		// The settings row is the source of truth. Remove the orphaned
		// file so failed updates do not accumulate on disk.
		_ = s.uploadDir.Fs().Remove(filepath.Join(s.uploadDir.Path(), name))
		return "", err
	}

	if previous != nil && previous.Logo != "" {
		s.removeLogoFile(previous.Logo)
	}

	s.logger.Info("logo uploaded", zap.String("logo", logoURL))
	return logoURL, nil
}

// DeleteLogo removes the stored logo file and clears the field.
func (s *settingsService) DeleteLogo(ctx context.Context) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		return service.ErrSettingsNotFound
	}
	if settings.Logo == "" {
		return service.ErrNoLogo
	}

	if err := s.uploadDir.Validate(); err != nil {
		return err
	}

	// The settings row is the source of truth: clear the field first,
	// then remove the file best-effort. A failed update must never leave
	// the settings pointing at a deleted file.
	if err := mapNotSeeded(s.settings.SetLogo(ctx, nil)); err != nil {
		return err
	}

	s.removeLogoFile(settings.Logo)

	s.logger.Info("logo deleted")
	return nil
}

func (s *settingsService) maxUploadBytes() int64 {
	return int64(s.uploads.MaxSizeMB) * 1024 * 1024
}

func (s *settingsService) writeUpload(file *multipart.FileHeader, name string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := s.uploadDir.Fs().OpenFile(
		filepath.Join(s.uploadDir.Path(), name),
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		0o644,
	)
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write upload file: %w", err)
	}
	return nil
}

// removeLogoFile deletes a logo file referenced by its public URL. Only
// URLs under the configured public path are touched; failures are logged
// and ignored.
func (s *settingsService) removeLogoFile(logoURL string) {
	prefix := s.uploads.PublicPath + "/"
	if !strings.HasPrefix(logoURL, prefix) {
		return
	}
	name := filepath.Base(strings.TrimPrefix(logoURL, prefix))
	target := filepath.Join(s.uploadDir.Path(), name)

	if err := s.uploadDir.Fs().Remove(target); err != nil && !isNotFound(err) {
		s.logger.Warn("failed to remove old logo file",
			zap.String("path", target), zap.Error(err))
	}
}

func isNotFound(err error) bool {
	return os.IsNotExist(err)
}
