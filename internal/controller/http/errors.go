package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/bootstrap"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
	apperrors "github.com/gelbe-umzuege/umzug-cloud-go/pkg/errors"
)

// toAppError translates service and filesystem errors into AppError values
// carrying the HTTP status for the response.
func toAppError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperrors.ErrUnauthorized.WithMessage("invalid credentials")
	case errors.Is(err, service.ErrSettingsNotFound):
		return apperrors.ErrNotFound.WithMessage("company settings not found")
	case errors.Is(err, service.ErrNoLogo):
		return apperrors.ErrNotFound.WithMessage("no logo set")
	case errors.Is(err, service.ErrInvalidFileType):
		return apperrors.ErrBadRequest.WithMessage("invalid file type, allowed: png, jpg, jpeg, webp")
	case errors.Is(err, service.ErrFileTooLarge):
		return apperrors.New(apperrors.CodeBadRequest, "file exceeds the upload size limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, bootstrap.ErrPathConflict),
		errors.Is(err, bootstrap.ErrPermissionDenied),
		errors.Is(err, bootstrap.ErrIOFailure):
		return apperrors.ErrServiceUnavailable.WithMessage("upload storage unavailable")
	default:
		return apperrors.ErrInternalError
	}
}

// respondError writes the JSON error response for err.
func respondError(ctx *gin.Context, err error) {
	appErr := toAppError(err)
	ctx.JSON(appErr.Status, response.NewErrorWithDetails[any](appErr.Message, gin.H{"code": appErr.Code}))
}
