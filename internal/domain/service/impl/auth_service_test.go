package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/testutil/mocks"
)

func setupAuthService(t *testing.T) (service.AuthService, *mocks.MockUserRepository, *security.PasswordHasher) {
	t.Helper()
	userRepo := mocks.NewMockUserRepository()

	jwtConfig := &config.JWTConfig{
		Secret:              "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration: 15 * time.Minute,
		Issuer:              "test",
	}
	jwtProvider := security.NewJWTProvider(jwtConfig)
	passwordHasher := security.NewPasswordHasher()

	authService := NewAuthService(userRepo, passwordHasher, jwtProvider, zap.NewNop())
	return authService, userRepo, passwordHasher
}

func addUser(t *testing.T, repo *mocks.MockUserRepository, hasher *security.PasswordHasher, username, password string, active bool) {
	t.Helper()
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	created, err := repo.CreateIfAbsent(context.Background(), &entity.User{
		ID:       "user-1",
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		Role:     entity.RoleAdmin,
		IsActive: active,
	})
	if err != nil || !created {
		t.Fatalf("CreateIfAbsent() = %v, %v", created, err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	authService, userRepo, hasher := setupAuthService(t)
	addUser(t, userRepo, hasher, "admin", "admin123", true)

	resp, err := authService.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("Login() AccessToken is empty")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("Login() TokenType = %v, want Bearer", resp.TokenType)
	}
	if resp.User.Username != "admin" {
		t.Errorf("Login() Username = %v, want admin", resp.User.Username)
	}
	if resp.User.Role != entity.RoleAdmin {
		t.Errorf("Login() Role = %v, want admin", resp.User.Role)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	authService, _, _ := setupAuthService(t)

	_, err := authService.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService, userRepo, hasher := setupAuthService(t)
	addUser(t, userRepo, hasher, "admin", "admin123", true)

	_, err := authService.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	authService, userRepo, hasher := setupAuthService(t)
	addUser(t, userRepo, hasher, "admin", "admin123", false)

	_, err := authService.Login(context.Background(), "admin", "admin123")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

// Unknown user, wrong password and inactive account must be outwardly
// indistinguishable.
func TestAuthService_Login_UniformRejection(t *testing.T) {
	authService, userRepo, hasher := setupAuthService(t)
	addUser(t, userRepo, hasher, "admin", "admin123", true)

	_, errUnknown := authService.Login(context.Background(), "ghost", "admin123")
	_, errWrongPw := authService.Login(context.Background(), "admin", "nope")

	if !errors.Is(errUnknown, service.ErrInvalidCredentials) || !errors.Is(errWrongPw, service.ErrInvalidCredentials) {
		t.Fatalf("Login() errors = %v, %v, want both ErrInvalidCredentials", errUnknown, errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Errorf("rejection messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)
	userRepo.GetByUsernameErr = errors.New("store down")

	_, err := authService.Login(context.Background(), "admin", "admin123")
	if err == nil || errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want passthrough store error", err)
	}
}
