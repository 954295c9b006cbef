package service

import (
	"context"
	"errors"

	appErrors "github.com/glowcart/store-admin/internal/errors"
	"github.com/glowcart/store-admin/internal/models"
	"github.com/glowcart/store-admin/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is the verifier-level rejection; the service wraps it
// so callers can tell a rejected login from an empty form.
var ErrBadCredentials = errors.New("credentials rejected")

// CredentialVerifier is the substitution point for real authentication.
// Implementations only judge the email/password pair; session handling
// stays in the service.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) error
}

// StubVerifier accepts any non-empty email/password pair, matching the
// behavior of the dashboard this system administers. Emptiness is already
// rejected by request validation, so Verify always succeeds.
type StubVerifier struct{}

func (StubVerifier) Verify(_ context.Context, _, _ string) error {
	return nil
}

// StaticVerifier checks passwords against a fixed table of bcrypt hashes,
// keyed by email. It exists to show a real verifier slotting in without
// touching the service.
type StaticVerifier struct {
	hashes map[string][]byte
}

func NewStaticVerifier(hashes map[string][]byte) *StaticVerifier {
	return &StaticVerifier{hashes: hashes}
}

func (v *StaticVerifier) Verify(_ context.Context, email, password string) error {
	hash, ok := v.hashes[email]
	if !ok {
		return ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrBadCredentials
	}

	return nil
}

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	ResetPassword(ctx context.Context, email string) error
}

type userService struct {
	verifier CredentialVerifier
	sessions *storage.SessionStore
	validate *validator.Validate
}

func NewUserService(verifier CredentialVerifier, sessions *storage.SessionStore) UserService {
	return &userService{
		verifier: verifier,
		sessions: sessions,
		validate: validator.New(),
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Name, email and password are required").WithError(err)
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Role:  "admin",
	}

	if err := s.sessions.Save(user); err != nil {
		return nil, appErrors.InternalError("Failed to save session").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Email and password are required").WithError(err)
	}

	if err := s.verifier.Verify(ctx, req.Email, req.Password); err != nil {
		return nil, appErrors.UnauthorizedError("Invalid email or password").WithError(err)
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Name:  "Beauty Store Owner",
		Email: req.Email,
		Role:  "admin",
	}

	if err := s.sessions.Save(user); err != nil {
		return nil, appErrors.InternalError("Failed to save session").WithError(err)
	}

	return user, nil
}

func (s *userService) Logout(_ context.Context) error {
	if err := s.sessions.Clear(); err != nil {
		return appErrors.InternalError("Failed to clear session").WithError(err)
	}

	return nil
}

func (s *userService) CurrentUser(_ context.Context) (*models.User, error) {
	user, err := s.sessions.Load()
	if err != nil {
		if errors.Is(err, storage.ErrNoSession) {
			return nil, appErrors.UnauthorizedError("Not signed in").WithError(err)
		}

		return nil, appErrors.InternalError("Failed to load session").WithError(err)
	}

	return user, nil
}

// ResetPassword mirrors the stubbed flow it replaces: any well-formed
// email "succeeds" without sending anything.
func (s *userService) ResetPassword(_ context.Context, email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return appErrors.ValidationError("A valid email is required").WithError(err)
	}

	return nil
}
