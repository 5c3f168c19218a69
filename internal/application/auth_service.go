package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-profile-service/internal/domain/entity"
	repo "github.com/oksasatya/auth-profile-service/internal/domain/repository"
	"github.com/oksasatya/auth-profile-service/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *Service {
	return &Service{Repo: r, JWT: jwt, Logger: logger}
}

// Register creates a user with role=user and profile defaults. No token is
// issued; the client logs in separately.
func (s *Service) Register(ctx context.Context, email, password, name string) (*entity.User, error) {
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := entity.NewUser(email, hash, name)
	if err := s.Repo.Create(ctx, u); err != nil {
		// Check-then-insert races resolve at the unique index.
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login validates credentials and issues a bearer token bound to the user id.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if u == nil || !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// LoginWithProvider finds or auto-provisions the user behind a verified
// third-party identity and issues a token. Provisioned accounts carry an
// empty password hash and the oauth_account flag; password login for them
// always fails as invalid credentials.
func (s *Service) LoginWithProvider(ctx context.Context, ident *ExternalIdentity) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, ident.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if u == nil {
		u = entity.NewUser(ident.Email, "", ident.Name)
		u.OAuthAccount = true
		if err := s.Repo.Create(ctx, u); err != nil {
			if !errors.Is(err, repo.ErrDuplicateEmail) {
				return nil, "", time.Time{}, err
			}
			// Lost the provisioning race to a concurrent callback.
			u, err = s.Repo.GetByEmail(ctx, ident.Email)
			if err != nil || u == nil {
				return nil, "", time.Time{}, err
			}
		}
	}

	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}
