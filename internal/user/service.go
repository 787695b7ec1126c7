package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/studydeck/internal/auth"
	"github.com/saulo-duarte/studydeck/internal/config"
)

var ErrUserNotFound = errors.New("user not found")

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type LoginResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

type UserService interface {
	Login(ctx context.Context, code string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

// Login exchanges a Google authorization code, upserts the profile and
// issues a fresh pair of application tokens.
func (s *userService) Login(ctx context.Context, code string) (*LoginResult, error) {
	log := config.WithContext(ctx)

	profile, token, err := auth.ExchangeGoogleCode(ctx, code)
	if err != nil {
		log.WithError(err).Error("Google code exchange failed")
		return nil, err
	}

	u, err := s.repo.FindByGoogleID(profile.ID)
	if err != nil {
		return nil, err
	}

	if u == nil {
		u = &User{
			ID:       uuid.New(),
			GoogleID: profile.ID,
		}
	}

	u.Email = profile.Email
	u.Name = profile.Name
	u.AvatarURL = profile.Picture

	if token.RefreshToken != "" {
		encrypted, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt refresh token")
			return nil, err
		}
		u.RefreshToken = encrypted
	}

	if u.CreatedAt.IsZero() {
		if err := s.repo.Create(u); err != nil {
			return nil, err
		}
		log.Info("Created new user", "user_id", u.ID.String())
	} else {
		if err := s.repo.Update(u); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(u)
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		log.WithError(err).Warn("Invalid refresh token")
		return nil, err
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	return s.issueTokens(u)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) issueTokens(u *User) (*LoginResult, error) {
	access, err := auth.GenerateJWT(u.ID.String(), u.Email, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), u.Email, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, AccessToken: access, RefreshToken: refresh}, nil
}
