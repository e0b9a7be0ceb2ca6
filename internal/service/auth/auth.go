package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fragpit/songvote/internal/api/handlers"
	jwtauth "github.com/fragpit/songvote/internal/auth"
	"github.com/fragpit/songvote/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var _ handlers.AuthService = (*AuthService)(nil)

type AuthService struct {
	repo      model.UsersRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(
	repo model.UsersRepository,
	jwtSecret string,
	jwtTTL time.Duration,
) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func (a *AuthService) Register(
	ctx context.Context,
	login, password string,
) (string, error) {
	_, err := a.repo.GetByLogin(ctx, login)
	switch {
	case err == nil:
		return "", model.ErrUserExists
	case !errors.Is(err, model.ErrUserNotFound):
		return "", err
	}

	if err := model.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	user := model.NewUser(login)
	user.PasswordHash = hash

	user, err = a.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	return a.issueToken(user)
}

func (a *AuthService) Login(
	ctx context.Context,
	login, password string,
) (string, error) {
	user, err := a.repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", model.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return "", model.ErrInvalidCredentials
	}

	return a.issueToken(user)
}

func (a *AuthService) issueToken(u *model.User) (string, error) {
	return jwtauth.CreateJWTToken(a.jwtSecret, a.jwtTTL, model.Principal{
		UserID: u.ID,
		Role:   u.Role,
	})
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}
