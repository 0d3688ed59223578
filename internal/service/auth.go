package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
	"github.com/elovate/library-api/pkg/auth"
)

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.repo.CreateUser(ctx, model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
}

// Login returns a signed token on success. Unknown username and hash
// mismatch collapse into the same error so callers cannot enumerate users.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrBadCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", errs.ErrBadCredentials
	}
	return auth.NewToken([]byte(s.jwt.Secret), user.ID, s.jwt.TTL)
}

// Authenticate resolves a bearer token's subject to an existing user.
func (s *Service) Authenticate(ctx context.Context, token string) (model.User, error) {
	userID, err := auth.ParseToken([]byte(s.jwt.Secret), token)
	if err != nil {
		return model.User{}, errs.ErrInvalidToken
	}
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrInvalidToken
		}
		return model.User{}, err
	}
	return user, nil
}

func requireAdmin(actor model.User) error {
	if !actor.IsAdmin {
		return errs.ErrForbidden
	}
	return nil
}
