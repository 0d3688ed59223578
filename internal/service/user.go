package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/elovate/library-api/internal/model"
)

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.repo.CreateUser(ctx, model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
	})
}

// ListUsers never exposes password hashes.
func (s *Service) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, model.UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		})
	}
	return resp, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) error {
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		upd.Password = &hashed
	}
	return s.repo.UpdateUser(ctx, id, upd)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}
