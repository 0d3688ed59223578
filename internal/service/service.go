package service

import (
	"go.uber.org/zap"

	"github.com/elovate/library-api/config"
	"github.com/elovate/library-api/internal/repository"
)

//go:generate go run github.com/golang/mock/mockgen -source=../repository/repository.go -destination=mocks/mock.go -package=mocks

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	jwt  config.JWT
}

func NewService(repo repository.Repository, jwt config.JWT, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		jwt:  jwt,
	}
}
