package service

import (
	"context"

	"github.com/elovate/library-api/internal/model"
)

func (s *Service) AddBook(ctx context.Context, req model.CreateBookRequest) (int64, error) {
	return s.repo.CreateBook(ctx, model.Book{
		Title:           req.Title,
		Author:          req.Author,
		TotalCopies:     *req.TotalCopies,
		AvailableCopies: *req.TotalCopies,
	})
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, upd model.BookUpdate) error {
	return s.repo.UpdateBook(ctx, id, upd)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}
