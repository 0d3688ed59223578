package handler

import (
	"context"

	"github.com/elovate/library-api/internal/model"
	"github.com/elovate/library-api/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

var (
	_ AuthService = (*service.Service)(nil)
	_ UserService = (*service.Service)(nil)
	_ BookService = (*service.Service)(nil)
	_ LoanService = (*service.Service)(nil)
)

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (int64, error)
	Login(ctx context.Context, req model.LoginRequest) (string, error)
	Authenticate(ctx context.Context, token string) (model.User, error)
}

type UserService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (int64, error)
	ListUsers(ctx context.Context) ([]model.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
}

type BookService interface {
	AddBook(ctx context.Context, req model.CreateBookRequest) (int64, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, upd model.BookUpdate) error
	DeleteBook(ctx context.Context, id int64) error
}

type LoanService interface {
	CreateLoan(ctx context.Context, actor model.User, req model.CreateLoanRequest) (model.Loan, error)
	ActiveLoans(ctx context.Context) ([]model.Loan, error)
	ReturnedLoans(ctx context.Context) ([]model.Loan, error)
	ReturnLoan(ctx context.Context, actor model.User, loanID int64) (model.Loan, error)
}
