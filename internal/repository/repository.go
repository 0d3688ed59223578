package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/elovate/library-api/internal/model"
)

type Repository interface {
	CreateUser(ctx context.Context, user model.User) (int64, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error

	CreateBook(ctx context.Context, book model.Book) (int64, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookByTitle(ctx context.Context, title string) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, upd model.BookUpdate) error
	DeleteBook(ctx context.Context, id int64) error

	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	ListLoans(ctx context.Context, returned bool) ([]model.Loan, error)
	ReturnLoan(ctx context.Context, id int64) (model.Loan, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName = `users`
	booksTableName = `books`
	loansTableName = `loans`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
