package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
	"github.com/elovate/library-api/internal/repository"
)

func newTestRepo(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := repository.NewRepository(sqlx.NewDb(db, "sqlmock"), zap.NewExample().Named("test"))
	require.NoError(t, err)
	return repo, mock
}

// The decrement must be guarded by available_copies > 0 so concurrent
// checkouts can never drive the counter negative.
func TestRepository_CreateLoan_NoCopies(t *testing.T) {
	t.Parallel()
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`update books\s+set available_copies = available_copies - 1\s+where id = \$1 and available_copies > 0`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.CreateLoan(context.Background(), model.Loan{UserID: 2, BookID: 3})
	require.ErrorIs(t, err, errs.ErrNoCopies)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateLoan_OK(t *testing.T) {
	t.Parallel()
	repo, mock := newTestRepo(t)

	loanDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dueDate := loanDate.Add(30 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec(`available_copies > 0`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO loans`).
		WithArgs(int64(2), int64(3), loanDate, dueDate, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "book_id", "loan_date", "due_date", "is_returned"}).
			AddRow(10, 2, 3, loanDate, dueDate, false))
	mock.ExpectCommit()

	loan, err := repo.CreateLoan(context.Background(), model.Loan{
		UserID:   2,
		BookID:   3,
		LoanDate: loanDate,
		DueDate:  dueDate,
	})
	require.NoError(t, err)
	require.Equal(t, model.Loan{ID: 10, UserID: 2, BookID: 3, LoanDate: loanDate, DueDate: dueDate}, loan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateUser_EmptyUpdate(t *testing.T) {
	t.Parallel()

	t.Run("ok. user exists", func(t *testing.T) {
		t.Parallel()
		repo, mock := newTestRepo(t)
		mock.ExpectQuery(`select 1 from users where id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		require.NoError(t, repo.UpdateUser(context.Background(), 2, model.UserUpdate{}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. unknown id", func(t *testing.T) {
		t.Parallel()
		repo, mock := newTestRepo(t)
		mock.ExpectQuery(`select 1 from users where id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		err := repo.UpdateUser(context.Background(), 99, model.UserUpdate{})
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
