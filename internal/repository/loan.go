package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
)

// CreateLoan decrements the book's availability and inserts the loan row
// in one transaction. The conditional decrement is the guard that keeps
// available_copies from going negative under concurrent checkouts.
func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Loan{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
update books
    set available_copies = available_copies - 1
where id = $1 and available_copies > 0`, loan.BookID)
	if err != nil {
		return model.Loan{}, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return model.Loan{}, err
	}
	if aff == 0 {
		return model.Loan{}, errs.ErrNoCopies
	}

	q, args, err := qb.Insert(loansTableName).
		Columns("user_id", "book_id", "loan_date", "due_date", "is_returned").
		Values(loan.UserID, loan.BookID, loan.LoanDate, loan.DueDate, false).
		Suffix("returning id, user_id, book_id, loan_date, due_date, is_returned").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var created model.Loan
	if err := tx.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateLoan", zap.String("q", q), zap.Error(err))
		return model.Loan{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Loan{}, err
	}
	return created, nil
}

func (r *repository) ListLoans(ctx context.Context, returned bool) ([]model.Loan, error) {
	q, args, err := qb.Select("id", "user_id", "book_id", "loan_date", "due_date", "is_returned").
		From(loansTableName).
		Where(sq.Eq{"is_returned": returned}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

// ReturnLoan flips the loan to returned and gives the copy back to the
// book, capped at total_copies, all inside one transaction. The row lock
// makes a double return impossible to race.
func (r *repository) ReturnLoan(ctx context.Context, id int64) (model.Loan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Loan{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var loan model.Loan
	q := `select id, user_id, book_id, loan_date, due_date, is_returned from loans where id = $1 for update`
	if err := tx.GetContext(ctx, &loan, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	if loan.IsReturned {
		return model.Loan{}, errs.ErrAlreadyReturned
	}

	if _, err := tx.ExecContext(ctx,
		`update loans set is_returned = true where id = $1`, id); err != nil {
		return model.Loan{}, err
	}
	if _, err := tx.ExecContext(ctx, `
update books
    set available_copies = least(available_copies + 1, total_copies)
where id = $1`, loan.BookID); err != nil {
		return model.Loan{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Loan{}, err
	}
	loan.IsReturned = true
	return loan, nil
}
