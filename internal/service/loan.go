package service

import (
	"context"
	"time"

	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
)

// loanPeriod is the default checkout window when no due date is supplied.
const loanPeriod = 30 * 24 * time.Hour

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.ErrBadDate
}

// CreateLoan checks out a book on behalf of a user. Admin only.
func (s *Service) CreateLoan(ctx context.Context, actor model.User, req model.CreateLoanRequest) (model.Loan, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Loan{}, err
	}

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return model.Loan{}, err
	}

	var book model.Book
	if req.BookID != nil {
		book, err = s.repo.GetBook(ctx, *req.BookID)
	} else {
		book, err = s.repo.GetBookByTitle(ctx, req.BookTitle)
	}
	if err != nil {
		return model.Loan{}, err
	}
	if book.AvailableCopies <= 0 {
		return model.Loan{}, errs.ErrNoCopies
	}

	loanDate, err := parseDate(req.LoanDate, time.Now().UTC())
	if err != nil {
		return model.Loan{}, err
	}
	dueDate, err := parseDate(req.DueDate, loanDate.Add(loanPeriod))
	if err != nil {
		return model.Loan{}, err
	}

	// The repository re-checks availability with a conditional decrement,
	// so a concurrent checkout can still surface ErrNoCopies here.
	return s.repo.CreateLoan(ctx, model.Loan{
		UserID:   user.ID,
		BookID:   book.ID,
		LoanDate: loanDate,
		DueDate:  dueDate,
	})
}

func (s *Service) ActiveLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ListLoans(ctx, false)
}

func (s *Service) ReturnedLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ListLoans(ctx, true)
}

// ReturnLoan closes an open loan and gives the copy back. Admin only.
func (s *Service) ReturnLoan(ctx context.Context, actor model.User, loanID int64) (model.Loan, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Loan{}, err
	}
	return s.repo.ReturnLoan(ctx, loanID)
}
