package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elovate/library-api/config"
	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
	"github.com/elovate/library-api/internal/service"
	"github.com/elovate/library-api/internal/service/mocks"
)

const jwtTTL = time.Hour

var (
	admin   = model.User{ID: 1, Username: "root", IsAdmin: true}
	regular = model.User{ID: 2, Username: "alice"}
)

func newTestService(t *testing.T) (*service.Service, *mocks.MockRepository) {
	t.Helper()
	repo := mocks.NewMockRepository(gomock.NewController(t))
	jwt := config.JWT{Secret: "test-secret", TTL: jwtTTL}
	return service.NewService(repo, jwt, zap.NewExample().Named("test")), repo
}

func TestService_CreateLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bookID := int64(3)
	loanDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		actor        model.User
		req          model.CreateLoanRequest
		mockBehavior func(repo *mocks.MockRepository)
		wantLoan     model.Loan
		wantErr      error
	}{
		{
			name:  "ok. by title with explicit dates",
			actor: admin,
			req: model.CreateLoanRequest{
				Username:  "alice",
				BookTitle: "1984",
				LoanDate:  "2025-06-01",
				DueDate:   "2025-06-15",
			},
			mockBehavior: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "alice").Return(regular, nil)
				repo.EXPECT().GetBookByTitle(ctx, "1984").
					Return(model.Book{ID: 3, Title: "1984", TotalCopies: 5, AvailableCopies: 2}, nil)
				repo.EXPECT().
					CreateLoan(ctx, model.Loan{UserID: 2, BookID: 3, LoanDate: loanDate, DueDate: dueDate}).
					Return(model.Loan{ID: 10, UserID: 2, BookID: 3, LoanDate: loanDate, DueDate: dueDate}, nil)
			},
			wantLoan: model.Loan{ID: 10, UserID: 2, BookID: 3, LoanDate: loanDate, DueDate: dueDate},
		},
		{
			name:  "ok. book_id wins over title",
			actor: admin,
			req: model.CreateLoanRequest{
				Username:  "alice",
				BookTitle: "1984",
				BookID:    &bookID,
				LoanDate:  "2025-06-01",
				DueDate:   "2025-06-15",
			},
			mockBehavior: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "alice").Return(regular, nil)
				repo.EXPECT().GetBook(ctx, int64(3)).
					Return(model.Book{ID: 3, Title: "1984", TotalCopies: 5, AvailableCopies: 2}, nil)
				repo.EXPECT().
					CreateLoan(ctx, model.Loan{UserID: 2, BookID: 3, LoanDate: loanDate, DueDate: dueDate}).
					Return(model.Loan{ID: 10, UserID: 2, BookID: 3, LoanDate: loanDate, DueDate: dueDate}, nil)
			},
			wantLoan: model.Loan{ID: 10, UserID: 2, BookID: 3, LoanDate: loanDate, DueDate: dueDate},
		},
		{
			name:         "err. not admin",
			actor:        regular,
			req:          model.CreateLoanRequest{Username: "alice", BookTitle: "1984"},
			mockBehavior: func(repo *mocks.MockRepository) {},
			wantErr:      errs.ErrForbidden,
		},
		{
			name:  "err. user not found",
			actor: admin,
			req:   model.CreateLoanRequest{Username: "ghost", BookTitle: "1984"},
			mockBehavior: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(model.User{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:  "err. no copies",
			actor: admin,
			req:   model.CreateLoanRequest{Username: "alice", BookTitle: "1984"},
			mockBehavior: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "alice").Return(regular, nil)
				repo.EXPECT().GetBookByTitle(ctx, "1984").
					Return(model.Book{ID: 3, Title: "1984", TotalCopies: 5, AvailableCopies: 0}, nil)
			},
			wantErr: errs.ErrNoCopies,
		},
		{
			name:  "err. bad loan date",
			actor: admin,
			req: model.CreateLoanRequest{
				Username:  "alice",
				BookTitle: "1984",
				LoanDate:  "June 1st",
			},
			mockBehavior: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "alice").Return(regular, nil)
				repo.EXPECT().GetBookByTitle(ctx, "1984").
					Return(model.Book{ID: 3, Title: "1984", TotalCopies: 5, AvailableCopies: 2}, nil)
			},
			wantErr: errs.ErrBadDate,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			loan, err := svc.CreateLoan(ctx, tt.actor, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantLoan, loan)
		})
	}
}

func TestService_CreateLoan_DefaultDates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().GetUserByUsername(ctx, "alice").Return(regular, nil)
	repo.EXPECT().GetBookByTitle(ctx, "1984").
		Return(model.Book{ID: 3, Title: "1984", TotalCopies: 5, AvailableCopies: 2}, nil)

	var got model.Loan
	repo.EXPECT().
		CreateLoan(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loan model.Loan) (model.Loan, error) {
			got = loan
			return loan, nil
		})

	before := time.Now().UTC()
	_, err := svc.CreateLoan(ctx, admin, model.CreateLoanRequest{Username: "alice", BookTitle: "1984"})
	after := time.Now().UTC()
	require.NoError(t, err)

	require.False(t, got.LoanDate.Before(before))
	require.False(t, got.LoanDate.After(after))
	require.Equal(t, got.LoanDate.Add(30*24*time.Hour), got.DueDate)
}

func TestService_ReturnLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		want := model.Loan{ID: 10, UserID: 2, BookID: 3, IsReturned: true}
		repo.EXPECT().ReturnLoan(ctx, int64(10)).Return(want, nil)

		loan, err := svc.ReturnLoan(ctx, admin, 10)
		require.NoError(t, err)
		require.Equal(t, want, loan)
	})

	t.Run("err. not admin", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.ReturnLoan(ctx, regular, 10)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("err. already returned", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().ReturnLoan(ctx, int64(10)).Return(model.Loan{}, errs.ErrAlreadyReturned)

		_, err := svc.ReturnLoan(ctx, admin, 10)
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	})
}

func TestService_ListLoans(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)

	active := []model.Loan{{ID: 1}, {ID: 2}}
	returned := []model.Loan{{ID: 3, IsReturned: true}}
	repo.EXPECT().ListLoans(ctx, false).Return(active, nil)
	repo.EXPECT().ListLoans(ctx, true).Return(returned, nil)

	got, err := svc.ActiveLoans(ctx)
	require.NoError(t, err)
	require.Equal(t, active, got)

	got, err = svc.ReturnedLoans(ctx)
	require.NoError(t, err)
	require.Equal(t, returned, got)
}
