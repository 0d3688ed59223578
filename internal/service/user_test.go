package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elovate/library-api/internal/model"
)

func TestService_ListUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().ListUsers(ctx).Return([]model.User{
		{ID: 1, Username: "root", Email: "root@example.com", PasswordHash: "hash1", IsAdmin: true},
		{ID: 2, Username: "alice", Email: "alice@example.com", PasswordHash: "hash2"},
	}, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.UserResponse{
		{ID: 1, Username: "root", Email: "root@example.com"},
		{ID: 2, Username: "alice", Email: "alice@example.com"},
	}, users)
}

func TestService_UpdateUser_RehashesPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)

	password := "new-secret"
	var got model.UserUpdate
	repo.EXPECT().
		UpdateUser(ctx, int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, upd model.UserUpdate) error {
			got = upd
			return nil
		})

	err := svc.UpdateUser(ctx, 2, model.UserUpdate{Password: &password})
	require.NoError(t, err)
	require.NotNil(t, got.Password)
	require.NotEqual(t, password, *got.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*got.Password), []byte(password)))
}

func TestService_AddBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)

	total := 5
	repo.EXPECT().
		CreateBook(ctx, model.Book{Title: "1984", Author: "George Orwell", TotalCopies: 5, AvailableCopies: 5}).
		Return(int64(3), nil)

	id, err := svc.AddBook(ctx, model.CreateBookRequest{Title: "1984", Author: "George Orwell", TotalCopies: &total})
	require.NoError(t, err)
	require.Equal(t, int64(3), id)
}
