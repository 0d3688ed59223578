package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
	"github.com/elovate/library-api/pkg/auth"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByUsername(ctx, "alice").
			Return(model.User{ID: 2, Username: "alice", PasswordHash: mustHash(t, "secret")}, nil)

		token, err := svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "secret"})
		require.NoError(t, err)

		userID, err := auth.ParseToken([]byte("test-secret"), token)
		require.NoError(t, err)
		require.Equal(t, int64(2), userID)
	})

	t.Run("err. unknown user", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(model.User{}, errs.ErrNotFound)

		_, err := svc.Login(ctx, model.LoginRequest{Username: "ghost", Password: "secret"})
		require.ErrorIs(t, err, errs.ErrBadCredentials)
	})

	t.Run("err. wrong password", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByUsername(ctx, "alice").
			Return(model.User{ID: 2, Username: "alice", PasswordHash: mustHash(t, "secret")}, nil)

		_, err := svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "wrong"})
		require.ErrorIs(t, err, errs.ErrBadCredentials)
	})
}

func TestService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)

	var created model.User
	repo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user model.User) (int64, error) {
			created = user
			return 7, nil
		})

	id, err := svc.Register(ctx, model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
	require.Equal(t, "alice", created.Username)
	require.False(t, created.IsAdmin)
	require.NotEqual(t, "secret", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		token, err := auth.NewToken([]byte("test-secret"), 2, jwtTTL)
		require.NoError(t, err)
		repo.EXPECT().GetUserByID(ctx, int64(2)).Return(regular, nil)

		user, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		require.Equal(t, regular, user)
	})

	t.Run("err. garbage token", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.Authenticate(ctx, "not-a-token")
		require.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("err. wrong secret", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		token, err := auth.NewToken([]byte("other-secret"), 2, jwtTTL)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, token)
		require.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("err. subject deleted", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		token, err := auth.NewToken([]byte("test-secret"), 99, jwtTTL)
		require.NoError(t, err)
		repo.EXPECT().GetUserByID(ctx, int64(99)).Return(model.User{}, errs.ErrNotFound)

		_, err = svc.Authenticate(ctx, token)
		require.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
