package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gametrade/internal/models/request_models"
	"gametrade/pkg/utils"
)

func TestAccountService(t *testing.T) {
	ctx := context.Background()

	t.Run("register then login", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAccountService(repo)

		err := svc.CreateAccount(ctx, request_models.SignUpRequest{
			Username: "trader1",
			Email:    "trader1@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)

		token, err := svc.Login(ctx, request_models.LoginRequest{
			Email:    "trader1@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAccountService(repo)

		req := request_models.SignUpRequest{Username: "a", Email: "a@example.com", Password: "secret1"}
		require.NoError(t, svc.CreateAccount(ctx, req))

		err := svc.CreateAccount(ctx, req)
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAccountService(repo)

		require.NoError(t, svc.CreateAccount(ctx, request_models.SignUpRequest{
			Username: "b", Email: "b@example.com", Password: "correct1",
		}))

		_, err := svc.Login(ctx, request_models.LoginRequest{
			Email:    "b@example.com",
			Password: "wrong111",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email rejected without leaking existence", func(t *testing.T) {
		svc := NewAccountService(newFakeUserRepo())
		_, err := svc.Login(ctx, request_models.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever1",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}
