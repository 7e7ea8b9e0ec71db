package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/security"
)

const authTestSecret = "test-secret-0123456789abcdef0123456789"

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	tm := security.NewTokenManager(authTestSecret, 60, 10080)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockAccountRepo)
		svc := NewAuthService(repo, tm)
		repo.On("GetByEmail", ctx, "ana@example.com").Return(nil, sql.ErrNoRows)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Account")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Account).ID = 1
		}).Return(nil)

		account, access, refresh, err := svc.Signup(ctx, "Ana", "ana@example.com", "", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, domain.AccountRoleUser, account.Role)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		// Password never stored in the clear
		assert.NotEqual(t, "hunter2hunter2", account.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("hunter2hunter2")))
	})

	t.Run("EmailTaken", func(t *testing.T) {
		repo := new(MockAccountRepo)
		svc := NewAuthService(repo, tm)
		repo.On("GetByEmail", ctx, "taken@example.com").Return(&domain.Account{ID: 2}, nil)

		_, _, _, err := svc.Signup(ctx, "Bo", "taken@example.com", "", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tm := security.NewTokenManager(authTestSecret, 60, 10080)
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	account := &domain.Account{ID: 1, Email: "ana@example.com", PasswordHash: string(hash), Role: domain.AccountRoleUser}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockAccountRepo)
		svc := NewAuthService(repo, tm)
		repo.On("GetByEmail", ctx, "ana@example.com").Return(account, nil)

		access, refresh, err := svc.Login(ctx, "ana@example.com", "correct-horse")
		require.NoError(t, err)

		claims, err := tm.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, int32(1), claims.AccountID)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)

		refreshClaims, err := tm.ValidateToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, refreshClaims.Type)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockAccountRepo)
		svc := NewAuthService(repo, tm)
		repo.On("GetByEmail", ctx, "ana@example.com").Return(account, nil)

		_, _, err := svc.Login(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockAccountRepo)
		svc := NewAuthService(repo, tm)
		repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tm := security.NewTokenManager(authTestSecret, 60, 10080)
	account := &domain.Account{ID: 1, Email: "ana@example.com", Role: domain.AccountRoleUser}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockAccountRepo)
		svc := NewAuthService(repo, tm)
		repo.On("GetByID", ctx, int32(1)).Return(account, nil)

		refresh, err := tm.GenerateRefreshToken(1, "ana@example.com")
		require.NoError(t, err)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		repo := new(MockAccountRepo)
		svc := NewAuthService(repo, tm)

		access, err := tm.GenerateAccessToken(1, "ana@example.com", "user")
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
