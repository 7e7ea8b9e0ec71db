package service

import (
	"context"
	"database/sql"
	"errors"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
	"ecobin-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

type authService struct {
	accountRepo  repository.AccountRepository
	tokenManager security.TokenManager
}

func NewAuthService(accountRepo repository.AccountRepository, tokenManager security.TokenManager) AuthService {
	return &authService{
		accountRepo:  accountRepo,
		tokenManager: tokenManager,
	}
}

func (s *authService) Signup(ctx context.Context, fullName, email, phone, password string) (*domain.Account, string, string, error) {
	if existing, err := s.accountRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	account := &domain.Account{
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         domain.AccountRoleUser,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.generateTokenPair(account)
	return account, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.generateTokenPair(account)
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokenManager.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	account, err := s.accountRepo.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrAccountNotFound
		}
		return "", "", err
	}

	return s.generateTokenPair(account)
}

func (s *authService) generateTokenPair(account *domain.Account) (string, string, error) {
	access, err := s.tokenManager.GenerateAccessToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokenManager.GenerateRefreshToken(account.ID, account.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
