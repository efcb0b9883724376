package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"claimguard/internal/service"
)

// MockAuthService doubles service.AuthService. Middleware tests script
// ValidateToken; auth handler tests script the login and refresh paths.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, input service.LoginInput) (*service.TokenPair, error) {
	args := m.Called(ctx, input)
	return get[*service.TokenPair](args, 0), args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return get[*service.TokenPair](args, 0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	return get[*service.Claims](args, 0), args.Error(1)
}
