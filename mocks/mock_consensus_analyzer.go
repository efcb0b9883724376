package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"claimguard/internal/analysis"
)

// MockConsensusAnalyzer is a mock implementation of service.ConsensusAnalyzer.
type MockConsensusAnalyzer struct {
	mock.Mock
}

func (m *MockConsensusAnalyzer) Analyze(ctx context.Context, req analysis.Request) (*analysis.ConsensusResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.ConsensusResult), args.Error(1)
}
