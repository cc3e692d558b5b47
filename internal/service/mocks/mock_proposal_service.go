package mocks

import (
	"context"

	"proposalapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockProposalService struct {
	mock.Mock
}

func (m *MockProposalService) Generate(ctx context.Context, req service.GenerateRequest) (*service.GenerateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateResult), args.Error(1)
}
