package mocks

import (
	"context"

	"proposalapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) FindByID(ctx context.Context, id int64) (*model.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Destination), args.Error(1)
}
