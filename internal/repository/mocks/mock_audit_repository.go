package mocks

import (
	"context"

	"proposalapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, rec *model.AuditRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
