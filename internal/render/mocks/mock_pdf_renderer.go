package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	args := m.Called(ctx, htmlContent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
