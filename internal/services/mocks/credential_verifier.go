package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// CredentialVerifier is a testify mock of service.CredentialVerifier.
type CredentialVerifier struct {
	mock.Mock
}

func (m *CredentialVerifier) Verify(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)

	return args.Error(0)
}
