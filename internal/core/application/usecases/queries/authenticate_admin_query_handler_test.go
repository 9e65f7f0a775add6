package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"penguinadmin/internal/core/application/usecases/queries"
	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAdminFinder struct {
	mock.Mock
}

func (m *MockAdminFinder) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func TestAuthenticateAdminQueryHandler(t *testing.T) {
	account, err := admin.NewAdmin(kernel.NewUUID(), "boss@penguin.io", "correct horse", "", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		found    *admin.Admin
		findErr  error
		wantErr  error
	}{
		{name: "valid credentials", password: "correct horse", found: account},
		{name: "wrong password", password: "battery staple", found: account, wantErr: queries.ErrInvalidCredentials},
		{
			name: "unknown email", password: "correct horse",
			findErr: errs.NewObjectNotFoundError("admin", "boss@penguin.io"), wantErr: queries.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := &MockAdminFinder{}
			finder.On("GetByEmail", mock.Anything, "boss@penguin.io").Return(tt.found, tt.findErr)
			handler := queries.NewAuthenticateAdminQueryHandler(finder)
			q, qErr := queries.NewAuthenticateAdminQuery("boss@penguin.io", tt.password)
			require.NoError(t, qErr)

			got, err := handler.Handle(context.Background(), q)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.ID.IsEqual(account.ID()))
			assert.Equal(t, admin.DefaultRole, got.Role)
			finder.AssertExpectations(t)
		})
	}
}

func TestAuthenticateAdminQueryHandler_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	finder := &MockAdminFinder{}
	finder.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, storeErr)
	handler := queries.NewAuthenticateAdminQueryHandler(finder)
	q, err := queries.NewAuthenticateAdminQuery("boss@penguin.io", "x")
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), q)

	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, queries.ErrInvalidCredentials)
}
