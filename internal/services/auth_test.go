package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runInTx makes a Transactor mock execute the callback directly.
func runInTx(tx *MockTransactor) *gomock.Call {
	return tx.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

type authMocks struct {
	tx       *MockTransactor
	provider *MockIdentityProvider
	states   *MockOAuthStateStore
	users    *MockUserUpserter
	wallets  *MockWalletProvisioner
	jwt      *MockJWTGenerator
}

func newAuthService(t *testing.T) (*AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		tx:       NewMockTransactor(ctrl),
		provider: NewMockIdentityProvider(ctrl),
		states:   NewMockOAuthStateStore(ctrl),
		users:    NewMockUserUpserter(ctrl),
		wallets:  NewMockWalletProvisioner(ctrl),
		jwt:      NewMockJWTGenerator(ctrl),
	}
	return NewAuthService(m.tx, m.provider, m.states, m.users, m.wallets, m.jwt), m
}

func TestAuthService_GoogleAuthURL(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthService(t)

	var saved string
	m.states.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, state string) error {
		saved = state
		return nil
	})
	m.provider.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(state string) string {
		return "https://accounts.google.com/o/oauth2/auth?state=" + state
	})

	url, err := svc.GoogleAuthURL(ctx)
	require.NoError(t, err)
	assert.Len(t, saved, 32)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state="+saved, url)
}

func TestAuthService_GoogleAuthURL_StoreError(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthService(t)

	m.states.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("redis down"))

	url, err := svc.GoogleAuthURL(ctx)
	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestAuthService_GoogleCallback(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthService(t)

	profile := &models.GoogleProfile{Sub: "123", Email: "ada@example.com", Name: "Ada"}
	user := &models.UserDB{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	wallet := &models.WalletDB{ID: uuid.New(), WalletNumber: "1234567890123", UserID: user.ID}

	m.states.EXPECT().Consume(ctx, "state-1").Return(true, nil)
	m.provider.EXPECT().Exchange(ctx, "code-1").Return(profile, nil)
	runInTx(m.tx)
	m.users.EXPECT().Upsert(ctx, *profile).Return(user, nil)
	m.wallets.EXPECT().GetOrCreate(ctx, user.ID).Return(wallet, nil)
	m.jwt.EXPECT().Generate(ctx, user.ID, user.Email).Return("jwt-token", nil)

	signIn, err := svc.GoogleCallback(ctx, "code-1", "state-1")
	require.NoError(t, err)
	assert.Equal(t, user, signIn.User)
	assert.Equal(t, wallet, signIn.Wallet)
	assert.Equal(t, "jwt-token", signIn.Token)
}

func TestAuthService_GoogleCallback_WithoutState(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthService(t)

	profile := &models.GoogleProfile{Email: "ada@example.com"}
	user := &models.UserDB{ID: uuid.New(), Email: "ada@example.com"}

	m.provider.EXPECT().Exchange(ctx, "code-1").Return(profile, nil)
	runInTx(m.tx)
	m.users.EXPECT().Upsert(ctx, *profile).Return(user, nil)
	m.wallets.EXPECT().GetOrCreate(ctx, user.ID).Return(&models.WalletDB{}, nil)
	m.jwt.EXPECT().Generate(ctx, user.ID, user.Email).Return("jwt-token", nil)

	signIn, err := svc.GoogleCallback(ctx, "code-1", "")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", signIn.Token)
}

func TestAuthService_GoogleCallback_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		code    string
		state   string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name:    "missing code",
			code:    "",
			setup:   func(m authMocks) {},
			wantErr: apperrors.ErrBadRequest,
		},
		{
			name:  "unknown state",
			code:  "code-1",
			state: "forged",
			setup: func(m authMocks) {
				m.states.EXPECT().Consume(ctx, "forged").Return(false, nil)
			},
			wantErr: apperrors.ErrInvalidState,
		},
		{
			name: "invalid grant",
			code: "code-1",
			setup: func(m authMocks) {
				m.provider.EXPECT().Exchange(ctx, "code-1").Return(nil, apperrors.ErrInvalidGrant)
			},
			wantErr: apperrors.ErrInvalidGrant,
		},
		{
			name: "upsert failure rolls back",
			code: "code-1",
			setup: func(m authMocks) {
				m.provider.EXPECT().Exchange(ctx, "code-1").Return(&models.GoogleProfile{Email: "a@b.c"}, nil)
				runInTx(m.tx)
				m.users.EXPECT().Upsert(ctx, gomock.Any()).Return(nil, errDB)
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			signIn, err := svc.GoogleCallback(ctx, tt.code, tt.state)
			assert.Nil(t, signIn)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

var errDB = errors.New("db failure")
