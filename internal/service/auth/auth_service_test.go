package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/cache"
	"github.com/Domenick1991/sunshinehotel/internal/clock"
	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/hotelapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Signup(ctx context.Context, in hotelapi.SignupInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockAPI) Login(ctx context.Context, in hotelapi.LoginInput) (hotelapi.LoginResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(hotelapi.LoginResult), args.Error(1)
}

var now = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T, api API) (*AuthService, *cache.MemoryCache) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)
	store := cache.NewMemoryCache(time.Hour, time.Minute)
	admin := AdminAccount{ID: "2023", Email: "admin@sunshine.example", PasswordHash: string(hash)}
	return NewAuthService(api, store, admin, clock.NewFixed(now)), store
}

func TestAuthService_Signup(t *testing.T) {
	api := &MockAPI{}
	service, _ := newService(t, api)
	ctx := context.Background()

	api.On("Signup", ctx, hotelapi.SignupInput{Name: "Asha", Email: "asha@example.com", Password: "secret1"}).
		Return("Signup successful", nil).Once()

	msg, err := service.Signup(ctx, SignupRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "Signup successful", msg)

	_, err = service.Signup(ctx, SignupRequest{Name: "Asha", Email: "asha@example.com", Password: "123"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	api.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	api := &MockAPI{}
	service, store := newService(t, api)
	ctx := context.Background()

	api.On("Login", ctx, hotelapi.LoginInput{Email: "asha@example.com", Password: "pw"}).
		Return(hotelapi.LoginResult{GuestID: "g1", Name: "Asha", Token: "tok", Message: "Login successful"}, nil).Once()

	sess, msg, err := service.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "Login successful", msg)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, "asha@example.com", sess.Email)
	assert.Equal(t, domain.RoleGuest, sess.Role)
	assert.Equal(t, now, sess.CreatedAt)
	assert.True(t, sess.Authenticated())

	stored, err := store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "g1", stored.GuestID)

	got, err := service.Session(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, got.Token)

	require.NoError(t, service.Logout(ctx, sess.ID))
	_, err = service.Session(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("api rejects", func(t *testing.T) {
		api := &MockAPI{}
		service, _ := newService(t, api)
		apiErr := &hotelapi.APIError{StatusCode: 401, Message: "Invalid email or password"}
		api.On("Login", ctx, mock.Anything).Return(hotelapi.LoginResult{}, apiErr).Once()

		sess, _, err := service.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "bad"})

		assert.Nil(t, sess)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("no token issued", func(t *testing.T) {
		api := &MockAPI{}
		service, _ := newService(t, api)
		api.On("Login", ctx, mock.Anything).Return(hotelapi.LoginResult{GuestID: "g1"}, nil).Once()

		_, _, err := service.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "pw"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("invalid email", func(t *testing.T) {
		api := &MockAPI{}
		service, _ := newService(t, api)

		_, _, err := service.Login(ctx, LoginRequest{Email: "asha", Password: "pw"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthService_AdminLogin(t *testing.T) {
	service, _ := newService(t, &MockAPI{})
	ctx := context.Background()

	testCases := []struct {
		name    string
		req     AdminLoginRequest
		wantErr error
	}{
		{name: "valid", req: AdminLoginRequest{AdminID: "2023", Email: "admin@sunshine.example", Password: "s3cret!"}},
		{name: "wrong password", req: AdminLoginRequest{AdminID: "2023", Email: "admin@sunshine.example", Password: "nope"}, wantErr: domain.ErrInvalidCredentials},
		{name: "wrong id", req: AdminLoginRequest{AdminID: "1", Email: "admin@sunshine.example", Password: "s3cret!"}, wantErr: domain.ErrInvalidCredentials},
		{name: "wrong email", req: AdminLoginRequest{AdminID: "2023", Email: "other@sunshine.example", Password: "s3cret!"}, wantErr: domain.ErrInvalidCredentials},
		{name: "missing id", req: AdminLoginRequest{Email: "admin@sunshine.example", Password: "s3cret!"}, wantErr: domain.ErrInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sess, err := service.AdminLogin(ctx, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, sess)
				return
			}
			require.NoError(t, err)
			assert.True(t, sess.IsAdmin())
			assert.False(t, sess.Authenticated())
		})
	}
}

func TestAuthService_AdminLogin_NoHashConfigured(t *testing.T) {
	service := NewAuthService(&MockAPI{}, cache.NewMemoryCache(time.Hour, time.Minute), AdminAccount{ID: "2023", Email: "a@b.co"}, nil)

	_, err := service.AdminLogin(context.Background(), AdminLoginRequest{AdminID: "2023", Email: "a@b.co", Password: ""})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.AdminLogin(context.Background(), AdminLoginRequest{AdminID: "2023", Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
