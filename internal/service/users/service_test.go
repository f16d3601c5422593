package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	userRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/user"
	"github.com/avdeyev/BusPark-BookingService/internal/infra/tokenstore"
	"github.com/avdeyev/BusPark-BookingService/internal/service/users/models"
)

// --- Mocks ---

type mockUserRepo struct {
	createFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	listFn       func(ctx context.Context, role *domain.Role) ([]*domain.User, error)
	updateFn     func(ctx context.Context, id int64, name *string, phone *string, driver *domain.DriverProfile) error
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) List(ctx context.Context, role *domain.Role) ([]*domain.User, error) {
	return m.listFn(ctx, role)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, name *string, phone *string, driver *domain.DriverProfile) error {
	return m.updateFn(ctx, id, name, phone, driver)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockTokenManager struct{}

func (mockTokenManager) Issue(userID int64, role string, now time.Time) (string, error) {
	return "access-token", nil
}

type mockRefreshStore struct {
	saveFn func(ctx context.Context, token string, userID int64) error
	popFn  func(ctx context.Context, token string) (int64, error)
}

func (m *mockRefreshStore) Save(ctx context.Context, token string, userID int64) error {
	return m.saveFn(ctx, token, userID)
}

func (m *mockRefreshStore) Pop(ctx context.Context, token string) (int64, error) {
	return m.popFn(ctx, token)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(repo *mockUserRepo, store *mockRefreshStore) *Service {
	if store == nil {
		store = &mockRefreshStore{
			saveFn: func(ctx context.Context, token string, userID int64) error { return nil },
		}
	}
	return NewService(repo, mockTokenManager{}, store, noopLogger{})
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Ivan Petrov",
		Email:    "ivan@example.com",
		Phone:    "+79990001122",
		Password: "secret-password",
	}
}

// --- Tests ---

func TestRegister_PasswordIsHashed(t *testing.T) {
	var gotUser *domain.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			gotUser = user
			user.ID = 1
			return user, nil
		},
	}

	resp, err := newService(repo, nil).Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "passenger", resp.Role)
	assert.NotEqual(t, "secret-password", gotUser.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(gotUser.PasswordHash), []byte("secret-password")))
}

func TestRegister_ShortPassword(t *testing.T) {
	req := registerRequest()
	req.Password = "short"

	_, err := newService(&mockUserRepo{}, nil).Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_DriverRequiresProfile(t *testing.T) {
	req := registerRequest()
	req.Role = "driver"

	_, err := newService(&mockUserRepo{}, nil).Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_DriverWithProfile(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			user.ID = 2
			return user, nil
		},
	}

	req := registerRequest()
	req.Role = "driver"
	req.Driver = &models.DriverProfileRequest{
		EmploymentStatus: "full_time",
		ShiftPreference:  "morning",
		BloodType:        "O+",
	}

	resp, err := newService(repo, nil).Register(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.Driver)
	assert.Equal(t, "full_time", resp.Driver.EmploymentStatus)
}

func TestRegister_InvalidDriverProfile(t *testing.T) {
	req := registerRequest()
	req.Role = "driver"
	req.Driver = &models.DriverProfileRequest{
		EmploymentStatus: "freelance",
		ShiftPreference:  "morning",
		BloodType:        "O+",
	}

	_, err := newService(&mockUserRepo{}, nil).Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return nil, userRepo.ErrDuplicateEmail
		},
	}

	_, err := newService(repo, nil).Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, PasswordHash: string(hash), Role: domain.RolePassenger}, nil
		},
	}

	var savedToken string
	store := &mockRefreshStore{
		saveFn: func(ctx context.Context, token string, userID int64) error {
			savedToken = token
			return nil
		},
	}

	pair, err := newService(repo, store).Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, savedToken, pair.RefreshToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
		},
	}

	_, err = newService(repo, nil).Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, userRepo.ErrUserNotFound
		},
	}

	_, err := newService(repo, nil).Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RolePassenger}, nil
		},
	}

	var savedToken string
	store := &mockRefreshStore{
		popFn: func(ctx context.Context, token string) (int64, error) {
			assert.Equal(t, "old-refresh", token)
			return 1, nil
		},
		saveFn: func(ctx context.Context, token string, userID int64) error {
			savedToken = token
			return nil
		},
	}

	pair, err := newService(repo, store).Refresh(context.Background(), &models.RefreshRequest{RefreshToken: "old-refresh"})
	require.NoError(t, err)

	assert.Equal(t, savedToken, pair.RefreshToken)
	assert.NotEqual(t, "old-refresh", pair.RefreshToken)
}

func TestRefresh_UnknownToken(t *testing.T) {
	store := &mockRefreshStore{
		popFn: func(ctx context.Context, token string) (int64, error) {
			return 0, tokenstore.ErrTokenNotFound
		},
	}

	_, err := newService(&mockUserRepo{}, store).Refresh(context.Background(), &models.RefreshRequest{RefreshToken: "stale"})
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
