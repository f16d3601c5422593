package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	userRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/user"
	"github.com/avdeyev/BusPark-BookingService/internal/infra/tokenstore"
	"github.com/avdeyev/BusPark-BookingService/internal/service/users/models"
)

const minPasswordLength = 8

// Service сервис учетных записей и аутентификации
type Service struct {
	userRepo     UserRepository
	tokenManager TokenManager
	refreshStore RefreshTokenStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	tokenManager TokenManager,
	refreshStore RefreshTokenStore,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		refreshStore: refreshStore,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// Register регистрирует нового пользователя
// Пароль хранится только как bcrypt-хэш
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: registering user email=%s", req.Email)

	user, err := s.buildUser(req)
	if err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}
	user.PasswordHash = string(hash)

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%d registered, role=%s", created.ID, created.Role)
	return models.FromDomainUser(created), nil
}

// Login проверяет учетные данные и выдает пару токенов
// Для неизвестного email и неверного пароля ответ одинаковый
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPairResponse, error) {
	s.logger.Info("Login: attempt for email=%s", req.Email)

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: email=%s not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return pair, nil
}

// Refresh обменивает refresh-токен на новую пару токенов
// Токен одноразовый: после обмена старый перестает действовать
func (s *Service) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.TokenPairResponse, error) {
	s.logger.Info("Refresh: refreshing token pair")

	userID, err := s.refreshStore.Pop(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			s.logger.Warn("Refresh: unknown or expired refresh token")
			return nil, ErrInvalidRefreshToken
		}
		s.logger.Error("Refresh: token store error: %v", err)
		return nil, fmt.Errorf("%w: Refresh - token store error: %v", ErrInternal, err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Refresh: user id=%d no longer exists", userID)
			return nil, ErrInvalidRefreshToken
		}
		s.logger.Error("Refresh: repository error for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Refresh - repository error: %v", ErrInternal, err)
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Refresh: tokens rotated for user id=%d", user.ID)
	return pair, nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching user id=%d", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// List получает пользователей, опционально фильтруя по роли
func (s *Service) List(ctx context.Context, roleFilter *string) (*models.UserListResponse, error) {
	s.logger.Info("List: fetching users, role=%v", roleFilter)

	var role *domain.Role
	if roleFilter != nil {
		parsed := domain.Role(*roleFilter)
		if !parsed.IsValid() {
			s.logger.Warn("List: invalid role=%s", *roleFilter)
			return nil, fmt.Errorf("%w: invalid role", ErrInvalidInput)
		}
		role = &parsed
	}

	users, err := s.userRepo.List(ctx, role)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// Update частично обновляет пользователя
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for user id=%d", id)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if req.Name != nil && *req.Name == "" {
		s.logger.Warn("Update: empty name for user id=%d", id)
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}

	var driver *domain.DriverProfile
	if req.Driver != nil {
		profile, err := req.Driver.ToDomain()
		if err != nil {
			s.logger.Warn("Update: invalid driver profile for user id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// Профиль водителя есть только у роли driver
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				s.logger.Warn("Update: user id=%d not found", id)
				return nil, ErrUserNotFound
			}
			s.logger.Error("Update: repository error for user id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		if user.Role != domain.RoleDriver {
			s.logger.Warn("Update: user id=%d has role=%s, driver profile not allowed", id, user.Role)
			return nil, fmt.Errorf("%w: driver profile is only valid for drivers", ErrInvalidInput)
		}
		driver = profile
	}

	if err := s.userRepo.Update(ctx, id, req.Name, req.Phone, driver); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет пользователя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting user id=%d", id)

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: user id=%d deleted", id)
	return nil
}

// Вспомогательные методы

func (s *Service) buildUser(req *models.RegisterRequest) (*domain.User, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	role := domain.RolePassenger
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, req.Role)
		}
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  role,
	}

	if role == domain.RoleDriver {
		if req.Driver == nil {
			return nil, fmt.Errorf("%w: driver profile is required for drivers", ErrInvalidInput)
		}
		profile, err := req.Driver.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		user.Driver = profile
	} else if req.Driver != nil {
		return nil, fmt.Errorf("%w: driver profile is only valid for drivers", ErrInvalidInput)
	}

	return user, nil
}

// issueTokens выпускает access-токен и одноразовый refresh-токен
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*models.TokenPairResponse, error) {
	access, err := s.tokenManager.Issue(user.ID, string(user.Role), s.timeProvider.Now())
	if err != nil {
		s.logger.Error("issueTokens: failed to issue access token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issueTokens - failed to issue access token: %v", ErrInternal, err)
	}

	refresh := uuid.NewString()
	if err := s.refreshStore.Save(ctx, refresh, user.ID); err != nil {
		s.logger.Error("issueTokens: failed to store refresh token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issueTokens - failed to store refresh token: %v", ErrInternal, err)
	}

	return &models.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *models.FromDomainUser(user),
	}, nil
}
