package grpcsvc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/service/token"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

// IdentityService реализует регистрацию, аутентификацию и профили.
type IdentityService struct {
	commercev1.UnimplementedIdentityServiceServer

	users  domain.UserRepository
	tokens *token.Issuer
	logger *log.Entry
}

// NewIdentityService конструирует сервис с зависимостями.
func NewIdentityService(users domain.UserRepository, tokens *token.Issuer, logger *log.Entry) *IdentityService {
	if logger == nil {
		logger = log.New().WithField("component", "identity-service")
	}
	return &IdentityService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register создаёт учётную запись с bcrypt-хэшем пароля.
func (s *IdentityService) Register(_ context.Context, req *commercev1.RegisterRequest) (*commercev1.RegisterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return &commercev1.RegisterResponse{Success: false, Message: "Username, email and password are required"}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.WithError(err).Error("failed to hash password")
		return nil, status.Error(codes.Internal, "internal error")
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return &commercev1.RegisterResponse{Success: false, Message: "Username or email already exists"}, nil
		}
		s.logger.WithError(err).WithField("username", req.Username).Error("failed to create user")
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.WithFields(log.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")

	return &commercev1.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		UserId:  user.ID,
	}, nil
}

// Login проверяет пароль и выпускает JWT.
// Несуществующий пользователь и неверный пароль неразличимы в ответе.
func (s *IdentityService) Login(_ context.Context, req *commercev1.LoginRequest) (*commercev1.LoginResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Username == "" || req.Password == "" {
		return &commercev1.LoginResponse{Success: false, Message: "Username and password are required"}, nil
	}

	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &commercev1.LoginResponse{Success: false, Message: "Invalid username or password"}, nil
		}
		s.logger.WithError(err).WithField("username", req.Username).Error("failed to load user")
		return nil, status.Error(codes.Internal, "internal error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return &commercev1.LoginResponse{Success: false, Message: "Invalid username or password"}, nil
	}

	signed, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("failed to issue token")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &commercev1.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   signed,
		User:    toProtoUser(user),
	}, nil
}

// VerifyUser отвечает на вопрос «существует ли пользователь» — порт
// сервиса заказов.
func (s *IdentityService) VerifyUser(_ context.Context, req *commercev1.VerifyUserRequest) (*commercev1.VerifyUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.UserId == "" {
		return &commercev1.VerifyUserResponse{Valid: false, Message: "User ID is required"}, nil
	}

	user, err := s.users.Get(req.UserId)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &commercev1.VerifyUserResponse{Valid: false, UserId: req.UserId, Message: "User not found"}, nil
		}
		s.logger.WithError(err).WithField("user_id", req.UserId).Error("failed to verify user")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &commercev1.VerifyUserResponse{
		Valid:   true,
		UserId:  user.ID,
		Message: "User is valid",
	}, nil
}

// GetUserProfile возвращает профиль пользователя.
func (s *IdentityService) GetUserProfile(_ context.Context, req *commercev1.GetUserProfileRequest) (*commercev1.GetUserProfileResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.UserId == "" {
		return &commercev1.GetUserProfileResponse{Success: false, Message: "User ID is required"}, nil
	}

	user, err := s.users.Get(req.UserId)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &commercev1.GetUserProfileResponse{Success: false, Message: "User not found"}, nil
		}
		s.logger.WithError(err).WithField("user_id", req.UserId).Error("failed to load profile")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &commercev1.GetUserProfileResponse{
		Success: true,
		Message: "Profile retrieved successfully",
		User:    toProtoUser(user),
	}, nil
}

// UpdateUserProfile меняет email пользователя.
func (s *IdentityService) UpdateUserProfile(_ context.Context, req *commercev1.UpdateUserProfileRequest) (*commercev1.UpdateUserProfileResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.UserId == "" {
		return &commercev1.UpdateUserProfileResponse{Success: false, Message: "User ID is required"}, nil
	}
	if req.Email == "" {
		return &commercev1.UpdateUserProfileResponse{Success: false, Message: "Email is required"}, nil
	}

	user, err := s.users.UpdateEmail(req.UserId, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &commercev1.UpdateUserProfileResponse{Success: false, Message: "User not found"}, nil
		}
		s.logger.WithError(err).WithField("user_id", req.UserId).Error("failed to update profile")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &commercev1.UpdateUserProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    toProtoUser(user),
	}, nil
}

func toProtoUser(user domain.User) *commercev1.User {
	return &commercev1.User{
		UserId:        user.ID,
		Username:      user.Username,
		Email:         user.Email,
		CreatedAtUnix: user.CreatedAt.Unix(),
		UpdatedAtUnix: user.UpdatedAt.Unix(),
	}
}
