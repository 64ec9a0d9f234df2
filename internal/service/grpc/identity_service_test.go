package grpcsvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	grpcsvc "github.com/vladislavdragonenkov/commerce/internal/service/grpc"
	"github.com/vladislavdragonenkov/commerce/internal/service/token"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

type identityTestEnv struct {
	users   domain.UserRepository
	tokens  *token.Issuer
	service *grpcsvc.IdentityService
}

func newIdentityEnv(t *testing.T) *identityTestEnv {
	t.Helper()

	users := memory.NewUserRepository()
	issuer, err := token.NewIssuer("test-secret", "", time.Hour)
	require.NoError(t, err)

	return &identityTestEnv{
		users:   users,
		tokens:  issuer,
		service: grpcsvc.NewIdentityService(users, issuer, loggerForTests()),
	}
}

func (e *identityTestEnv) register(t *testing.T, username, email, password string) string {
	t.Helper()

	resp, err := e.service.Register(context.Background(), &commercev1.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	require.NotEmpty(t, resp.UserId)
	return resp.UserId
}

func TestIdentityService_RegisterAndLogin(t *testing.T) {
	env := newIdentityEnv(t)
	userID := env.register(t, "alice", "alice@example.com", "s3cret")

	resp, err := env.service.Login(context.Background(), &commercev1.LoginRequest{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	require.Equal(t, "Login successful", resp.Message)
	require.Equal(t, userID, resp.User.UserId)
	require.Equal(t, "alice@example.com", resp.User.Email)

	// Выданный токен проверяется штатным Verify и указывает на владельца.
	subject, err := env.tokens.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, userID, subject)
}

func TestIdentityService_Register_Validation(t *testing.T) {
	env := newIdentityEnv(t)

	resp, err := env.service.Register(context.Background(), &commercev1.RegisterRequest{Username: "alice"})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Username, email and password are required", resp.Message)

	env.register(t, "alice", "alice@example.com", "s3cret")

	dup, err := env.service.Register(context.Background(), &commercev1.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.False(t, dup.Success)
	require.Equal(t, "Username or email already exists", dup.Message)
}

func TestIdentityService_Login_InvalidCredentials(t *testing.T) {
	env := newIdentityEnv(t)
	env.register(t, "alice", "alice@example.com", "s3cret")

	// Несуществующий пользователь и неверный пароль дают одинаковый ответ.
	for _, req := range []*commercev1.LoginRequest{
		{Username: "ghost", Password: "s3cret"},
		{Username: "alice", Password: "wrong"},
	} {
		resp, err := env.service.Login(context.Background(), req)
		require.NoError(t, err)
		require.False(t, resp.Success)
		require.Equal(t, "Invalid username or password", resp.Message)
		require.Empty(t, resp.Token)
	}

	empty, err := env.service.Login(context.Background(), &commercev1.LoginRequest{})
	require.NoError(t, err)
	require.False(t, empty.Success)
	require.Equal(t, "Username and password are required", empty.Message)
}

func TestIdentityService_VerifyUser(t *testing.T) {
	env := newIdentityEnv(t)
	userID := env.register(t, "alice", "alice@example.com", "s3cret")

	resp, err := env.service.VerifyUser(context.Background(), &commercev1.VerifyUserRequest{UserId: userID})
	require.NoError(t, err)
	require.True(t, resp.Valid)
	require.Equal(t, userID, resp.UserId)
	require.Equal(t, "User is valid", resp.Message)

	missing, err := env.service.VerifyUser(context.Background(), &commercev1.VerifyUserRequest{UserId: "missing"})
	require.NoError(t, err)
	require.False(t, missing.Valid)
	require.Equal(t, "User not found", missing.Message)

	blank, err := env.service.VerifyUser(context.Background(), &commercev1.VerifyUserRequest{})
	require.NoError(t, err)
	require.False(t, blank.Valid)
	require.Equal(t, "User ID is required", blank.Message)
}

func TestIdentityService_Profile(t *testing.T) {
	env := newIdentityEnv(t)
	userID := env.register(t, "alice", "alice@example.com", "s3cret")

	profile, err := env.service.GetUserProfile(context.Background(), &commercev1.GetUserProfileRequest{UserId: userID})
	require.NoError(t, err)
	require.True(t, profile.Success)
	require.Equal(t, "alice", profile.User.Username)

	updated, err := env.service.UpdateUserProfile(context.Background(), &commercev1.UpdateUserProfileRequest{
		UserId: userID,
		Email:  "new@example.com",
	})
	require.NoError(t, err)
	require.True(t, updated.Success, updated.Message)
	require.Equal(t, "new@example.com", updated.User.Email)

	noEmail, err := env.service.UpdateUserProfile(context.Background(), &commercev1.UpdateUserProfileRequest{UserId: userID})
	require.NoError(t, err)
	require.False(t, noEmail.Success)
	require.Equal(t, "Email is required", noEmail.Message)

	missing, err := env.service.GetUserProfile(context.Background(), &commercev1.GetUserProfileRequest{UserId: "missing"})
	require.NoError(t, err)
	require.False(t, missing.Success)
	require.Equal(t, "User not found", missing.Message)
}
