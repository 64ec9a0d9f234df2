package identity

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

const defaultCallTimeout = 5 * time.Second

// Client — сетевая реализация domain.IdentityVerifier поверх gRPC.
type Client struct {
	api     commercev1.IdentityServiceClient
	logger  *log.Entry
	timeout time.Duration
}

// NewClient оборачивает готовое соединение с identity-сервисом.
func NewClient(conn grpc.ClientConnInterface, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.New().WithField("component", "identity-client")
	}
	return &Client{
		api:     commercev1.NewIdentityServiceClient(conn),
		logger:  logger,
		timeout: defaultCallTimeout,
	}
}

// VerifyUser возвращает true, если пользователь существует.
func (c *Client) VerifyUser(userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.api.VerifyUser(ctx, &commercev1.VerifyUserRequest{UserId: userID})
	if err != nil {
		return false, fmt.Errorf("verify user %s: %w", userID, err)
	}
	return resp.Valid, nil
}

var _ domain.IdentityVerifier = (*Client)(nil)
