package catalog

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

// Client — сетевая реализация domain.CatalogGateway поверх gRPC.
type Client struct {
	api     commercev1.CatalogServiceClient
	logger  *log.Entry
	timeout time.Duration
}

// NewClient оборачивает готовое соединение с catalog-сервисом.
func NewClient(conn grpc.ClientConnInterface, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.New().WithField("component", "catalog-client")
	}
	return &Client{
		api:     commercev1.NewCatalogServiceClient(conn),
		logger:  logger,
		timeout: defaultCallTimeout,
	}
}

// CheckAvailability сообщает, хватает ли остатка на запрошенное количество.
func (c *Client) CheckAvailability(productID string, qty int32) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.api.CheckAvailability(ctx, &commercev1.CheckAvailabilityRequest{
		ProductId: productID,
		Quantity:  qty,
	})
	if err != nil {
		return false, fmt.Errorf("check availability %s: %w", productID, err)
	}
	return resp.Available, nil
}

// GetProductsByIDs возвращает товары по списку идентификаторов.
func (c *Client) GetProductsByIDs(ids []string) (map[string]domain.Product, error) {
	if len(ids) == 0 {
		return map[string]domain.Product{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.api.GetProductsByIds(ctx, &commercev1.GetProductsByIdsRequest{ProductIds: ids})
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}

	result := make(map[string]domain.Product, len(resp.Products))
	for _, p := range resp.Products {
		result[p.ProductId] = domain.Product{
			ID:          p.ProductId,
			Name:        p.Name,
			Description: p.Description,
			PriceMinor:  p.PriceMinor,
			StockQty:    p.StockQuantity,
			Category:    p.Category,
			CreatedAt:   time.Unix(p.CreatedAtUnix, 0).UTC(),
			UpdatedAt:   time.Unix(p.UpdatedAtUnix, 0).UTC(),
		}
	}
	return result, nil
}

var _ domain.CatalogGateway = (*Client)(nil)
