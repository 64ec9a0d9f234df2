package grpcsvc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/service/catalog"
	"github.com/vladislavdragonenkov/commerce/internal/service/checkout"
	grpcsvc "github.com/vladislavdragonenkov/commerce/internal/service/grpc"
	"github.com/vladislavdragonenkov/commerce/internal/service/identity"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

const bufSize = 1024 * 1024

func idemCtx(key string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "idempotency-key", key)
}

type orderTestEnv struct {
	products domain.ProductRepository
	gateway  *catalog.MockGateway
	verifier *identity.MockVerifier
	service  *grpcsvc.OrderService
}

func newOrderEnv() *orderTestEnv {
	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository(products)
	gateway := catalog.NewMockGateway()
	verifier := identity.NewMockVerifier()
	logger := loggerForTests()

	orch := checkout.NewOrchestratorWithoutMetrics(
		orders, products, verifier, gateway,
		memory.NewOutboxRepository(), memory.NewTimelineRepository(),
		logger.WithField("layer", "checkout"),
	)
	service := grpcsvc.NewOrderService(orch, memory.NewIdempotencyRepository(), logger)

	return &orderTestEnv{
		products: products,
		gateway:  gateway,
		verifier: verifier,
		service:  service,
	}
}

func (e *orderTestEnv) seedProduct(t *testing.T, id string, priceMinor int64, stock int32) {
	t.Helper()

	now := time.Now().UTC()
	product := domain.Product{
		ID:         id,
		Name:       "Widget " + id,
		PriceMinor: priceMinor,
		StockQty:   stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, e.products.Create(product))
	e.gateway.Products[id] = product
}

func newTestServer(t *testing.T) (*orderTestEnv, *grpc.ClientConn) {
	t.Helper()

	env := newOrderEnv()
	listener := bufconn.Listen(bufSize)
	logger := loggerForTests()

	server := grpc.NewServer()
	commercev1.RegisterOrderServiceServer(server, env.service)

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return env, conn
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func TestOrderService_CreateAndGet(t *testing.T) {
	env, conn := newTestServer(t)
	env.seedProduct(t, "prod-1", 999, 10)

	client := commercev1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.CreateOrder(ctx, &commercev1.CreateOrderRequest{
		UserId:          "user-1",
		ShippingAddress: "10 Main St",
		Items: []*commercev1.CreateOrderItem{
			{ProductId: "prod-1", Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	require.NotEmpty(t, resp.OrderId)
	require.Equal(t, int64(1998), resp.Order.TotalMinor)
	require.Equal(t, commercev1.OrderStatus_ORDER_STATUS_PENDING, resp.Order.Status)
	require.Equal(t, "Widget prod-1", resp.Order.Items[0].ProductName)
	require.Equal(t, int64(1998), resp.Order.Items[0].SubtotalMinor)

	getResp, err := client.GetOrder(ctx, &commercev1.GetOrderRequest{OrderId: resp.OrderId})
	require.NoError(t, err)
	require.True(t, getResp.Success)
	require.Equal(t, resp.OrderId, getResp.Order.OrderId)
	require.Equal(t, int64(1998), getResp.Order.TotalMinor)
}

func TestOrderService_CreateOrder_WithoutIdempotencyKey(t *testing.T) {
	env := newOrderEnv()
	env.seedProduct(t, "prod-1", 500, 5)

	// Ключ идемпотентности опционален: без него запрос проходит напрямую.
	resp, err := env.service.CreateOrder(context.Background(), &commercev1.CreateOrderRequest{
		UserId: "user-1",
		Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	require.NotEmpty(t, resp.OrderId)
}

func TestOrderService_CreateOrder_IdempotentReplay(t *testing.T) {
	env := newOrderEnv()
	env.seedProduct(t, "prod-1", 500, 10)

	req := &commercev1.CreateOrderRequest{
		UserId: "user-1",
		Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}},
	}

	first, err := env.service.CreateOrder(idemCtx("create-replay-1"), req)
	require.NoError(t, err)
	second, err := env.service.CreateOrder(idemCtx("create-replay-1"), req)
	require.NoError(t, err)

	require.Equal(t, first.OrderId, second.OrderId)

	// Заказ создан один раз, остаток списан один раз.
	list, err := env.service.GetOrdersByUser(context.Background(), &commercev1.GetOrdersByUserRequest{UserId: "user-1"})
	require.NoError(t, err)
	require.Equal(t, int32(1), list.TotalCount)

	product, err := env.products.Get("prod-1")
	require.NoError(t, err)
	require.Equal(t, int32(9), product.StockQty)
}

func TestOrderService_CreateOrder_IdempotencyHashMismatch(t *testing.T) {
	env := newOrderEnv()
	env.seedProduct(t, "prod-1", 500, 10)

	_, err := env.service.CreateOrder(idemCtx("create-replay-2"), &commercev1.CreateOrderRequest{
		UserId: "user-1",
		Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = env.service.CreateOrder(idemCtx("create-replay-2"), &commercev1.CreateOrderRequest{
		UserId: "user-1",
		Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 2}},
	})
	require.Error(t, err)
	require.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestOrderService_CreateOrder_BusinessRejections(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(env *orderTestEnv)
		req     *commercev1.CreateOrderRequest
		message string
	}{
		{
			name:    "empty user",
			req:     &commercev1.CreateOrderRequest{Items: []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}}},
			message: "User ID is required",
		},
		{
			name:    "no items",
			req:     &commercev1.CreateOrderRequest{UserId: "user-1"},
			message: "Order must contain at least one item",
		},
		{
			name:    "unknown user",
			setup:   func(env *orderTestEnv) { env.verifier.Valid = false },
			req:     &commercev1.CreateOrderRequest{UserId: "ghost", Items: []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}}},
			message: "User not found",
		},
		{
			name:    "unavailable product",
			setup:   func(env *orderTestEnv) { env.gateway.Available["prod-1"] = false },
			req:     &commercev1.CreateOrderRequest{UserId: "user-1", Items: []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}}},
			message: "Product prod-1 not available in requested quantity",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newOrderEnv()
			env.seedProduct(t, "prod-1", 999, 10)
			if tc.setup != nil {
				tc.setup(env)
			}

			resp, err := env.service.CreateOrder(context.Background(), tc.req)
			require.NoError(t, err)
			require.False(t, resp.Success)
			require.Equal(t, tc.message, resp.Message)
			require.Empty(t, resp.OrderId)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	env := newOrderEnv()
	env.seedProduct(t, "prod-1", 999, 10)

	created, err := env.service.CreateOrder(context.Background(), &commercev1.CreateOrderRequest{
		UserId: "user-1",
		Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.True(t, created.Success)

	resp, err := env.service.CancelOrder(context.Background(), &commercev1.CancelOrderRequest{
		OrderId: created.OrderId,
		UserId:  "user-1",
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)

	product, err := env.products.Get("prod-1")
	require.NoError(t, err)
	require.Equal(t, int32(10), product.StockQty)

	// Повторная отмена — бизнес-отказ, не статусная ошибка.
	resp, err = env.service.CancelOrder(context.Background(), &commercev1.CancelOrderRequest{OrderId: created.OrderId})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "order is already cancelled", resp.Message)
}

func TestOrderService_CancelOrder_OwnerMismatch(t *testing.T) {
	env := newOrderEnv()
	env.seedProduct(t, "prod-1", 999, 10)

	created, err := env.service.CreateOrder(context.Background(), &commercev1.CreateOrderRequest{
		UserId: "user-1",
		Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := env.service.CancelOrder(context.Background(), &commercev1.CancelOrderRequest{
		OrderId: created.OrderId,
		UserId:  "intruder",
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "order does not belong to this user", resp.Message)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	env := newOrderEnv()
	env.seedProduct(t, "prod-1", 999, 10)

	created, err := env.service.CreateOrder(context.Background(), &commercev1.CreateOrderRequest{
		UserId:          "user-1",
		ShippingAddress: "10 Main St",
		Items:           []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := env.service.UpdateOrder(context.Background(), &commercev1.UpdateOrderRequest{
		OrderId: created.OrderId,
		Status:  commercev1.OrderStatus_ORDER_STATUS_SHIPPED,
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	require.Equal(t, commercev1.OrderStatus_ORDER_STATUS_SHIPPED, resp.Order.Status)
	require.Equal(t, "10 Main St", resp.Order.ShippingAddress)

	// UNSPECIFIED в UpdateOrder — невалидный статус.
	resp, err = env.service.UpdateOrder(context.Background(), &commercev1.UpdateOrderRequest{
		OrderId: created.OrderId,
		Status:  commercev1.OrderStatus_ORDER_STATUS_UNSPECIFIED,
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Invalid order status", resp.Message)

	resp, err = env.service.UpdateOrder(context.Background(), &commercev1.UpdateOrderRequest{
		OrderId: "missing",
		Status:  commercev1.OrderStatus_ORDER_STATUS_SHIPPED,
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Order not found", resp.Message)
}

func TestOrderService_ListOrders(t *testing.T) {
	env := newOrderEnv()
	env.seedProduct(t, "prod-1", 100, 100)

	var orderIDs []string
	for i := 0; i < 3; i++ {
		created, err := env.service.CreateOrder(context.Background(), &commercev1.CreateOrderRequest{
			UserId: "user-1",
			Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}},
		})
		require.NoError(t, err)
		require.True(t, created.Success)
		orderIDs = append(orderIDs, created.OrderId)
	}

	_, err := env.service.UpdateOrder(context.Background(), &commercev1.UpdateOrderRequest{
		OrderId: orderIDs[0],
		Status:  commercev1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	require.NoError(t, err)

	all, err := env.service.ListOrders(context.Background(), &commercev1.ListOrdersRequest{})
	require.NoError(t, err)
	require.True(t, all.Success)
	require.Equal(t, int32(3), all.TotalCount)
	require.Len(t, all.Orders, 3)

	delivered, err := env.service.ListOrders(context.Background(), &commercev1.ListOrdersRequest{
		Status: commercev1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	require.NoError(t, err)
	require.Equal(t, int32(1), delivered.TotalCount)
	require.Len(t, delivered.Orders, 1)
	require.Equal(t, orderIDs[0], delivered.Orders[0].OrderId)
}

func TestOrderService_GetOrdersByUser(t *testing.T) {
	env := newOrderEnv()
	env.seedProduct(t, "prod-1", 100, 100)

	for i := 0; i < 3; i++ {
		created, err := env.service.CreateOrder(context.Background(), &commercev1.CreateOrderRequest{
			UserId: "user-1",
			Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 1}},
		})
		require.NoError(t, err)
		require.True(t, created.Success)
	}

	resp, err := env.service.GetOrdersByUser(context.Background(), &commercev1.GetOrdersByUserRequest{
		UserId:   "user-1",
		Page:     1,
		PageSize: 2,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, int32(3), resp.TotalCount)
	require.Len(t, resp.Orders, 2)

	missing, err := env.service.GetOrdersByUser(context.Background(), &commercev1.GetOrdersByUserRequest{})
	require.NoError(t, err)
	require.False(t, missing.Success)
	require.Equal(t, "User ID is required", missing.Message)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	env := newOrderEnv()

	resp, err := env.service.GetOrder(context.Background(), &commercev1.GetOrderRequest{OrderId: "missing"})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Order not found", resp.Message)
}
