package grpcsvc

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/service/checkout"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

const (
	grpcMethodCreateOrder = "/commerce.v1.OrderService/CreateOrder"
	grpcMethodUpdateOrder = "/commerce.v1.OrderService/UpdateOrder"
	grpcMethodCancelOrder = "/commerce.v1.OrderService/CancelOrder"
)

// OrderService реализует gRPC API заказов поверх checkout-оркестратора.
// Бизнес-отказы возвращаются в success/message, статус-коды остаются
// за инфраструктурными сбоями.
type OrderService struct {
	commercev1.UnimplementedOrderServiceServer

	orch     checkout.Orchestrator
	idemRepo domain.IdempotencyRepository
	logger   *log.Entry
}

// NewOrderService конструирует сервис с зависимостями.
func NewOrderService(
	orch checkout.Orchestrator,
	idemRepo domain.IdempotencyRepository,
	logger *log.Entry,
) *OrderService {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &OrderService{
		orch:     orch,
		idemRepo: idemRepo,
		logger:   logger,
	}
}

// CreateOrder оформляет заказ; при наличии idempotency-key ответ кэшируется.
func (s *OrderService) CreateOrder(ctx context.Context, req *commercev1.CreateOrderRequest) (*commercev1.CreateOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		ctx,
		s.idemRepo,
		s.logger,
		grpcMethodCreateOrder,
		req,
		func() *commercev1.CreateOrderResponse { return &commercev1.CreateOrderResponse{} },
		func(ctx context.Context) (*commercev1.CreateOrderResponse, error) {
			return s.createOrderInternal(ctx, req)
		},
	)
}

func (s *OrderService) createOrderInternal(_ context.Context, req *commercev1.CreateOrderRequest) (*commercev1.CreateOrderResponse, error) {
	items := make([]checkout.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		if item == nil {
			continue
		}
		items = append(items, checkout.ItemRequest{
			ProductID: item.ProductId,
			Qty:       item.Quantity,
		})
	}

	order, result, err := s.orch.CreateOrder(req.UserId, req.ShippingAddress, items)
	if err != nil {
		return nil, s.mapInfraError(err, "CreateOrder")
	}
	if result.Rejected() {
		return &commercev1.CreateOrderResponse{Success: false, Message: result.Reason()}, nil
	}

	return &commercev1.CreateOrderResponse{
		Success: true,
		Message: "Order created successfully",
		OrderId: order.ID,
		Order:   toProtoOrder(order),
	}, nil
}

// UpdateOrder безусловно перезаписывает статус и адрес доставки.
func (s *OrderService) UpdateOrder(ctx context.Context, req *commercev1.UpdateOrderRequest) (*commercev1.UpdateOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		ctx,
		s.idemRepo,
		s.logger,
		grpcMethodUpdateOrder,
		req,
		func() *commercev1.UpdateOrderResponse { return &commercev1.UpdateOrderResponse{} },
		func(ctx context.Context) (*commercev1.UpdateOrderResponse, error) {
			return s.updateOrderInternal(ctx, req)
		},
	)
}

func (s *OrderService) updateOrderInternal(_ context.Context, req *commercev1.UpdateOrderRequest) (*commercev1.UpdateOrderResponse, error) {
	if req.OrderId == "" {
		return &commercev1.UpdateOrderResponse{Success: false, Message: "Order ID is required"}, nil
	}

	order, err := s.orch.UpdateOrder(req.OrderId, statusFromProto(req.Status), req.ShippingAddress)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStatusInvalid):
			return &commercev1.UpdateOrderResponse{Success: false, Message: "Invalid order status"}, nil
		case errors.Is(err, domain.ErrOrderNotFound):
			return &commercev1.UpdateOrderResponse{Success: false, Message: "Order not found"}, nil
		default:
			return nil, s.mapInfraError(err, "UpdateOrder")
		}
	}

	return &commercev1.UpdateOrderResponse{
		Success: true,
		Message: "Order updated successfully",
		Order:   toProtoOrder(order),
	}, nil
}

// CancelOrder отменяет заказ и возвращает остатки на склад.
func (s *OrderService) CancelOrder(ctx context.Context, req *commercev1.CancelOrderRequest) (*commercev1.CancelOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		ctx,
		s.idemRepo,
		s.logger,
		grpcMethodCancelOrder,
		req,
		func() *commercev1.CancelOrderResponse { return &commercev1.CancelOrderResponse{} },
		func(ctx context.Context) (*commercev1.CancelOrderResponse, error) {
			return s.cancelOrderInternal(ctx, req)
		},
	)
}

func (s *OrderService) cancelOrderInternal(_ context.Context, req *commercev1.CancelOrderRequest) (*commercev1.CancelOrderResponse, error) {
	result, err := s.orch.CancelOrder(req.OrderId, req.UserId)
	if err != nil {
		return nil, s.mapInfraError(err, "CancelOrder")
	}
	if result.Rejected() {
		return &commercev1.CancelOrderResponse{Success: false, Message: result.Reason()}, nil
	}

	return &commercev1.CancelOrderResponse{
		Success: true,
		Message: "Order cancelled successfully",
	}, nil
}

// GetOrder возвращает заказ с названиями товаров из каталога.
func (s *OrderService) GetOrder(_ context.Context, req *commercev1.GetOrderRequest) (*commercev1.GetOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.OrderId == "" {
		return &commercev1.GetOrderResponse{Success: false, Message: "Order ID is required"}, nil
	}

	order, err := s.orch.GetOrder(req.OrderId)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return &commercev1.GetOrderResponse{Success: false, Message: "Order not found"}, nil
		}
		return nil, s.mapInfraError(err, "GetOrder")
	}

	return &commercev1.GetOrderResponse{
		Success: true,
		Message: "Order retrieved successfully",
		Order:   toProtoOrder(order),
	}, nil
}

// ListOrders возвращает страницу заказов; UNSPECIFIED статус — все.
func (s *OrderService) ListOrders(_ context.Context, req *commercev1.ListOrdersRequest) (*commercev1.ListOrdersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	orders, total, err := s.orch.ListOrders(statusFromProto(req.Status), req.Page, req.PageSize)
	if err != nil {
		return nil, s.mapInfraError(err, "ListOrders")
	}

	return &commercev1.ListOrdersResponse{
		Success:    true,
		Message:    "Orders retrieved successfully",
		Orders:     toProtoOrders(orders),
		TotalCount: total,
	}, nil
}

// GetOrdersByUser возвращает страницу заказов пользователя.
func (s *OrderService) GetOrdersByUser(_ context.Context, req *commercev1.GetOrdersByUserRequest) (*commercev1.GetOrdersByUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.UserId == "" {
		return &commercev1.GetOrdersByUserResponse{Success: false, Message: "User ID is required"}, nil
	}

	orders, total, err := s.orch.ListOrdersByUser(req.UserId, req.Page, req.PageSize)
	if err != nil {
		return nil, s.mapInfraError(err, "GetOrdersByUser")
	}

	return &commercev1.GetOrdersByUserResponse{
		Success:    true,
		Message:    "Orders retrieved successfully",
		Orders:     toProtoOrders(orders),
		TotalCount: total,
	}, nil
}

func (s *OrderService) mapInfraError(err error, operation string) error {
	s.logger.WithError(err).WithField("operation", operation).Error("operation failed")
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return status.Error(codes.Unavailable, "upstream service unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toProtoOrders(orders []domain.Order) []*commercev1.Order {
	result := make([]*commercev1.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, toProtoOrder(order))
	}
	return result
}

func toProtoOrder(order domain.Order) *commercev1.Order {
	items := make([]*commercev1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &commercev1.OrderItem{
			ProductId:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Qty,
			UnitPriceMinor: item.PriceMinor,
			SubtotalMinor:  item.SubtotalMinor(),
		})
	}

	return &commercev1.Order{
		OrderId:         order.ID,
		UserId:          order.UserID,
		Items:           items,
		TotalMinor:      order.TotalMinor,
		Status:          toProtoStatus(order.Status),
		ShippingAddress: order.ShippingAddress,
		CreatedAtUnix:   order.CreatedAt.Unix(),
		UpdatedAtUnix:   order.UpdatedAt.Unix(),
	}
}

func toProtoStatus(status domain.OrderStatus) commercev1.OrderStatus {
	switch status {
	case domain.OrderStatusPending:
		return commercev1.OrderStatus_ORDER_STATUS_PENDING
	case domain.OrderStatusConfirmed:
		return commercev1.OrderStatus_ORDER_STATUS_CONFIRMED
	case domain.OrderStatusProcessing:
		return commercev1.OrderStatus_ORDER_STATUS_PROCESSING
	case domain.OrderStatusShipped:
		return commercev1.OrderStatus_ORDER_STATUS_SHIPPED
	case domain.OrderStatusDelivered:
		return commercev1.OrderStatus_ORDER_STATUS_DELIVERED
	case domain.OrderStatusCancelled:
		return commercev1.OrderStatus_ORDER_STATUS_CANCELLED
	default:
		return commercev1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

// statusFromProto возвращает пустой статус для UNSPECIFIED: в фильтрах это
// «все», в UpdateOrder — невалидное значение.
func statusFromProto(s commercev1.OrderStatus) domain.OrderStatus {
	switch s {
	case commercev1.OrderStatus_ORDER_STATUS_PENDING:
		return domain.OrderStatusPending
	case commercev1.OrderStatus_ORDER_STATUS_CONFIRMED:
		return domain.OrderStatusConfirmed
	case commercev1.OrderStatus_ORDER_STATUS_PROCESSING:
		return domain.OrderStatusProcessing
	case commercev1.OrderStatus_ORDER_STATUS_SHIPPED:
		return domain.OrderStatusShipped
	case commercev1.OrderStatus_ORDER_STATUS_DELIVERED:
		return domain.OrderStatusDelivered
	case commercev1.OrderStatus_ORDER_STATUS_CANCELLED:
		return domain.OrderStatusCancelled
	default:
		return ""
	}
}
