package grpcsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

type stubIdempotencyRepository struct {
	createFn     func(string, string, time.Time) (domain.IdempotencyRecord, error)
	getFn        func(string) (domain.IdempotencyRecord, error)
	markDoneFn   func(string, []byte, int) error
	markFailedFn func(string, []byte, int) error
}

func (s *stubIdempotencyRepository) CreateProcessing(key, requestHash string, ttlAt time.Time) (domain.IdempotencyRecord, error) {
	if s.createFn != nil {
		return s.createFn(key, requestHash, ttlAt)
	}
	return domain.IdempotencyRecord{Key: key, RequestHash: requestHash, Status: domain.IdempotencyStatusProcessing}, nil
}

func (s *stubIdempotencyRepository) Get(key string) (domain.IdempotencyRecord, error) {
	if s.getFn != nil {
		return s.getFn(key)
	}
	return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyNotFound
}

func (s *stubIdempotencyRepository) MarkDone(key string, body []byte, code int) error {
	if s.markDoneFn != nil {
		return s.markDoneFn(key, body, code)
	}
	return nil
}

func (s *stubIdempotencyRepository) MarkFailed(key string, body []byte, code int) error {
	if s.markFailedFn != nil {
		return s.markFailedFn(key, body, code)
	}
	return nil
}

func (s *stubIdempotencyRepository) DeleteExpired(time.Time, int) (int, error) {
	return 0, nil
}

func mustStatusCode(t *testing.T, err error, expected codes.Code) {
	t.Helper()
	if status.Code(err) != expected {
		t.Fatalf("expected code %s, got %s (err=%v)", expected, status.Code(err), err)
	}
}

func TestNewOrderService_NilLogger(t *testing.T) {
	service := NewOrderService(nil, nil, nil)
	if service.logger == nil {
		t.Fatal("logger must be initialized when nil logger is provided")
	}
}

func TestMapInfraError(t *testing.T) {
	service := NewOrderService(nil, nil, log.New().WithField("test", "internal"))

	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "upstream unavailable", err: status.Error(codes.Unavailable, "conn refused"), code: codes.Unavailable},
		{name: "upstream timeout", err: status.Error(codes.DeadlineExceeded, "timeout"), code: codes.Unavailable},
		{name: "plain error", err: errors.New("db down"), code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustStatusCode(t, service.mapInfraError(tt.err, "Op"), tt.code)
		})
	}
}

func TestWithIdempotency_PassthroughWithoutKey(t *testing.T) {
	logger := log.New().WithField("test", "idempotency")
	calls := 0
	handler := func(context.Context) (*commercev1.CancelOrderResponse, error) {
		calls++
		return &commercev1.CancelOrderResponse{Success: true}, nil
	}
	newResp := func() *commercev1.CancelOrderResponse { return &commercev1.CancelOrderResponse{} }

	// Без metadata вызов идёт напрямую, хранилище не трогается.
	resp, err := withIdempotency(
		context.Background(),
		&stubIdempotencyRepository{
			createFn: func(string, string, time.Time) (domain.IdempotencyRecord, error) {
				t.Fatal("repository must not be touched without a key")
				return domain.IdempotencyRecord{}, nil
			},
		},
		logger, grpcMethodCancelOrder,
		&commercev1.CancelOrderRequest{OrderId: "order-1"},
		newResp, handler,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || calls != 1 {
		t.Fatalf("expected one direct handler call, got calls=%d resp=%+v", calls, resp)
	}

	// Nil-репозиторий аналогично.
	resp, err = withIdempotency(context.Background(), nil, logger, grpcMethodCancelOrder,
		&commercev1.CancelOrderRequest{OrderId: "order-1"}, newResp, handler)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || calls != 2 {
		t.Fatalf("expected second direct handler call, got calls=%d", calls)
	}
}

func TestCacheIdempotencyFailure(t *testing.T) {
	logger := log.New().WithField("test", "idempotency")

	var gotKey string
	var gotPayload []byte
	var gotStatus int

	idem := &stubIdempotencyRepository{
		markFailedFn: func(key string, payload []byte, statusCode int) error {
			gotKey = key
			gotPayload = append([]byte(nil), payload...)
			gotStatus = statusCode
			return nil
		},
	}

	cacheIdempotencyFailure(idem, logger, "idem-1", status.Error(codes.FailedPrecondition, "failed before commit"))
	if gotKey != "idem-1" {
		t.Fatalf("expected key idem-1, got %s", gotKey)
	}
	if gotStatus != int(codes.FailedPrecondition) {
		t.Fatalf("expected code %d, got %d", int(codes.FailedPrecondition), gotStatus)
	}
	if len(gotPayload) == 0 {
		t.Fatal("expected non-empty payload")
	}

	// Ошибка записи в хранилище не должна паниковать.
	cacheIdempotencyFailure(&stubIdempotencyRepository{
		markFailedFn: func(string, []byte, int) error { return errors.New("store failed") },
	}, logger, "idem-2", nil)
}

func TestDecodeIdempotencyFailure_Branches(t *testing.T) {
	err := decodeIdempotencyFailure(domain.IdempotencyRecord{
		ResponseBody: []byte(`{"code":3,"message":"payload mismatch"}`),
	})
	mustStatusCode(t, err, codes.InvalidArgument)
	if status.Convert(err).Message() != "payload mismatch" {
		t.Fatalf("unexpected message: %s", status.Convert(err).Message())
	}

	err = decodeIdempotencyFailure(domain.IdempotencyRecord{
		ResponseBody: []byte(`{"code":0,"message":""}`),
	})
	mustStatusCode(t, err, codes.Internal)

	err = decodeIdempotencyFailure(domain.IdempotencyRecord{
		ResponseBody: []byte("broken-json"),
		ResponseCode: int(codes.Aborted),
	})
	mustStatusCode(t, err, codes.Aborted)

	err = decodeIdempotencyFailure(domain.IdempotencyRecord{
		ResponseBody: []byte("broken-json"),
		ResponseCode: int(codes.OK),
	})
	mustStatusCode(t, err, codes.Internal)
}

func TestGrpcCodeBounds(t *testing.T) {
	if code, ok := grpcCodeFromInt32(int32(codes.NotFound)); !ok || code != codes.NotFound {
		t.Fatalf("expected NotFound, got %s ok=%v", code, ok)
	}
	if _, ok := grpcCodeFromInt32(-1); ok {
		t.Fatal("negative value must be rejected")
	}
	if _, ok := grpcCodeFromInt(int(codes.Unauthenticated) + 1); ok {
		t.Fatal("out-of-range value must be rejected")
	}
}

func TestBuildIdempotencyRequestHash(t *testing.T) {
	req := &commercev1.CreateOrderRequest{
		UserId: "user-1",
		Items:  []*commercev1.CreateOrderItem{{ProductId: "prod-1", Quantity: 2}},
	}

	first, err := buildIdempotencyRequestHash(grpcMethodCreateOrder, req)
	if err != nil {
		t.Fatalf("build hash failed: %v", err)
	}
	second, err := buildIdempotencyRequestHash(grpcMethodCreateOrder, req)
	if err != nil {
		t.Fatalf("build hash failed: %v", err)
	}
	if first == "" || first != second {
		t.Fatalf("hash must be deterministic and non-empty: %q vs %q", first, second)
	}

	other, err := buildIdempotencyRequestHash(grpcMethodCancelOrder, req)
	if err != nil {
		t.Fatalf("build hash failed: %v", err)
	}
	if other == first {
		t.Fatal("different methods must produce different hashes")
	}

	if _, err := buildIdempotencyRequestHash(grpcMethodCreateOrder, nil); err == nil {
		t.Fatal("expected error for nil request")
	}
}

func TestStatusConversions(t *testing.T) {
	statuses := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusProcessing,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	}
	for _, s := range statuses {
		if got := statusFromProto(toProtoStatus(s)); got != s {
			t.Fatalf("round trip failed for %s: got %s", s, got)
		}
	}

	if toProtoStatus(domain.OrderStatus("something-else")) != commercev1.OrderStatus_ORDER_STATUS_UNSPECIFIED {
		t.Fatal("unknown status must map to ORDER_STATUS_UNSPECIFIED")
	}
	if statusFromProto(commercev1.OrderStatus_ORDER_STATUS_UNSPECIFIED) != "" {
		t.Fatal("UNSPECIFIED must map to empty status")
	}
}
