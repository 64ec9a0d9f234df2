package interceptor

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestLogger() (*log.Entry, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return logger.WithField("component", "grpc"), hook
}

func TestUnaryLogging_Success(t *testing.T) {
	logger, hook := newTestLogger()
	intercept := UnaryLogging(logger)

	req := "request"
	resp, err := intercept(context.Background(), req, callInfo(), func(_ context.Context, got any) (any, error) {
		if got != req {
			t.Fatalf("handler received mutated request: %v", got)
		}
		return "response", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "response" {
		t.Fatalf("response mutated: %v", resp)
	}

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected start+completion logs, got %d", len(entries))
	}
	if entries[0].Message != "gRPC request started" {
		t.Fatalf("unexpected first log: %s", entries[0].Message)
	}
	if entries[1].Message != "gRPC request completed" {
		t.Fatalf("unexpected second log: %s", entries[1].Message)
	}
	if entries[1].Data["code"] != codes.OK.String() {
		t.Fatalf("expected OK code field, got %v", entries[1].Data["code"])
	}
	if _, ok := entries[1].Data["duration_ms"]; !ok {
		t.Fatal("expected duration_ms field on completion log")
	}
}

func TestUnaryLogging_Failure(t *testing.T) {
	logger, hook := newTestLogger()
	intercept := UnaryLogging(logger)

	handlerErr := status.Error(codes.NotFound, "order not found")
	_, err := intercept(context.Background(), "request", callInfo(), func(context.Context, any) (any, error) {
		return nil, handlerErr
	})
	if !errors.Is(err, handlerErr) {
		t.Fatalf("error must pass through unchanged, got %v", err)
	}

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected start+failure logs, got %d", len(entries))
	}
	failure := entries[1]
	if failure.Message != "gRPC request failed" {
		t.Fatalf("unexpected failure log: %s", failure.Message)
	}
	if failure.Level != log.ErrorLevel {
		t.Fatalf("failure log must be at error level, got %s", failure.Level)
	}
	// На ветке ошибки код не логируется, только длительность.
	if _, ok := failure.Data["code"]; ok {
		t.Fatal("failure log must not carry code field")
	}
	if _, ok := failure.Data["duration_ms"]; !ok {
		t.Fatal("expected duration_ms field on failure log")
	}
}

var _ grpc.UnaryServerInterceptor = UnaryLogging(nil)
