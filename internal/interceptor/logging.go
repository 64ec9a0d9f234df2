package interceptor

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryLogging возвращает unary-interceptor, логирующий начало и завершение
// каждого вызова. Запрос, ответ и ошибка проходят насквозь без изменений.
func UnaryLogging(logger *log.Entry) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = log.New().WithField("component", "grpc")
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		logger.WithField("method", info.FullMethod).Info("gRPC request started")

		resp, err := handler(ctx, req)

		elapsed := time.Since(start)
		if err != nil {
			logger.WithFields(log.Fields{
				"method":      info.FullMethod,
				"duration_ms": elapsed.Milliseconds(),
			}).Error("gRPC request failed")
			return resp, err
		}

		logger.WithFields(log.Fields{
			"method":      info.FullMethod,
			"code":        status.Code(err).String(),
			"duration_ms": elapsed.Milliseconds(),
		}).Info("gRPC request completed")
		return resp, nil
	}
}
