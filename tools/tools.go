//go:build tools

// Пакет tools предназначен для фиксации зависимостей инструментов.
// Генераторы protoc устанавливаются вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@latest
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@latest
//
// Код commerce.v1 генерируется из корня репозитория:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       proto/commerce/v1/*.proto
//
// Импорты-заглушки не нужны, пока генераторы не закреплены в go.mod.
package tools
