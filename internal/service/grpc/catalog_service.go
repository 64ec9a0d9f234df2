package grpcsvc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

// CatalogService реализует управление товарами и складскими остатками.
type CatalogService struct {
	commercev1.UnimplementedCatalogServiceServer

	products domain.ProductRepository
	logger   *log.Entry
}

// NewCatalogService конструирует сервис с зависимостями.
func NewCatalogService(products domain.ProductRepository, logger *log.Entry) *CatalogService {
	if logger == nil {
		logger = log.New().WithField("component", "catalog-service")
	}
	return &CatalogService{
		products: products,
		logger:   logger,
	}
}

// AddProduct добавляет товар в каталог.
func (s *CatalogService) AddProduct(_ context.Context, req *commercev1.AddProductRequest) (*commercev1.AddProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Name == "" {
		return &commercev1.AddProductResponse{Success: false, Message: "Product name is required"}, nil
	}
	if req.PriceMinor < 0 {
		return &commercev1.AddProductResponse{Success: false, Message: "Price must not be negative"}, nil
	}
	if req.StockQuantity < 0 {
		return &commercev1.AddProductResponse{Success: false, Message: "Stock quantity must not be negative"}, nil
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		PriceMinor:  req.PriceMinor,
		StockQty:    req.StockQuantity,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Create(product); err != nil {
		s.logger.WithError(err).WithField("name", req.Name).Error("failed to create product")
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("product added")

	return &commercev1.AddProductResponse{
		Success:   true,
		Message:   "Product added successfully",
		ProductId: product.ID,
	}, nil
}

// UpdateProduct перезаписывает атрибуты товара.
func (s *CatalogService) UpdateProduct(_ context.Context, req *commercev1.UpdateProductRequest) (*commercev1.UpdateProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ProductId == "" {
		return &commercev1.UpdateProductResponse{Success: false, Message: "Product ID is required"}, nil
	}
	if req.Name == "" {
		return &commercev1.UpdateProductResponse{Success: false, Message: "Product name is required"}, nil
	}
	if req.PriceMinor < 0 || req.StockQuantity < 0 {
		return &commercev1.UpdateProductResponse{Success: false, Message: "Price and stock must not be negative"}, nil
	}

	existing, err := s.products.Get(req.ProductId)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return &commercev1.UpdateProductResponse{Success: false, Message: "Product not found"}, nil
		}
		s.logger.WithError(err).WithField("product_id", req.ProductId).Error("failed to load product")
		return nil, status.Error(codes.Internal, "internal error")
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.PriceMinor = req.PriceMinor
	existing.StockQty = req.StockQuantity
	existing.Category = req.Category
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.products.Update(existing)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return &commercev1.UpdateProductResponse{Success: false, Message: "Product not found"}, nil
		}
		s.logger.WithError(err).WithField("product_id", req.ProductId).Error("failed to update product")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &commercev1.UpdateProductResponse{
		Success: true,
		Message: "Product updated successfully",
		Product: toProtoProduct(updated),
	}, nil
}

// DeleteProduct удаляет товар из каталога.
func (s *CatalogService) DeleteProduct(_ context.Context, req *commercev1.DeleteProductRequest) (*commercev1.DeleteProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ProductId == "" {
		return &commercev1.DeleteProductResponse{Success: false, Message: "Product ID is required"}, nil
	}

	if err := s.products.Delete(req.ProductId); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return &commercev1.DeleteProductResponse{Success: false, Message: "Product not found"}, nil
		}
		s.logger.WithError(err).WithField("product_id", req.ProductId).Error("failed to delete product")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &commercev1.DeleteProductResponse{
		Success: true,
		Message: "Product deleted successfully",
	}, nil
}

// GetProduct возвращает товар по идентификатору.
func (s *CatalogService) GetProduct(_ context.Context, req *commercev1.GetProductRequest) (*commercev1.GetProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ProductId == "" {
		return &commercev1.GetProductResponse{Success: false, Message: "Product ID is required"}, nil
	}

	product, err := s.products.Get(req.ProductId)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return &commercev1.GetProductResponse{Success: false, Message: "Product not found"}, nil
		}
		s.logger.WithError(err).WithField("product_id", req.ProductId).Error("failed to load product")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &commercev1.GetProductResponse{
		Success: true,
		Message: "Product retrieved successfully",
		Product: toProtoProduct(product),
	}, nil
}

// GetProductsByIds возвращает товары пакетно; отсутствующие пропускаются.
func (s *CatalogService) GetProductsByIds(_ context.Context, req *commercev1.GetProductsByIdsRequest) (*commercev1.GetProductsByIdsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	products, err := s.products.GetByIDs(req.ProductIds)
	if err != nil {
		s.logger.WithError(err).Error("failed to load products batch")
		return nil, status.Error(codes.Internal, "internal error")
	}

	// Порядок ответа следует порядку запрошенных идентификаторов.
	result := make([]*commercev1.Product, 0, len(products))
	for _, id := range req.ProductIds {
		if product, ok := products[id]; ok {
			result = append(result, toProtoProduct(product))
		}
	}

	return &commercev1.GetProductsByIdsResponse{Products: result}, nil
}

// ListProducts возвращает страницу каталога; пустая категория — все.
func (s *CatalogService) ListProducts(_ context.Context, req *commercev1.ListProductsRequest) (*commercev1.ListProductsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	page, pageSize := normalizeCatalogPage(req.Page, req.PageSize)
	products, total, err := s.products.List(req.Category, page, pageSize)
	if err != nil {
		s.logger.WithError(err).Error("failed to list products")
		return nil, status.Error(codes.Internal, "internal error")
	}

	result := make([]*commercev1.Product, 0, len(products))
	for _, product := range products {
		result = append(result, toProtoProduct(product))
	}

	return &commercev1.ListProductsResponse{
		Success:    true,
		Message:    "Products retrieved successfully",
		Products:   result,
		TotalCount: total,
	}, nil
}

// CheckAvailability сообщает, хватает ли остатка на запрошенное количество.
func (s *CatalogService) CheckAvailability(_ context.Context, req *commercev1.CheckAvailabilityRequest) (*commercev1.CheckAvailabilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ProductId == "" {
		return &commercev1.CheckAvailabilityResponse{Available: false, Message: "Product ID is required"}, nil
	}
	if req.Quantity <= 0 {
		return &commercev1.CheckAvailabilityResponse{Available: false, Message: "Quantity must be positive"}, nil
	}

	product, err := s.products.Get(req.ProductId)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return &commercev1.CheckAvailabilityResponse{Available: false, Message: "Product not found"}, nil
		}
		s.logger.WithError(err).WithField("product_id", req.ProductId).Error("failed to check availability")
		return nil, status.Error(codes.Internal, "internal error")
	}

	if product.StockQty < req.Quantity {
		return &commercev1.CheckAvailabilityResponse{
			Available:    false,
			Message:      "Insufficient stock",
			CurrentStock: product.StockQty,
		}, nil
	}

	return &commercev1.CheckAvailabilityResponse{
		Available:    true,
		Message:      "Product is available",
		CurrentStock: product.StockQty,
	}, nil
}

// UpdateInventory атомарно меняет остаток; уход в минус отклоняется.
func (s *CatalogService) UpdateInventory(_ context.Context, req *commercev1.UpdateInventoryRequest) (*commercev1.UpdateInventoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ProductId == "" {
		return &commercev1.UpdateInventoryResponse{Success: false, Message: "Product ID is required"}, nil
	}

	newStock, err := s.products.AdjustStock(req.ProductId, req.QuantityChange)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return &commercev1.UpdateInventoryResponse{Success: false, Message: "Product not found"}, nil
		case errors.Is(err, domain.ErrInsufficientStock):
			return &commercev1.UpdateInventoryResponse{Success: false, Message: "Insufficient stock"}, nil
		default:
			s.logger.WithError(err).WithField("product_id", req.ProductId).Error("failed to adjust stock")
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &commercev1.UpdateInventoryResponse{
		Success:          true,
		Message:          "Inventory updated successfully",
		NewStockQuantity: newStock,
	}, nil
}

func normalizeCatalogPage(page, pageSize int32) (int32, int32) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

func toProtoProduct(product domain.Product) *commercev1.Product {
	return &commercev1.Product{
		ProductId:     product.ID,
		Name:          product.Name,
		Description:   product.Description,
		PriceMinor:    product.PriceMinor,
		StockQuantity: product.StockQty,
		Category:      product.Category,
		CreatedAtUnix: product.CreatedAt.Unix(),
		UpdatedAtUnix: product.UpdatedAt.Unix(),
	}
}
