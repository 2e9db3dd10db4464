package service

import (
	"context"
	"strings"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/repository"
	"github.com/boxdzair-dotcom/dzair-online/pkg/apperror"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name                 string
	PurchasePrice        float64
	Weight               float64
	DefaultDeliveryPrice float64
	SellingPrice         float64
	StockQty             int
}

// CreateProduct creates a new catalog entry
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewFieldValidationError("name", "product name is required")
	}
	if input.PurchasePrice < 0 {
		return nil, apperror.NewFieldValidationError("purchase_price", "purchase price must be zero or greater")
	}
	if input.Weight < 0 {
		return nil, apperror.NewFieldValidationError("weight", "weight must be zero or greater")
	}
	if input.DefaultDeliveryPrice < 0 {
		return nil, apperror.NewFieldValidationError("default_delivery_price", "default delivery price must be zero or greater")
	}

	product := &entity.Product{
		Name:                 name,
		PurchasePrice:        input.PurchasePrice,
		Weight:               input.Weight,
		DefaultDeliveryPrice: input.DefaultDeliveryPrice,
		SellingPrice:         input.SellingPrice,
		StockQty:             input.StockQty,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products, newest first
func (s *ProductService) ListProducts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}
