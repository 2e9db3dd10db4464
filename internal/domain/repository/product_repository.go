package repository

import (
	"context"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error)
	ListAll(ctx context.Context) ([]entity.Product, error)
}
