package repository

import (
	"context"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

// FeeRepository defines the interface for sponsored-fee data access
type FeeRepository interface {
	Create(ctx context.Context, fee *entity.SponsoredFee) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.SponsoredFee, int64, error)
	ListAll(ctx context.Context) ([]entity.SponsoredFee, error)
	TotalSpend(ctx context.Context) (float64, error)
}
