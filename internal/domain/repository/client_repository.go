package repository

import (
	"context"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uint) (*entity.Client, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	ListAll(ctx context.Context) ([]entity.Client, error)
}
