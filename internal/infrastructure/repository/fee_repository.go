package repository

import (
	"context"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	domainRepo "github.com/boxdzair-dotcom/dzair-online/internal/domain/repository"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
	"gorm.io/gorm"
)

type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a new sponsored-fee repository
func NewFeeRepository(db *gorm.DB) domainRepo.FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) Create(ctx context.Context, fee *entity.SponsoredFee) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

func (r *feeRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.SponsoredFee, int64, error) {
	var fees []entity.SponsoredFee
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SponsoredFee{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("id DESC").
		Find(&fees).Error

	return fees, total, err
}

func (r *feeRepository) ListAll(ctx context.Context) ([]entity.SponsoredFee, error) {
	var fees []entity.SponsoredFee
	err := r.db.WithContext(ctx).Order("id ASC").Find(&fees).Error
	return fees, err
}

func (r *feeRepository) TotalSpend(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entity.SponsoredFee{}).
		Select("COALESCE(SUM(amount_spent), 0)").
		Scan(&total).Error
	return total, err
}
