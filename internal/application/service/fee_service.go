package service

import (
	"context"
	"strings"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/repository"
	"github.com/boxdzair-dotcom/dzair-online/pkg/apperror"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

// FeeService handles sponsored-fee (advertising spend) operations
type FeeService struct {
	feeRepo repository.FeeRepository
}

// NewFeeService creates a new fee service
func NewFeeService(feeRepo repository.FeeRepository) *FeeService {
	return &FeeService{feeRepo: feeRepo}
}

// CreateFeeInput represents the create fee input. Date is YYYY-MM-DD and
// defaults to today.
type CreateFeeInput struct {
	CampaignName string
	Platform     string
	AmountSpent  float64
	Date         string
}

// CreateFee records one campaign spend entry
func (s *FeeService) CreateFee(ctx context.Context, input *CreateFeeInput) (*entity.SponsoredFee, error) {
	name := strings.TrimSpace(input.CampaignName)
	if name == "" {
		return nil, apperror.NewFieldValidationError("campaign_name", "campaign name is required")
	}
	if input.AmountSpent < 0 {
		return nil, apperror.NewFieldValidationError("amount_spent", "amount spent must be zero or greater")
	}

	date := today()
	if input.Date != "" {
		parsed, err := parseDay("date", input.Date)
		if err != nil {
			return nil, err
		}
		date = *parsed
	}

	fee := &entity.SponsoredFee{
		CampaignName: name,
		Platform:     strings.TrimSpace(input.Platform),
		AmountSpent:  input.AmountSpent,
		Date:         date,
	}

	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// ListFees lists spend entries, newest first
func (s *FeeService) ListFees(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.SponsoredFee], error) {
	fees, total, err := s.feeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(fees, pag), nil
}
