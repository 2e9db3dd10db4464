package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/repository"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

// Empty repositories: sale creation must fail validation before reaching them.

type noopClientRepo struct{}

func (noopClientRepo) Create(context.Context, *entity.Client) error { return nil }
func (noopClientRepo) GetByID(context.Context, uint) (*entity.Client, error) {
	return nil, nil
}
func (noopClientRepo) List(context.Context, *pagination.PaginationParams, string) ([]entity.Client, int64, error) {
	return nil, 0, nil
}
func (noopClientRepo) ListAll(context.Context) ([]entity.Client, error) { return nil, nil }

type noopProductRepo struct{}

func (noopProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (noopProductRepo) GetByID(context.Context, uint) (*entity.Product, error) {
	return nil, nil
}
func (noopProductRepo) List(context.Context, *pagination.PaginationParams, string) ([]entity.Product, int64, error) {
	return nil, 0, nil
}
func (noopProductRepo) ListAll(context.Context) ([]entity.Product, error) { return nil, nil }

type noopSaleRepo struct{}

func (noopSaleRepo) Record(context.Context, *entity.Sale) error { return nil }
func (noopSaleRepo) GetByID(context.Context, uint) (*entity.Sale, error) {
	return nil, nil
}
func (noopSaleRepo) List(context.Context, *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}
func (noopSaleRepo) DailyProfit(context.Context, time.Time) ([]repository.DailyProfitPoint, error) {
	return nil, nil
}
func (noopSaleRepo) Totals(context.Context) (*repository.LedgerTotals, error) {
	return &repository.LedgerTotals{}, nil
}

func newSaleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	saleService := service.NewSaleService(noopSaleRepo{}, noopClientRepo{}, noopProductRepo{})
	h := NewSaleHandler(saleService)

	router := gin.New()
	router.POST("/sales", h.Create)
	return router
}

func TestCreateSaleZeroQuantityIsFieldError(t *testing.T) {
	router := newSaleRouter()

	body := `{"client_id": 1, "product_id": 1, "quantity": 0}`
	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A zero quantity binds fine and fails service validation with the
	// field named, not as a generic bad-request
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity"`)
}

func TestCreateSaleMalformedBody(t *testing.T) {
	router := newSaleRouter()

	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
