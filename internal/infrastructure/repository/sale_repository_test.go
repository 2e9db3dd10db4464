package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/enum"
	"github.com/boxdzair-dotcom/dzair-online/pkg/apperror"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Client{},
		&entity.Product{},
		&entity.Sale{},
		&entity.SponsoredFee{},
	))
	return db
}

func seedClientAndProduct(t *testing.T, db *gorm.DB) (*entity.Client, *entity.Product) {
	t.Helper()

	client := &entity.Client{Name: "Amine", City: "Alger"}
	require.NoError(t, db.Create(client).Error)

	product := &entity.Product{
		Name:                 "Montre Casio",
		PurchasePrice:        1000,
		Weight:               2,
		DefaultDeliveryPrice: 200,
		SellingPrice:         3000,
		StockQty:             10,
	}
	require.NoError(t, db.Create(product).Error)

	return client, product
}

func newSale(client *entity.Client, product *entity.Product, qty int) *entity.Sale {
	return &entity.Sale{
		ClientID:      client.ID,
		ProductID:     product.ID,
		Quantity:      qty,
		PurchasePrice: product.PurchasePrice,
		SellingPrice:  product.SellingPrice,
		Weight:        product.Weight,
		DeliveryPrice: product.DefaultDeliveryPrice,
		TotLivraison:  300,
		PFayda:        1700,
		FaydaSafia:    1200,
		PaymentMethod: enum.PaymentCash,
		Status:        enum.SaleStatusPending,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecordSequencesAndAppliesSideEffects(t *testing.T) {
	db := newTestDB(t)
	client, product := seedClientAndProduct(t, db)
	repo := NewSaleRepository(db, "")

	first := newSale(client, product, 2)
	require.NoError(t, repo.Record(context.Background(), first))
	assert.Equal(t, "DZAIR-2026-001", first.InvoiceNo)

	second := newSale(client, product, 1)
	require.NoError(t, repo.Record(context.Background(), second))
	assert.Equal(t, "DZAIR-2026-002", second.InvoiceNo)

	var gotClient entity.Client
	require.NoError(t, db.First(&gotClient, client.ID).Error)
	assert.Equal(t, 9000.0, gotClient.TotalSpent)
	assert.Equal(t, 2, gotClient.TotalOrders)

	var gotProduct entity.Product
	require.NoError(t, db.First(&gotProduct, product.ID).Error)
	assert.Equal(t, 7, gotProduct.StockQty)
}

func TestRecordRestartsSequenceOnMalformedInvoice(t *testing.T) {
	db := newTestDB(t)
	client, product := seedClientAndProduct(t, db)
	repo := NewSaleRepository(db, "")

	bad := newSale(client, product, 1)
	bad.InvoiceNo = "DZAIR-2026-BAD"
	require.NoError(t, db.Create(bad).Error)

	// An unparseable trailing segment restarts the year at 1 instead of failing
	sale := newSale(client, product, 1)
	require.NoError(t, repo.Record(context.Background(), sale))
	assert.Equal(t, "DZAIR-2026-001", sale.InvoiceNo)
}

func TestRecordConflictAfterRetryLeavesLedgerUntouched(t *testing.T) {
	db := newTestDB(t)
	client, product := seedClientAndProduct(t, db)
	repo := NewSaleRepository(db, "")

	taken := newSale(client, product, 1)
	taken.InvoiceNo = "DZAIR-2026-001"
	require.NoError(t, db.Create(taken).Error)

	// The malformed row is the latest insert, so both the first attempt and
	// the retry regenerate DZAIR-2026-001 and collide with the seeded row.
	bad := newSale(client, product, 1)
	bad.InvoiceNo = "DZAIR-2026-BAD"
	require.NoError(t, db.Create(bad).Error)

	sale := newSale(client, product, 3)
	err := repo.Record(context.Background(), sale)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	// The failed transaction rolled back every write
	var gotClient entity.Client
	require.NoError(t, db.First(&gotClient, client.ID).Error)
	assert.Equal(t, 0.0, gotClient.TotalSpent)
	assert.Equal(t, 0, gotClient.TotalOrders)

	var gotProduct entity.Product
	require.NoError(t, db.First(&gotProduct, product.ID).Error)
	assert.Equal(t, 10, gotProduct.StockQty)

	var count int64
	require.NoError(t, db.Model(&entity.Sale{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
