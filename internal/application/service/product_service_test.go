package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxdzair-dotcom/dzair-online/pkg/apperror"
)

func TestCreateProduct(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:                 "Montre Casio",
		PurchasePrice:        1000,
		Weight:               2,
		DefaultDeliveryPrice: 200,
		SellingPrice:         3000,
		StockQty:             10,
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, 10, product.StockQty)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	cases := []struct {
		name  string
		input *CreateProductInput
	}{
		{"blank name", &CreateProductInput{Name: " "}},
		{"negative purchase price", &CreateProductInput{Name: "X", PurchasePrice: -1}},
		{"negative weight", &CreateProductInput{Name: "X", Weight: -0.5}},
		{"negative delivery default", &CreateProductInput{Name: "X", DefaultDeliveryPrice: -200}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	_, err := svc.GetProduct(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
