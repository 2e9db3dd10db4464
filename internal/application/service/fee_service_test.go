package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxdzair-dotcom/dzair-online/pkg/apperror"
)

func TestCreateFee(t *testing.T) {
	svc := NewFeeService(newStubFeeRepo())

	fee, err := svc.CreateFee(context.Background(), &CreateFeeInput{
		CampaignName: "Ramadan promo",
		Platform:     "Facebook",
		AmountSpent:  1500,
		Date:         "2026-03-01",
	})
	require.NoError(t, err)

	assert.NotZero(t, fee.ID)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), fee.Date)
}

func TestCreateFeeDefaultsToToday(t *testing.T) {
	svc := NewFeeService(newStubFeeRepo())

	fee, err := svc.CreateFee(context.Background(), &CreateFeeInput{
		CampaignName: "Launch",
		AmountSpent:  100,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format(dateLayout), fee.Date.Format(dateLayout))
}

func TestCreateFeeValidation(t *testing.T) {
	svc := NewFeeService(newStubFeeRepo())

	_, err := svc.CreateFee(context.Background(), &CreateFeeInput{CampaignName: " "})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.CreateFee(context.Background(), &CreateFeeInput{CampaignName: "X", AmountSpent: -5})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.CreateFee(context.Background(), &CreateFeeInput{CampaignName: "X", Date: "01-03-2026"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
