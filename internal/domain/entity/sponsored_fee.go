package entity

import "time"

// SponsoredFee records advertising spend for one campaign on one day. It is
// independent of sales and feeds only the marketing-cost aggregates.
type SponsoredFee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CampaignName string    `gorm:"size:255;not null" json:"campaign_name"`
	Platform     string    `gorm:"size:100" json:"platform"`
	AmountSpent  float64   `gorm:"not null" json:"amount_spent"`
	Date         time.Time `gorm:"type:date" json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for the SponsoredFee model
func (SponsoredFee) TableName() string {
	return "sponsored_fees"
}
