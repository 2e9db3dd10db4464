package entity

import "time"

// Client represents a buyer in the ledger. TotalSpent and TotalOrders are
// running accumulators maintained inside the sale-recording transaction; no
// other code path mutates them.
type Client struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
	City        string    `gorm:"size:100" json:"city"`
	TotalSpent  float64   `gorm:"default:0" json:"total_spent"`
	TotalOrders int       `gorm:"default:0" json:"total_orders"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Sales []Sale `gorm:"foreignKey:ClientID" json:"-"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
