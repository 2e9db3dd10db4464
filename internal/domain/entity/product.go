package entity

import "time"

// Product represents a catalog entry. Prices are snapshotted onto each sale
// at recording time and are not versioned. StockQty is decremented by each
// sale and is allowed to go negative.
type Product struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Name                 string    `gorm:"size:255;not null" json:"name"`
	PurchasePrice        float64   `gorm:"not null" json:"purchase_price"`
	Weight               float64   `gorm:"default:0" json:"weight"`
	DefaultDeliveryPrice float64   `gorm:"default:0" json:"default_delivery_price"`
	SellingPrice         float64   `gorm:"not null" json:"selling_price"`
	StockQty             int       `gorm:"default:0" json:"stock_qty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	Sales []Sale `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
