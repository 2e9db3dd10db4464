package entity

import (
	"time"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/enum"
)

// Sale is one ledger row. PurchasePrice, SellingPrice, Weight and
// DeliveryPrice are snapshots of the product at recording time; TotLivraison,
// PFayda and FaydaSafia are derived from them once, at creation, and never
// recomputed. There is no update or delete operation for sales.
type Sale struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	ClientID      uint               `gorm:"not null;index" json:"client_id"`
	ProductID     uint               `gorm:"not null;index" json:"product_id"`
	Quantity      int                `gorm:"not null" json:"quantity"`
	PurchasePrice float64            `json:"purchase_price"`
	SellingPrice  float64            `json:"selling_price"`
	Weight        float64            `json:"weight"`
	DeliveryPrice float64            `json:"delivery_price"`
	TotLivraison  float64            `json:"tot_livraison"`
	PFayda        float64            `json:"p_fayda"`
	FaydaSafia    float64            `json:"fayda_safia"`
	PaymentMethod enum.PaymentMethod `gorm:"size:50" json:"payment_method"`
	Status        enum.SaleStatus    `gorm:"size:50" json:"status"`
	Paid          bool               `gorm:"default:false" json:"paid"`
	Date          time.Time          `gorm:"type:date;not null" json:"date"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// ClientName returns the joined client display name, if loaded.
func (s *Sale) ClientName() string {
	if s.Client == nil {
		return ""
	}
	return s.Client.Name
}

// ProductName returns the joined product display name, if loaded.
func (s *Sale) ProductName() string {
	if s.Product == nil {
		return ""
	}
	return s.Product.Name
}
