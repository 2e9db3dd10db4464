package enum

// SaleStatus represents the delivery status of a sale.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "Pending"
	SaleStatusDelivered SaleStatus = "Delivered"
	SaleStatusReturned  SaleStatus = "Returned"
)

// IsValid reports whether the status is one of the known values.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusDelivered, SaleStatusReturned:
		return true
	}
	return false
}
