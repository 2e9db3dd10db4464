package pricing

// Pricing rules applied to every sale. Amounts are plain DZD values; any
// rounding happens at display time, never here.

const (
	// PerKgDeliveryRate is the delivery charge per kilogram of product weight.
	PerKgDeliveryRate = 50.0

	// FlatDeduction is the fixed per-sale operational fee subtracted from
	// gross profit.
	FlatDeduction = 500.0
)

// DeliveryCost returns the total delivery cost for a sale: a weight-based
// component plus the flat delivery fee actually charged.
func DeliveryCost(weight, deliveryPrice float64) float64 {
	return weight*PerKgDeliveryRate + deliveryPrice
}

// GrossProfit returns the profit after delivery and purchase costs.
// The result may be negative; a loss is a valid outcome.
func GrossProfit(sellingPrice, deliveryCost, purchasePrice float64) float64 {
	return (sellingPrice - deliveryCost) - purchasePrice
}

// NetProfit returns the gross profit minus the flat per-sale deduction.
func NetProfit(grossProfit float64) float64 {
	return grossProfit - FlatDeduction
}
