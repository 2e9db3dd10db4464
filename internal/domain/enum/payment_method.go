package enum

// PaymentMethod represents how a sale was paid for.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "Cash"
	PaymentBaridiMob PaymentMethod = "BaridiMob"
	PaymentCCP       PaymentMethod = "CCP"
	PaymentBank      PaymentMethod = "Bank"
)

// IsValid reports whether the payment method is one of the known values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentBaridiMob, PaymentCCP, PaymentBank:
		return true
	}
	return false
}
