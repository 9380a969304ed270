package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod int

const (
	PaymentPix           PaymentMethod = 0
	PaymentDebit         PaymentMethod = 1
	PaymentCredit        PaymentMethod = 2
	PaymentCash          PaymentMethod = 3
	PaymentVIP           PaymentMethod = 4
	PaymentComplimentary PaymentMethod = 5
)

func (m PaymentMethod) String() string {
	names := [...]string{"PIX", "Debit", "Credit", "Cash", "VIP", "Complimentary"}
	if int(m) < 0 || int(m) >= len(names) {
		return "PIX"
	}
	return names[m]
}

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	return m >= PaymentPix && m <= PaymentComplimentary
}

// Settles reports whether m may be used to pay off a VIP tab.
// Charging a settlement back to a VIP tab is not allowed.
func (m PaymentMethod) Settles() bool {
	switch m {
	case PaymentPix, PaymentDebit, PaymentCredit, PaymentCash:
		return true
	}
	return false
}

// ParsePaymentMethod converts a wire name into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch s {
	case "PIX":
		return PaymentPix, true
	case "Debit":
		return PaymentDebit, true
	case "Credit":
		return PaymentCredit, true
	case "Cash":
		return PaymentCash, true
	case "VIP":
		return PaymentVIP, true
	case "Complimentary":
		return PaymentComplimentary, true
	}
	return 0, false
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	if parsed, ok := ParsePaymentMethod(str); ok {
		*m = parsed
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentPix
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
