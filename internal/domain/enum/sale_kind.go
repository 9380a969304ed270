package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleKind distinguishes product sales from VIP tab settlements
type SaleKind int

const (
	SaleKindProduct    SaleKind = 0
	SaleKindSettlement SaleKind = 1
)

func (k SaleKind) String() string {
	names := [...]string{"Product", "Settlement"}
	if int(k) < 0 || int(k) >= len(names) {
		return "Product"
	}
	return names[k]
}

func (k SaleKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *SaleKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = SaleKind(i)
		return nil
	}
	switch str {
	case "Product":
		*k = SaleKindProduct
	case "Settlement":
		*k = SaleKindSettlement
	}
	return nil
}

func (k SaleKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *SaleKind) Scan(value interface{}) error {
	if value == nil {
		*k = SaleKindProduct
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = SaleKind(v)
	case int:
		*k = SaleKind(v)
	}
	return nil
}
