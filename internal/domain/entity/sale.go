package entity

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale construction errors
var (
	ErrSaleNoLines          = errors.New("product sale requires at least one line")
	ErrSaleVIPNameRequired  = errors.New("VIP sale requires a customer name")
	ErrSettlementHasLines   = errors.New("settlement sale cannot carry product lines")
	ErrSettlementMethod     = errors.New("settlement cannot be charged to a VIP tab")
	ErrSettlementZeroAmount = errors.New("settlement amount must be positive")
)

// Sale is one finalized checkout transaction in the ledger. Kind tags the
// variant: a Product sale carries lines and an optional discount, a
// Settlement sale carries no lines and pays off a VIP tab in full.
// Sales are immutable once created; reversal deletes the row.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleNo        string             `gorm:"size:100;unique;not null" json:"sale_no"`
	Timestamp     time.Time          `gorm:"not null;index" json:"timestamp"`
	Kind          enum.SaleKind      `gorm:"default:0;index" json:"kind"`
	PaymentMethod enum.PaymentMethod `gorm:"not null;index" json:"payment_method"`
	SubTotal      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total         int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tendered      int64              `gorm:"default:0" json:"-"` // Cash received, cents
	Change        int64              `gorm:"default:0" json:"-"` // Cash change due, cents
	VIPCustomer   *string            `gorm:"size:255;index" json:"vip_customer,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Lines []SaleLine `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
		Tendered float64 `json:"tendered"`
		Change   float64 `json:"change"`
	}{
		Alias:    Alias(s),
		SubTotal: float64(s.SubTotal) / 100,
		Discount: float64(s.Discount) / 100,
		Total:    float64(s.Total) / 100,
		Tendered: float64(s.Tendered) / 100,
		Change:   float64(s.Change) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetTotalDecimal returns the total as a decimal
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.Total) / 100
}

// ShortID returns the last six characters of the sale id, as printed on tickets.
func (s *Sale) ShortID() string {
	id := s.ID.String()
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}

// NewProductSale validates and builds a Product-kind sale. Line totals and the
// sale total must already be computed by the caller (zeroed for complimentary
// sales); this constructor only enforces the variant's shape.
func NewProductSale(saleNo string, ts time.Time, method enum.PaymentMethod, subTotal, discount, total int64, vipCustomer *string, lines []SaleLine) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrSaleNoLines
	}
	if method == enum.PaymentVIP && (vipCustomer == nil || *vipCustomer == "") {
		return nil, ErrSaleVIPNameRequired
	}
	return &Sale{
		SaleNo:        saleNo,
		Timestamp:     ts,
		Kind:          enum.SaleKindProduct,
		PaymentMethod: method,
		SubTotal:      subTotal,
		Discount:      discount,
		Total:         total,
		VIPCustomer:   vipCustomer,
		Lines:         lines,
	}, nil
}

// NewSettlementSale validates and builds a Settlement-kind sale paying off a
// VIP tab of amount cents via the given method.
func NewSettlementSale(saleNo string, ts time.Time, method enum.PaymentMethod, amount int64, vipCustomer string) (*Sale, error) {
	if !method.Settles() {
		return nil, ErrSettlementMethod
	}
	if vipCustomer == "" {
		return nil, ErrSaleVIPNameRequired
	}
	if amount <= 0 {
		return nil, ErrSettlementZeroAmount
	}
	return &Sale{
		SaleNo:        saleNo,
		Timestamp:     ts,
		Kind:          enum.SaleKindSettlement,
		PaymentMethod: method,
		SubTotal:      amount,
		Total:         amount,
		VIPCustomer:   &vipCustomer,
	}, nil
}

// SaleLine is a per-flavor snapshot inside a product sale. Flavor name and
// unit price are copied at finalize time so later catalog edits never change
// the ledger. Total is zero on complimentary sales while UnitPrice keeps the
// catalog snapshot.
type SaleLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	Flavor    string    `gorm:"size:255;not null" json:"flavor"`
	UnitPrice int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity  int       `gorm:"not null" json:"quantity"`
	Total     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l SaleLine) MarshalJSON() ([]byte, error) {
	type Alias SaleLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		Total:     float64(l.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale line
func (l *SaleLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLine model
func (SaleLine) TableName() string {
	return "sale_lines"
}
