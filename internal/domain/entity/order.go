package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sales order. Money fields are stored in cents and
// converted to decimals in JSON and at receipt time.
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	BranchID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"branch_id"`
	DeviceID     *uuid.UUID       `gorm:"type:uuid;index" json:"device_id,omitempty"`
	OrderNo      string           `gorm:"size:50;not null;index" json:"order_no"`
	CheckNo      string           `gorm:"size:50" json:"check_no,omitempty"`
	Type         enum.OrderType   `gorm:"default:0" json:"type"`
	Status       enum.OrderStatus `gorm:"default:0" json:"status"`
	BusinessDate time.Time        `gorm:"type:date;not null;index" json:"business_date"`
	OpenedAt     *time.Time       `json:"opened_at,omitempty"`
	ClosedAt     *time.Time       `json:"closed_at,omitempty"`

	TableNo       string     `gorm:"size:20" json:"table_no,omitempty"`
	Guests        *int       `json:"guests,omitempty"`
	CustomerName  string     `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone string     `gorm:"size:50" json:"customer_phone,omitempty"`
	CreatorID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"creator_id"`
	CloserID      *uuid.UUID `gorm:"type:uuid;index" json:"closer_id,omitempty"`

	SubTotal      int64  `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	DiscountTotal int64  `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TaxTotal      int64  `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Rounding      *int64 `json:"-"`                  // Signed cents, nil until the order closes
	NetTotal      int64  `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch   Branch         `gorm:"foreignKey:BranchID" json:"-"`
	Device   *Device        `gorm:"foreignKey:DeviceID" json:"-"`
	Creator  User           `gorm:"foreignKey:CreatorID" json:"-"`
	Closer   *User          `gorm:"foreignKey:CloserID" json:"-"`
	Items    []OrderItem    `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments []OrderPayment `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	out := &struct {
		Alias
		SubTotal      float64  `json:"sub_total"`
		DiscountTotal float64  `json:"discount_total"`
		TaxTotal      float64  `json:"tax_total"`
		Rounding      *float64 `json:"rounding,omitempty"`
		NetTotal      float64  `json:"net_total"`
	}{
		Alias:         Alias(o),
		SubTotal:      float64(o.SubTotal) / 100,
		DiscountTotal: float64(o.DiscountTotal) / 100,
		TaxTotal:      float64(o.TaxTotal) / 100,
		NetTotal:      float64(o.NetTotal) / 100,
	}
	if o.Rounding != nil {
		r := float64(*o.Rounding) / 100
		out.Rounding = &r
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// PaidTotal returns the sum of all payments in cents
func (o *Order) PaidTotal() int64 {
	var paid int64
	for _, p := range o.Payments {
		paid += p.Amount
	}
	return paid
}

// OrderItem represents a line item in an order. Product names are
// denormalized at order time so receipts survive later menu edits.
type OrderItem struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderID              uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName          string     `gorm:"size:255;not null" json:"product_name"`
	ProductNameLocalized string     `gorm:"size:255" json:"product_name_localized,omitempty"`
	Quantity             int        `gorm:"not null" json:"quantity"`
	UnitPrice            int64      `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	TotalPrice           int64      `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	DiscountAmount       int64      `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Calories             *int       `json:"calories,omitempty"`
	DiscountID           *uuid.UUID `gorm:"type:uuid" json:"discount_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order     Order               `gorm:"foreignKey:OrderID" json:"-"`
	Modifiers []OrderItemModifier `gorm:"foreignKey:OrderItemID" json:"modifiers,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice      float64 `json:"unit_price"`
		TotalPrice     float64 `json:"total_price"`
		DiscountAmount float64 `json:"discount_amount"`
	}{
		Alias:          Alias(i),
		UnitPrice:      float64(i.UnitPrice) / 100,
		TotalPrice:     float64(i.TotalPrice) / 100,
		DiscountAmount: float64(i.DiscountAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderItemModifier represents a modifier option applied to an order item
type OrderItemModifier struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"order_item_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Price       int64     `gorm:"default:0" json:"-"` // Stored in cents; 0 means free/default
	IsDefault   bool      `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	OrderItem OrderItem `gorm:"foreignKey:OrderItemID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m OrderItemModifier) MarshalJSON() ([]byte, error) {
	type Alias OrderItemModifier
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item modifier
func (m *OrderItemModifier) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItemModifier model
func (OrderItemModifier) TableName() string {
	return "order_item_modifiers"
}

// OrderPayment represents a single tender recorded against an order
type OrderPayment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Method  string    `gorm:"size:50;not null" json:"method"`
	Amount  int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p OrderPayment) MarshalJSON() ([]byte, error) {
	type Alias OrderPayment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order payment
func (p *OrderPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderPayment model
func (OrderPayment) TableName() string {
	return "order_payments"
}
