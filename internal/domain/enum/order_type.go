package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderType represents the service type of an order
type OrderType int

const (
	OrderTypeDineIn    OrderType = 0
	OrderTypePickup    OrderType = 1
	OrderTypeDelivery  OrderType = 2
	OrderTypeDriveThru OrderType = 3
)

// String returns the wire code for the order type
func (t OrderType) String() string {
	names := [...]string{"DINE_IN", "PICKUP", "DELIVERY", "DRIVE_THRU"}
	if int(t) < 0 || int(t) >= len(names) {
		return "DINE_IN"
	}
	return names[t]
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = OrderType(i)
		return nil
	}
	switch str {
	case "DINE_IN":
		*t = OrderTypeDineIn
	case "PICKUP":
		*t = OrderTypePickup
	case "DELIVERY":
		*t = OrderTypeDelivery
	case "DRIVE_THRU":
		*t = OrderTypeDriveThru
	}
	return nil
}

// ParseOrderType converts a wire code to an OrderType
func ParseOrderType(s string) (OrderType, bool) {
	switch s {
	case "DINE_IN":
		return OrderTypeDineIn, true
	case "PICKUP":
		return OrderTypePickup, true
	case "DELIVERY":
		return OrderTypeDelivery, true
	case "DRIVE_THRU":
		return OrderTypeDriveThru, true
	}
	return OrderTypeDineIn, false
}

func (t OrderType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *OrderType) Scan(value interface{}) error {
	if value == nil {
		*t = OrderTypeDineIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = OrderType(v)
	case int:
		*t = OrderType(v)
	}
	return nil
}
