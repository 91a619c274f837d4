package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus int

const (
	OrderStatusOpen   OrderStatus = 0
	OrderStatusClosed OrderStatus = 1
	OrderStatusVoided OrderStatus = 2
)

func (s OrderStatus) String() string {
	names := [...]string{"Open", "Closed", "Voided"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Open"
	}
	return names[s]
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = OrderStatusOpen
	case "Closed":
		*s = OrderStatusClosed
	case "Voided":
		*s = OrderStatusVoided
	}
	return nil
}

// ParseOrderStatus converts a status name to an OrderStatus
func ParseOrderStatus(str string) (OrderStatus, bool) {
	switch str {
	case "Open":
		return OrderStatusOpen, true
	case "Closed":
		return OrderStatusClosed, true
	case "Voided":
		return OrderStatusVoided, true
	}
	return OrderStatusOpen, false
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
