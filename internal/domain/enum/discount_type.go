package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how a discount is applied
type DiscountType int

const (
	DiscountTypePercentage DiscountType = 0
	DiscountTypeFixed      DiscountType = 1
)

func (t DiscountType) String() string {
	names := [...]string{"Percentage", "Fixed"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Percentage"
	}
	return names[t]
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DiscountType(i)
		return nil
	}
	switch str {
	case "Percentage":
		*t = DiscountTypePercentage
	case "Fixed":
		*t = DiscountTypeFixed
	}
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypePercentage
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DiscountType(v)
	case int:
		*t = DiscountType(v)
	}
	return nil
}
