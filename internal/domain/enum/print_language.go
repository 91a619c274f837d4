package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PrintLanguage controls which product name language appears on receipts
type PrintLanguage int

const (
	PrintLanguageMainLocalized PrintLanguage = 0
	PrintLanguageMainOnly      PrintLanguage = 1
	PrintLanguageLocalizedOnly PrintLanguage = 2
)

// String returns the wire code for the print language mode
func (l PrintLanguage) String() string {
	names := [...]string{"MAIN_LOCALIZED", "MAIN_ONLY", "LOCALIZED_ONLY"}
	if int(l) < 0 || int(l) >= len(names) {
		return "MAIN_LOCALIZED"
	}
	return names[l]
}

func (l PrintLanguage) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *PrintLanguage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*l = PrintLanguage(i)
		return nil
	}
	switch str {
	case "MAIN_LOCALIZED":
		*l = PrintLanguageMainLocalized
	case "MAIN_ONLY":
		*l = PrintLanguageMainOnly
	case "LOCALIZED_ONLY":
		*l = PrintLanguageLocalizedOnly
	}
	return nil
}

// ParsePrintLanguage converts a wire code to a PrintLanguage
func ParsePrintLanguage(s string) (PrintLanguage, bool) {
	switch s {
	case "MAIN_LOCALIZED":
		return PrintLanguageMainLocalized, true
	case "MAIN_ONLY":
		return PrintLanguageMainOnly, true
	case "LOCALIZED_ONLY":
		return PrintLanguageLocalizedOnly, true
	}
	return PrintLanguageMainLocalized, false
}

func (l PrintLanguage) Value() (driver.Value, error) {
	return int64(l), nil
}

func (l *PrintLanguage) Scan(value interface{}) error {
	if value == nil {
		*l = PrintLanguageMainLocalized
		return nil
	}
	switch v := value.(type) {
	case int64:
		*l = PrintLanguage(v)
	case int:
		*l = PrintLanguage(v)
	}
	return nil
}
