package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Replace spaces with hyphens
	s = strings.ReplaceAll(s, " ", "-")

	// Remove non-alphanumeric characters except hyphens
	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	// Remove multiple consecutive hyphens
	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	// Trim hyphens from start and end
	s = strings.Trim(s, "-")

	return s
}

// GenerateOrderNo builds the next order number for a business date.
// Order numbers restart at 1 each day so they stay short on receipts.
func GenerateOrderNo(seq int64) string {
	return fmt.Sprintf("%d", seq+1)
}

// GenerateCheckNo generates a printable check reference for an order
func GenerateCheckNo(branchReference string, seq int64) string {
	return fmt.Sprintf("%s-%04d", strings.ToUpper(branchReference), seq+1)
}

// GenerateDeviceCode generates a unique pairing code for a POS device
func GenerateDeviceCode() string {
	return "DEV-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateSKU generates a unique product SKU
func GenerateSKU() string {
	return "SKU-" + strings.ToUpper(uuid.New().String()[:8])
}
