package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 16
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixCompany       = "cmp"
	PrefixUser          = "usr"
	PrefixSupplier      = "sup"
	PrefixTemplate      = "tpl"
	PrefixContract      = "ctr"
	PrefixDocument      = "doc"
	PrefixNotification  = "ntf"
	PrefixInvoice       = "inv"
	PrefixPurchaseOrder = "po"
	PrefixConditions    = "gcd"
	PrefixAcceptance    = "gca"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string) string {
	id, err := GenerateWithPrefix(prefix, DefaultLength)
	if err != nil {
		panic(err)
	}
	return id
}

// ParsePrefixedID extracts the prefix and short ID from a prefixed ID string.
// Example: ParsePrefixedID("ctr_xK9mP2vL3nQ") returns ("ctr", "xK9mP2vL3nQ", nil)
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// ValidatePrefix checks if the prefixed ID has the expected prefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}

func NewCompanyID() (string, error)       { return GenerateWithPrefix(PrefixCompany, DefaultLength) }
func NewUserID() (string, error)          { return GenerateWithPrefix(PrefixUser, DefaultLength) }
func NewSupplierID() (string, error)      { return GenerateWithPrefix(PrefixSupplier, DefaultLength) }
func NewTemplateID() (string, error)      { return GenerateWithPrefix(PrefixTemplate, DefaultLength) }
func NewContractID() (string, error)      { return GenerateWithPrefix(PrefixContract, DefaultLength) }
func NewDocumentID() (string, error)      { return GenerateWithPrefix(PrefixDocument, DefaultLength) }
func NewNotificationID() (string, error)  { return GenerateWithPrefix(PrefixNotification, DefaultLength) }
func NewInvoiceID() (string, error)       { return GenerateWithPrefix(PrefixInvoice, DefaultLength) }
func NewPurchaseOrderID() (string, error) { return GenerateWithPrefix(PrefixPurchaseOrder, DefaultLength) }
func NewConditionsID() (string, error)    { return GenerateWithPrefix(PrefixConditions, DefaultLength) }
func NewAcceptanceID() (string, error)    { return GenerateWithPrefix(PrefixAcceptance, DefaultLength) }
