package order

import (
	"strings"

	"storefront/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidPaymentType(paymentType entities.PaymentType) bool {
	switch paymentType {
	case entities.PaymentCOD, entities.PaymentRazorpay:
		return true
	default:
		return false
	}
}

func validateShippingAddress(address entities.Address) error {
	if strings.TrimSpace(address.FullName) == "" ||
		strings.TrimSpace(address.Line) == "" ||
		strings.TrimSpace(address.City) == "" ||
		strings.TrimSpace(address.State) == "" {
		return ErrMissingRequiredFields
	}
	if !isDigits(address.Phone, 10) || !isDigits(address.PostalCode, 6) {
		return ErrMissingRequiredFields
	}
	return nil
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
