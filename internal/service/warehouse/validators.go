package warehouse

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	return isDigits(phone, 10)
}

func isValidPincode(pincode string) bool {
	return isDigits(pincode, 6)
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
