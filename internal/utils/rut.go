package utils

import (
	"strconv"
	"strings"
)

// NormalizeRUT strips dots and uppercases the check digit so RUTs compare and
// store consistently, e.g. "12.345.678-k" -> "12345678-K".
func NormalizeRUT(rut string) string {
	rut = strings.ReplaceAll(strings.TrimSpace(rut), ".", "")
	rut = strings.ToUpper(rut)
	// Insert the dash if the caller omitted it.
	if len(rut) > 1 && !strings.Contains(rut, "-") {
		rut = rut[:len(rut)-1] + "-" + rut[len(rut)-1:]
	}
	return rut
}

// ValidateRUT checks a Chilean RUT's modulo-11 check digit. The input may
// include dots and may use either case for a K check digit.
func ValidateRUT(rut string) bool {
	rut = NormalizeRUT(rut)
	parts := strings.Split(rut, "-")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 1 {
		return false
	}

	number, err := strconv.Atoi(parts[0])
	if err != nil || number <= 0 {
		return false
	}

	sum := 0
	factor := 2
	for n := number; n > 0; n /= 10 {
		sum += (n % 10) * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	var expected string
	switch rest := 11 - (sum % 11); rest {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = strconv.Itoa(rest)
	}

	return parts[1] == expected
}
