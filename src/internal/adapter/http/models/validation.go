package models

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func joinErrors(errs []string) error {
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateDigits(errs []string, field, value string, maxLen int, required bool) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			errs = append(errs, field+" is required")
		}
		return errs
	}

	if len(value) > maxLen {
		return append(errs, field+" must have at most "+strconv.Itoa(maxLen)+" digits")
	}
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return append(errs, field+" must contain only digits")
		}
	}
	return errs
}

func validateAmount(errs []string, value string) []string {
	amount := strings.TrimSpace(value)
	if amount == "" {
		return append(errs, "amount is required")
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return append(errs, "amount must be numeric")
	}
	if parsed.LessThanOrEqual(decimal.Zero) {
		return append(errs, "amount must be greater than zero")
	}
	if !parsed.Equal(parsed.Truncate(2)) {
		return append(errs, "amount must have at most 2 decimal places")
	}
	return errs
}
