package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	accountNumberWidth   = 8
	accountNumberCeiling = 100_000_000
	agencyNumberWidth    = 4
	agencyNumberCeiling  = 10_000
)

type AccountNumber struct {
	value int
	set   bool
}

func NewAccountNumber(value int) (AccountNumber, error) {
	if value < 0 || value >= accountNumberCeiling {
		return AccountNumber{}, fmt.Errorf("account number %d: %w", value, ErrInvalidIdentifierFormat)
	}
	return AccountNumber{value: value, set: true}, nil
}

func ParseAccountNumber(raw string) (AccountNumber, error) {
	value, err := parseFixedWidth(raw, accountNumberWidth)
	if err != nil {
		return AccountNumber{}, fmt.Errorf("account number %q: %w", raw, err)
	}
	return NewAccountNumber(value)
}

func (n AccountNumber) Int() int {
	return n.value
}

func (n AccountNumber) IsZero() bool {
	return !n.set
}

func (n AccountNumber) Equal(other AccountNumber) bool {
	return n.String() == other.String()
}

func (n AccountNumber) String() string {
	return fmt.Sprintf("%0*d", accountNumberWidth, n.value)
}

type AgencyNumber struct {
	value int
	set   bool
}

func NewAgencyNumber(value int) (AgencyNumber, error) {
	if value < 0 || value >= agencyNumberCeiling {
		return AgencyNumber{}, fmt.Errorf("agency number %d: %w", value, ErrInvalidIdentifierFormat)
	}
	return AgencyNumber{value: value, set: true}, nil
}

func ParseAgencyNumber(raw string) (AgencyNumber, error) {
	value, err := parseFixedWidth(raw, agencyNumberWidth)
	if err != nil {
		return AgencyNumber{}, fmt.Errorf("agency number %q: %w", raw, err)
	}
	return NewAgencyNumber(value)
}

func (n AgencyNumber) Int() int {
	return n.value
}

func (n AgencyNumber) IsZero() bool {
	return !n.set
}

func (n AgencyNumber) Equal(other AgencyNumber) bool {
	return n.String() == other.String()
}

func (n AgencyNumber) String() string {
	return fmt.Sprintf("%0*d", agencyNumberWidth, n.value)
}

// parseFixedWidth accepts digit strings that are exactly width long once zero-padded.
func parseFixedWidth(raw string, width int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || onlyDigits(trimmed) != trimmed {
		return 0, ErrInvalidIdentifierFormat
	}

	padded := strings.Repeat("0", max(0, width-len(trimmed))) + trimmed
	if len(padded) != width {
		return 0, ErrInvalidIdentifierFormat
	}

	value, err := strconv.Atoi(padded)
	if err != nil {
		return 0, ErrInvalidIdentifierFormat
	}
	return value, nil
}
