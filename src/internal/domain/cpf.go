package domain

import (
	"fmt"
	"strings"
)

const cpfLength = 11

// CPF is a validated Brazilian taxpayer identifier holding only its 11 digits.
type CPF struct {
	digits string
}

func NewCPF(raw string) (CPF, error) {
	digits := onlyDigits(raw)
	if !isValidCPF(digits) {
		return CPF{}, fmt.Errorf("cpf %q: %w", raw, ErrInvalidIdentifierFormat)
	}

	return CPF{digits: digits}, nil
}

func MustCPF(raw string) CPF {
	cpf, err := NewCPF(raw)
	if err != nil {
		panic(err)
	}
	return cpf
}

func (c CPF) Digits() string {
	return c.digits
}

func (c CPF) IsZero() bool {
	return c.digits == ""
}

func (c CPF) Equal(other CPF) bool {
	return c.digits == other.digits
}

func (c CPF) String() string {
	if len(c.digits) != cpfLength {
		return ""
	}
	return c.digits[:3] + "." + c.digits[3:6] + "." + c.digits[6:9] + "-" + c.digits[9:]
}

func isValidCPF(digits string) bool {
	if len(digits) != cpfLength {
		return false
	}
	if strings.Count(digits, digits[:1]) == cpfLength {
		return false
	}

	first := cpfCheckDigit(digits[:9])
	second := cpfCheckDigit(digits[:9] + string(rune('0'+first)))

	return int(digits[9]-'0') == first && int(digits[10]-'0') == second
}

// cpfCheckDigit weights the digits from len+1 down to 2.
func cpfCheckDigit(digits string) int {
	weight := len(digits) + 1
	sum := 0
	for _, ch := range digits {
		sum += int(ch-'0') * weight
		weight--
	}

	digit := (sum * 10) % 11
	if digit >= 10 {
		return 0
	}
	return digit
}

func onlyDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, ch := range value {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
