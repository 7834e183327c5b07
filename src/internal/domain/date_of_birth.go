package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateOfBirthLayout = "02/01/2006"

type DateOfBirth struct {
	date time.Time
}

func ParseDateOfBirth(raw string) (DateOfBirth, error) {
	date, err := time.Parse(dateOfBirthLayout, strings.TrimSpace(raw))
	if err != nil {
		return DateOfBirth{}, fmt.Errorf("date of birth %q must be in dd/mm/yyyy format: %w", raw, ErrInvalidIdentifierFormat)
	}
	return DateOfBirth{date: date}, nil
}

func (d DateOfBirth) Time() time.Time {
	return d.date
}

func (d DateOfBirth) String() string {
	if d.date.IsZero() {
		return ""
	}
	return d.date.Format(dateOfBirthLayout)
}
