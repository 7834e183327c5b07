package domain

import (
	"fmt"
	"strings"
)

type Address struct {
	Street   string
	Number   string
	District string
	City     string
	State    string
}

func NewAddress(street, number, district, city, state string) Address {
	return Address{
		Street:   strings.TrimSpace(street),
		Number:   strings.TrimSpace(number),
		District: strings.TrimSpace(district),
		City:     strings.TrimSpace(city),
		State:    strings.TrimSpace(state),
	}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, nº %s, %s - %s/%s", a.Street, a.Number, a.District, a.City, a.State)
}
