package models

import "strings"

type AddressModel struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
}

type RegisterClientRequest struct {
	Name        string       `json:"name"`
	CPF         string       `json:"cpf"`
	DateOfBirth string       `json:"dateOfBirth"`
	Address     AddressModel `json:"address"`
	Pin         string       `json:"pin,omitempty"`
}

func (r RegisterClientRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.CPF) == "" {
		errs = append(errs, "cpf is required")
	}
	if strings.TrimSpace(r.DateOfBirth) == "" {
		errs = append(errs, "dateOfBirth is required")
	}
	if strings.TrimSpace(r.Address.Street) == "" {
		errs = append(errs, "address.street is required")
	}
	if strings.TrimSpace(r.Address.City) == "" {
		errs = append(errs, "address.city is required")
	}
	if state := strings.TrimSpace(r.Address.State); state == "" {
		errs = append(errs, "address.state is required")
	} else if len(state) != 2 {
		errs = append(errs, "address.state must be a 2-letter code")
	}
	if pin := strings.TrimSpace(r.Pin); pin != "" {
		errs = validateDigits(errs, "pin", pin, 6, false)
		if len(pin) < 4 {
			errs = append(errs, "pin must have at least 4 digits")
		}
	}

	return joinErrors(errs)
}

type ClientResponse struct {
	Name        string            `json:"name"`
	CPF         string            `json:"cpf"`
	DateOfBirth string            `json:"dateOfBirth"`
	Address     string            `json:"address"`
	HasPin      bool              `json:"hasPin"`
	Accounts    []AccountResponse `json:"accounts"`
}

type RegisterClientResponse struct {
	Registered bool           `json:"registered"`
	Client     ClientResponse `json:"client"`
}
