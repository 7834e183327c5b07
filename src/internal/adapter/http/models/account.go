package models

import "strings"

type CreateAccountRequest struct {
	CPF string `json:"cpf"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string
	if strings.TrimSpace(r.CPF) == "" {
		errs = append(errs, "cpf is required")
	}
	return joinErrors(errs)
}

type AccountResponse struct {
	AccountNumber     string `json:"accountNumber"`
	AgencyNumber      string `json:"agencyNumber"`
	Balance           string `json:"balance"`
	ClientName        string `json:"clientName"`
	ClientCPF         string `json:"clientCpf"`
	TotalTransactions int    `json:"totalTransactions"`
	TotalWithdrawals  int    `json:"totalWithdrawals"`
}

type SignInRequest struct {
	CPF           string `json:"cpf"`
	AccountNumber string `json:"accountNumber"`
	AgencyNumber  string `json:"agencyNumber,omitempty"`
	Pin           string `json:"pin,omitempty"`
}

func (r SignInRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CPF) == "" {
		errs = append(errs, "cpf is required")
	}
	errs = validateDigits(errs, "accountNumber", r.AccountNumber, 8, true)
	errs = validateDigits(errs, "agencyNumber", r.AgencyNumber, 4, false)

	return joinErrors(errs)
}

type SignInResponse struct {
	Account       AccountResponse `json:"account"`
	PinVerified   bool            `json:"pinVerified"`
	Authenticated bool            `json:"authenticated"`
}
