package models

type DepositRequest struct {
	AccountNumber string `json:"accountNumber"`
	AgencyNumber  string `json:"agencyNumber,omitempty"`
	Amount        string `json:"amount"`
}

func (r DepositRequest) Validate() error {
	var errs []string
	errs = validateDigits(errs, "accountNumber", r.AccountNumber, 8, true)
	errs = validateDigits(errs, "agencyNumber", r.AgencyNumber, 4, false)
	errs = validateAmount(errs, r.Amount)
	return joinErrors(errs)
}

type WithdrawRequest struct {
	AccountNumber string `json:"accountNumber"`
	AgencyNumber  string `json:"agencyNumber,omitempty"`
	Amount        string `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	var errs []string
	errs = validateDigits(errs, "accountNumber", r.AccountNumber, 8, true)
	errs = validateDigits(errs, "agencyNumber", r.AgencyNumber, 4, false)
	errs = validateAmount(errs, r.Amount)
	return joinErrors(errs)
}

type TransferRequest struct {
	SourceAccountNumber      string `json:"sourceAccountNumber"`
	SourceAgencyNumber       string `json:"sourceAgencyNumber,omitempty"`
	DestinationAccountNumber string `json:"destinationAccountNumber"`
	DestinationAgencyNumber  string `json:"destinationAgencyNumber,omitempty"`
	Amount                   string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string
	errs = validateDigits(errs, "sourceAccountNumber", r.SourceAccountNumber, 8, true)
	errs = validateDigits(errs, "sourceAgencyNumber", r.SourceAgencyNumber, 4, false)
	errs = validateDigits(errs, "destinationAccountNumber", r.DestinationAccountNumber, 8, true)
	errs = validateDigits(errs, "destinationAgencyNumber", r.DestinationAgencyNumber, 4, false)
	errs = validateAmount(errs, r.Amount)
	return joinErrors(errs)
}

type TransactionResponse struct {
	ID                       string `json:"id"`
	Type                     string `json:"type"`
	Amount                   string `json:"amount"`
	AccountNumber            string `json:"accountNumber"`
	AgencyNumber             string `json:"agencyNumber"`
	DestinationAccountNumber string `json:"destinationAccountNumber,omitempty"`
	DestinationAgencyNumber  string `json:"destinationAgencyNumber,omitempty"`
	Description              string `json:"description"`
	Status                   string `json:"status"`
	Balance                  string `json:"balance,omitempty"`
	CreatedAt                string `json:"createdAt"`
}

type StatementLineResponse struct {
	TransactionID string `json:"transactionId"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
	PerformedAt   string `json:"performedAt"`
}

type StatementResponse struct {
	AccountNumber string                  `json:"accountNumber"`
	AgencyNumber  string                  `json:"agencyNumber"`
	Balance       string                  `json:"balance"`
	Lines         []StatementLineResponse `json:"lines"`
	Text          string                  `json:"text"`
}
