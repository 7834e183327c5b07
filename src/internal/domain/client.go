package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Client struct {
	name        string
	cpf         CPF
	dateOfBirth DateOfBirth
	address     Address
	pinHash     string
	accounts    []*Account
}

func NewClient(name string, cpf CPF, dateOfBirth DateOfBirth, address Address) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidClient)
	}
	if cpf.IsZero() {
		return nil, fmt.Errorf("cpf is required: %w", ErrInvalidClient)
	}

	return &Client{
		name:        name,
		cpf:         cpf,
		dateOfBirth: dateOfBirth,
		address:     address,
	}, nil
}

func (c *Client) Name() string             { return c.name }
func (c *Client) CPF() CPF                 { return c.cpf }
func (c *Client) DateOfBirth() DateOfBirth { return c.dateOfBirth }
func (c *Client) Address() Address         { return c.address }

func (c *Client) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Client) Equal(other *Client) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.cpf.Equal(other.cpf)
}

func (c *Client) SetPin(pin string) error {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return fmt.Errorf("pin is required: %w", ErrInvalidPin)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash client pin: %w", err)
	}

	c.pinHash = string(hashed)
	return nil
}

func (c *Client) HasPin() bool {
	return c.pinHash != ""
}

// VerifyPin reports ErrInvalidPin on mismatch. Clients without a PIN never verify.
func (c *Client) VerifyPin(pin string) error {
	if !c.HasPin() {
		return ErrInvalidPin
	}

	err := bcrypt.CompareHashAndPassword([]byte(c.pinHash), []byte(strings.TrimSpace(pin)))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPin
	}
	return fmt.Errorf("verify client pin: %w", err)
}

// Describe renders the client card followed by every owned account.
func (c *Client) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Client: %s (CPF: %s)\n", c.name, c.cpf)
	fmt.Fprintf(&b, "Date of birth: %s\n", c.dateOfBirth)
	fmt.Fprintf(&b, "Address: %s\n", c.address)
	for _, account := range c.accounts {
		b.WriteString("\n")
		b.WriteString(account.Describe())
	}
	return b.String()
}

func (c *Client) addAccount(account *Account) {
	c.accounts = append(c.accounts, account)
}
