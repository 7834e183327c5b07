package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// policyFile mirrors the YAML layout of a ledger policy file:
//
//	kind: checking
//	withdrawalLimit: "500.00"
//	maxWithdrawals: 3
//	withdrawalCountReset: lifetime
//	dailyTransactionLimit: 10
type policyFile struct {
	Kind                  string `yaml:"kind"`
	WithdrawalLimit       string `yaml:"withdrawalLimit"`
	MaxWithdrawals        *int   `yaml:"maxWithdrawals"`
	WithdrawalCountReset  string `yaml:"withdrawalCountReset"`
	DailyTransactionLimit *int   `yaml:"dailyTransactionLimit"`
}

// LoadPolicyFile overlays the values present in the YAML file at path onto base.
func LoadPolicyFile(path string, base domain.LedgerPolicy) (domain.LedgerPolicy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read ledger policy file %q: %w", path, err)
	}

	var file policyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return base, fmt.Errorf("parse ledger policy file %q: %w", path, err)
	}

	policy := base
	if kind := strings.TrimSpace(file.Kind); kind != "" {
		policy.Kind = kind
	}
	if limit := strings.TrimSpace(file.WithdrawalLimit); limit != "" {
		parsed, err := decimal.NewFromString(limit)
		if err != nil {
			return base, fmt.Errorf("ledger policy withdrawalLimit: %w", err)
		}
		policy.WithdrawalLimit = parsed
	}
	if file.MaxWithdrawals != nil {
		policy.MaxWithdrawals = *file.MaxWithdrawals
	}
	if reset := strings.TrimSpace(file.WithdrawalCountReset); reset != "" {
		parsed, err := domain.ParseWithdrawalReset(reset)
		if err != nil {
			return base, fmt.Errorf("ledger policy withdrawalCountReset: %w", err)
		}
		policy.WithdrawalReset = parsed
	}
	if file.DailyTransactionLimit != nil {
		policy.DailyTransactionLimit = *file.DailyTransactionLimit
	}

	return policy, nil
}
