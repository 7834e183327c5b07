package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

const defaultHTTPAddr = ":8080"
const defaultChannelID = "BranchApp"
const defaultChannelKey = "BranchKey001"
const defaultAgencyNumber = "0001"
const defaultAuditLogPath = "transactions_log.jsonl"
const defaultLogLevel = "info"

type Config struct {
	HTTPAddr        string
	DatabaseDSN     string
	MigrationsDir   string
	ChannelID       string
	ChannelKey      string
	AgencyNumber    domain.AgencyNumber
	AuditLogPath    string
	ProcessingDelay time.Duration
	LogLevel        string
	Policy          domain.LedgerPolicy
}

// Load reads the configuration from the environment. When LEDGER_POLICY_FILE
// is set, the file provides the policy and the policy env vars override it.
func Load() (Config, error) {
	agency, err := domain.ParseAgencyNumber(envOrDefault("AGENCY_NUMBER", defaultAgencyNumber))
	if err != nil {
		return Config{}, fmt.Errorf("AGENCY_NUMBER: %w", err)
	}

	delay := time.Duration(0)
	if raw := strings.TrimSpace(os.Getenv("PROCESSING_DELAY")); raw != "" {
		delay, err = time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("PROCESSING_DELAY: %w", err)
		}
	}

	policy := domain.DefaultLedgerPolicy()
	if path := strings.TrimSpace(os.Getenv("LEDGER_POLICY_FILE")); path != "" {
		policy, err = LoadPolicyFile(path, policy)
		if err != nil {
			return Config{}, err
		}
	}
	policy, err = applyPolicyEnv(policy)
	if err != nil {
		return Config{}, err
	}
	if err := policy.Validate(); err != nil {
		return Config{}, err
	}

	dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if dsn != "" {
		dsn = normalizeConnectionString(dsn)
	}

	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", defaultHTTPAddr),
		DatabaseDSN:     dsn,
		MigrationsDir:   envOrDefault("MIGRATIONS_DIR", filepath.Join("src", "migrations")),
		ChannelID:       envOrDefault("CHANNEL_ID", defaultChannelID),
		ChannelKey:      envOrDefault("CHANNEL_KEY", defaultChannelKey),
		AgencyNumber:    agency,
		AuditLogPath:    envOrDefault("AUDIT_LOG_PATH", defaultAuditLogPath),
		ProcessingDelay: delay,
		LogLevel:        envOrDefault("LOG_LEVEL", defaultLogLevel),
		Policy:          policy,
	}, nil
}

func applyPolicyEnv(policy domain.LedgerPolicy) (domain.LedgerPolicy, error) {
	if raw := strings.TrimSpace(os.Getenv("WITHDRAWAL_LIMIT")); raw != "" {
		limit, err := decimal.NewFromString(raw)
		if err != nil {
			return policy, fmt.Errorf("WITHDRAWAL_LIMIT: %w", err)
		}
		policy.WithdrawalLimit = limit
	}

	if raw := strings.TrimSpace(os.Getenv("MAX_WITHDRAWALS")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return policy, fmt.Errorf("MAX_WITHDRAWALS: %w", err)
		}
		policy.MaxWithdrawals = n
	}

	if raw := strings.TrimSpace(os.Getenv("WITHDRAWAL_COUNT_RESET")); raw != "" {
		reset, err := domain.ParseWithdrawalReset(raw)
		if err != nil {
			return policy, fmt.Errorf("WITHDRAWAL_COUNT_RESET: %w", err)
		}
		policy.WithdrawalReset = reset
	}

	if raw := strings.TrimSpace(os.Getenv("DAILY_TRANSACTION_LIMIT")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return policy, fmt.Errorf("DAILY_TRANSACTION_LIMIT: %w", err)
		}
		policy.DailyTransactionLimit = n
	}

	return policy, nil
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func normalizeConnectionString(raw string) string {
	// URL and key=value DSNs are already understood by lib/pq.
	if strings.Contains(raw, "://") || !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
