package logger

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Fields map[string]any

var sensitiveKeys = map[string]struct{}{
	"pin":        {},
	"pinhash":    {},
	"pin_hash":   {},
	"password":   {},
	"channelkey": {},
}

var cpfKeys = map[string]struct{}{
	"cpf":       {},
	"clientcpf": {},
}

var base = newBase(os.Stdout)

func newBase(out io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.JSONFormatter{})
	l.SetLevel(log.InfoLevel)
	return l
}

// Configure sets the minimum level ("debug", "info", "warn", "error"). Unknown
// levels keep the current one.
func Configure(level string) {
	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return
	}
	base.SetLevel(parsed)
}

// SetOutput redirects log lines, mostly for tests.
func SetOutput(out io.Writer) {
	base.SetOutput(out)
}

func Info(message string, fields Fields) {
	entry(fields).Info(message)
}

func Warn(message string, fields Fields) {
	entry(fields).Warn(message)
}

func Error(message string, err error, fields Fields) {
	e := entry(fields)
	if err != nil {
		e = e.WithField("error", err.Error())
	}
	e.Error(message)
}

func entry(fields Fields) *log.Entry {
	sanitized, ok := SanitizePayload(fields).(map[string]any)
	if !ok {
		return log.NewEntry(base)
	}
	return base.WithFields(log.Fields(sanitized))
}

func SanitizePayload(payload any) any {
	if payload == nil {
		return map[string]any{}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			switch {
			case isKey(sensitiveKeys, key):
				out[key] = "******"
			case isKey(cpfKeys, key):
				out[key] = maskCPF(inner)
			default:
				out[key] = sanitizeValue(inner)
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

// maskCPF keeps the first three and the last two digits.
func maskCPF(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	digits := make([]rune, 0, len(s))
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			digits = append(digits, ch)
		}
	}
	if len(digits) < 5 {
		return "***"
	}

	return string(digits[:3]) + ".***.***-" + string(digits[len(digits)-2:])
}

func isKey(keys map[string]struct{}, key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := keys[normalized]
	return ok
}
