package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/avenlon/domainwatch/internal/domain"
)

// Map applies the parsed values on top of DefaultConfig. Empty DTO fields
// keep their defaults, so a minimal file with just `domain:` works.
func Map(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	cfg.Domain = strings.TrimSpace(y.Domain)

	if m := strings.TrimSpace(y.Whois.Mode); m != "" {
		switch m {
		case domain.WhoisModeExec, domain.WhoisModeRDAP:
			cfg.Whois.Mode = m
		default:
			return cfg, invalidField(path, "whois.mode", fmt.Sprintf("unsupported mode %q", m))
		}
	}
	if b := strings.TrimSpace(y.Whois.Binary); b != "" {
		cfg.Whois.Binary = b
	}
	if err := applyTimeout(path, "whois.timeout", y.Whois.Timeout, &cfg.Whois.Timeout); err != nil {
		return cfg, err
	}

	if err := applyTimeout(path, "http.timeout", y.HTTP.Timeout, &cfg.HTTP.Timeout); err != nil {
		return cfg, err
	}

	if b := strings.TrimSpace(y.State.Backend); b != "" {
		switch b {
		case domain.StateBackendFile, domain.StateBackendSQLite:
			cfg.State.Backend = b
		default:
			return cfg, invalidField(path, "state.backend", fmt.Sprintf("unsupported backend %q", b))
		}
	}
	if d := strings.TrimSpace(y.State.Dir); d != "" {
		cfg.State.Dir = d
	}
	if f := strings.TrimSpace(y.State.WhoisFile); f != "" {
		cfg.State.WhoisFile = f
	}
	if f := strings.TrimSpace(y.State.StatusFile); f != "" {
		cfg.State.StatusFile = f
	}
	if p := strings.TrimSpace(y.State.SQLitePath); p != "" {
		cfg.State.SQLitePath = p
	}

	cfg.SMTP.Host = strings.TrimSpace(y.SMTP.Host)
	if y.SMTP.Port != nil {
		if *y.SMTP.Port <= 0 || *y.SMTP.Port > 65535 {
			return cfg, invalidField(path, "smtp.port", fmt.Sprintf("port %d out of range", *y.SMTP.Port))
		}
		cfg.SMTP.Port = *y.SMTP.Port
	}
	cfg.SMTP.Username = y.SMTP.Username
	cfg.SMTP.Password = y.SMTP.Password
	cfg.SMTP.From = strings.TrimSpace(y.SMTP.From)
	cfg.SMTP.To = strings.TrimSpace(y.SMTP.To)
	if err := applyTimeout(path, "smtp.timeout", y.SMTP.Timeout, &cfg.SMTP.Timeout); err != nil {
		return cfg, err
	}

	if l := strings.TrimSpace(y.Log.Level); l != "" {
		cfg.Log.Level = l
	}
	if f := strings.TrimSpace(y.Log.Format); f != "" {
		cfg.Log.Format = f
	}

	return cfg, nil
}

// ValidateForCheck verifies everything a real check needs. SMTP settings are
// only required when delivery is on; a dry run works without them.
func ValidateForCheck(cfg domain.Config, requireSMTP bool) error {
	if cfg.Domain == "" {
		return invalidField("", "domain", "domain is required")
	}

	if !requireSMTP {
		return nil
	}

	if cfg.SMTP.Host == "" {
		return invalidField("", "smtp.host", "smtp host is required")
	}
	if cfg.SMTP.From == "" {
		return invalidField("", "smtp.from", "sender address is required")
	}
	if cfg.SMTP.To == "" {
		return invalidField("", "smtp.to", "recipient address is required")
	}
	if cfg.SMTP.Username == "" {
		return invalidField("", "smtp.username", "smtp username is required")
	}
	if cfg.SMTP.Password == "" {
		return invalidField("", "smtp.password", "smtp password is required")
	}

	return nil
}

func applyTimeout(path, field, raw string, dst *time.Duration) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return invalidField(path, field, err.Error())
	}
	if d <= 0 {
		return invalidField(path, field, fmt.Sprintf("timeout must be positive, got %s", d))
	}

	*dst = d
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
