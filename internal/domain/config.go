package domain

import "time"

// Whois lookup backends.
const (
	WhoisModeExec = "exec"
	WhoisModeRDAP = "rdap"
)

// State store backends.
const (
	StateBackendFile   = "file"
	StateBackendSQLite = "sqlite"
)

// Config represents the domainwatch configuration loaded from domainwatch.yaml.
type Config struct {
	// Domain is the monitored domain name, e.g. "example.org".
	Domain string

	Whois WhoisConfig
	HTTP  HTTPConfig
	State StateConfig
	SMTP  SMTPConfig
	Log   LogConfig
}

type WhoisConfig struct {
	Mode    string // "exec" or "rdap"
	Binary  string // lookup binary for exec mode
	Timeout time.Duration
}

type HTTPConfig struct {
	Timeout time.Duration
}

type StateConfig struct {
	Backend    string // "file" or "sqlite"
	Dir        string
	WhoisFile  string
	StatusFile string
	SQLitePath string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
	Timeout  time.Duration
}

type LogConfig struct {
	Level  string // "info" or "debug"
	Format string // "text" or "json"
}

// DefaultConfig provides sane defaults if domainwatch.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Whois: WhoisConfig{
			Mode:    WhoisModeExec,
			Binary:  "whois",
			Timeout: 30 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout: 10 * time.Second,
		},
		State: StateConfig{
			Backend:    StateBackendFile,
			Dir:        ".",
			WhoisFile:  "whois_record.txt",
			StatusFile: "curl_status.txt",
			SQLitePath: "domainwatch.db",
		},
		SMTP: SMTPConfig{
			Port:    465,
			Timeout: 15 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
