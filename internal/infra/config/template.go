package config

import (
	"fmt"
	"os"

	"github.com/avenlon/domainwatch/internal/domain"
)

// defaultTemplate is the scaffold written by `domainwatch init`. Defaults
// here must match domain.DefaultConfig.
const defaultTemplate = `# domainwatch.yaml

# Domain to monitor.
domain: example.org

# Registry lookup: exec shells out to the whois binary, rdap queries the
# registry's RDAP service instead.
whois:
  mode: exec
  binary: whois
  timeout: 30s

http:
  timeout: 10s

# Last observed values. The file backend keeps one text file per signal.
state:
  backend: file
  dir: .
  whois_file: whois_record.txt
  status_file: curl_status.txt
  sqlite_path: domainwatch.db

# Notification delivery. Port 465 uses implicit TLS; most providers accept
# an app password here. Values may reference environment variables, so the
# secret can stay out of this file:
#   password: "${SMTP_APP_PASSWORD}"
smtp:
  host: smtp.example.org
  port: 465
  username: monitor@example.org
  password: ""
  from: monitor@example.org
  to: you@example.org
  timeout: 15s

log:
  level: info
  format: text
`

// WriteDefault scaffolds a commented config file at path. An existing file
// is only overwritten with force. Mode 0600: the file holds SMTP credentials.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return &domain.OpError{
				Op:   "config.init",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("config file already exists (use --force to overwrite)"),
			}
		}
	}

	if err := os.WriteFile(path, []byte(defaultTemplate), 0o600); err != nil {
		return &domain.OpError{
			Op:   "config.init",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return nil
}
