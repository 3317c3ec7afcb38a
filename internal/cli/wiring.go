package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/infra/execwhois"
	"github.com/avenlon/domainwatch/internal/infra/filestate"
	"github.com/avenlon/domainwatch/internal/infra/httpclient"
	"github.com/avenlon/domainwatch/internal/infra/httpprobe"
	"github.com/avenlon/domainwatch/internal/infra/logger"
	"github.com/avenlon/domainwatch/internal/infra/rdapwhois"
	"github.com/avenlon/domainwatch/internal/infra/smtpmail"
	"github.com/avenlon/domainwatch/internal/infra/sqlitestate"
	"github.com/avenlon/domainwatch/internal/ports"
)

func buildWhoisProber(cfg domain.Config) (ports.WhoisProber, error) {
	switch cfg.Whois.Mode {
	case domain.WhoisModeRDAP:
		logger.L().Debug("whois.rdap", "timeout", cfg.Whois.Timeout)
		return rdapwhois.New(cfg.Whois.Timeout), nil
	case domain.WhoisModeExec, "":
		logger.L().Debug("whois.exec", "binary", cfg.Whois.Binary, "timeout", cfg.Whois.Timeout)
		return execwhois.New(execwhois.Config{
			Binary:  cfg.Whois.Binary,
			Timeout: cfg.Whois.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported whois mode %q", cfg.Whois.Mode)
	}
}

func buildHTTPProber(cfg domain.Config) ports.HTTPProber {
	clientCfg := httpclient.DefaultConfig()
	if cfg.HTTP.Timeout > 0 {
		clientCfg.Timeout = cfg.HTTP.Timeout
	}
	return httpprobe.New(clientCfg)
}

// buildStateStore returns the store and a close func; the file backend has
// nothing to close but callers should not care which one they got.
func buildStateStore(cfg domain.Config) (ports.StateStore, func(), error) {
	switch cfg.State.Backend {
	case domain.StateBackendSQLite:
		st, err := sqlitestate.Open(cfg.State.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.L().Debug("state.sqlite", "path", cfg.State.SQLitePath)
		return st, func() { _ = st.Close() }, nil
	default:
		st := filestate.New(cfg.State)
		paths := st.Paths()
		logger.L().Debug("state.file",
			"whois_file", paths[domain.SignalWhoisUpdatedDate],
			"status_file", paths[domain.SignalHTTPStatus],
		)
		return st, func() {}, nil
	}
}

func buildNotifier(cfg domain.Config, dryRun bool, out io.Writer) (ports.Notifier, error) {
	if dryRun {
		return &consoleNotifier{w: out}, nil
	}
	return smtpmail.New(cfg.SMTP)
}

// consoleNotifier prints the notification instead of mailing it (--dry-run).
type consoleNotifier struct {
	w io.Writer
}

var _ ports.Notifier = (*consoleNotifier)(nil)

func (c *consoleNotifier) Notify(_ context.Context, n domain.Notification) error {
	_, err := fmt.Fprintf(c.w, "Subject: %s\n\n%s\n", n.Subject, n.Body)
	return err
}
