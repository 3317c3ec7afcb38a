// Package execwhois retrieves whois records by shelling out to the system
// whois binary, the only portable way to reach every TLD's registry.
package execwhois

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/ports"
)

// updatedDateMarker is matched case-sensitively: registries that emit
// "Updated date:" or "updated-date:" format the value differently too, and a
// looser match would capture text this tool cannot compare reliably.
const updatedDateMarker = "Updated Date:"

type Config struct {
	Binary  string
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Binary:  "whois",
		Timeout: 30 * time.Second,
	}
}

type Prober struct {
	binary  string
	timeout time.Duration
}

func New(cfg Config) *Prober {
	binary := cfg.Binary
	if binary == "" {
		binary = DefaultConfig().Binary
	}
	return &Prober{
		binary:  binary,
		timeout: cfg.Timeout,
	}
}

var _ ports.WhoisProber = (*Prober)(nil)

// Lookup runs `<binary> <domain>` and extracts the registrar "Updated Date".
// A failed command or an output without the field is an error so the caller
// can take the fatal path.
func (p *Prober) Lookup(ctx context.Context, domainName string) (domain.WhoisRecord, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, p.binary, domainName)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return domain.WhoisRecord{}, &domain.OpError{
			Op:   "whois.exec",
			Kind: domain.KindProbe,
			Err:  fmt.Errorf("%s %s: %w%s", p.binary, domainName, err, stderrSuffix(stderr.Bytes())),
		}
	}

	value, ok := extractUpdatedDate(stdout.Bytes())
	if !ok {
		return domain.WhoisRecord{}, &domain.OpError{
			Op:   "whois.exec",
			Kind: domain.KindProbe,
			Err:  domain.ErrUpdatedDateMissing,
		}
	}

	return domain.WhoisRecord{
		UpdatedDate: value,
		Source:      "exec",
	}, nil
}

// extractUpdatedDate scans output line by line for the first line containing
// the marker and returns the text after that line's first colon, trimmed.
func extractUpdatedDate(out []byte) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, updatedDateMarker) {
			continue
		}
		_, after, _ := strings.Cut(line, ":")
		return strings.TrimSpace(after), true
	}
	return "", false
}

func stderrSuffix(b []byte) string {
	msg := strings.TrimSpace(string(b))
	if msg == "" {
		return ""
	}
	return ": " + msg
}
