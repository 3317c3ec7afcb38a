package execwhois

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avenlon/domainwatch/internal/domain"
)

// fakeWhois writes an executable shell script that stands in for the whois
// binary, so Lookup runs a real subprocess without touching the network.
func fakeWhois(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "whois")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func lookupWith(t *testing.T, script string) (domain.WhoisRecord, error) {
	t.Helper()

	p := New(Config{Binary: fakeWhois(t, script), Timeout: 5 * time.Second})
	return p.Lookup(context.Background(), "example.org")
}

// --- Lookup ---

func TestLookup_ExtractsUpdatedDate(t *testing.T) {
	rec, err := lookupWith(t, `cat <<'EOF'
Domain Name: EXAMPLE.ORG
Registry Domain ID: D1234567-LROR
Updated Date: 2024-01-15T09:30:00Z
Creation Date: 1995-08-14T04:00:00Z
EOF`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.UpdatedDate != "2024-01-15T09:30:00Z" {
		t.Fatalf("expected updated date, got %q", rec.UpdatedDate)
	}
	if rec.Source != "exec" {
		t.Fatalf("expected source exec, got %q", rec.Source)
	}
}

func TestLookup_FirstMatchingLineWins(t *testing.T) {
	rec, err := lookupWith(t, `cat <<'EOF'
Updated Date: 2024-01-15T09:30:00Z
Updated Date: 1999-12-31T23:59:59Z
EOF`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.UpdatedDate != "2024-01-15T09:30:00Z" {
		t.Fatalf("expected first match, got %q", rec.UpdatedDate)
	}
}

func TestLookup_MissingField(t *testing.T) {
	_, err := lookupWith(t, `cat <<'EOF'
Domain Name: EXAMPLE.ORG
Creation Date: 1995-08-14T04:00:00Z
EOF`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrUpdatedDateMissing) {
		t.Fatalf("expected ErrUpdatedDateMissing, got %v", err)
	}
	if !domain.IsKind(err, domain.KindProbe) {
		t.Fatalf("expected probe kind, got %v", err)
	}
}

func TestLookup_CommandFailureIncludesStderr(t *testing.T) {
	_, err := lookupWith(t, `echo "fgets: Connection reset by peer" >&2
exit 2`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindProbe) {
		t.Fatalf("expected probe kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "Connection reset by peer") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
}

func TestLookup_MissingBinary(t *testing.T) {
	p := New(Config{Binary: filepath.Join(t.TempDir(), "no-such-whois")})

	_, err := p.Lookup(context.Background(), "example.org")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindProbe) {
		t.Fatalf("expected probe kind, got %v", err)
	}
}

// --- extractUpdatedDate ---

func TestExtractUpdatedDate(t *testing.T) {
	tests := []struct {
		name  string
		out   string
		want  string
		found bool
	}{
		{
			name:  "plain line",
			out:   "Updated Date: 2024-01-15T09:30:00Z\n",
			want:  "2024-01-15T09:30:00Z",
			found: true,
		},
		{
			name:  "indented line",
			out:   "   Updated Date: 2024-01-15T09:30:00Z\n",
			want:  "2024-01-15T09:30:00Z",
			found: true,
		},
		{
			name: "value keeps text after later colons",
			out:  "Updated Date: 2024-01-15T09:30:00Z\n",
			// the timestamp's own colons stay in the value
			want:  "2024-01-15T09:30:00Z",
			found: true,
		},
		{
			name:  "cut happens at the line's first colon",
			out:   "Note: Updated Date: 2024-01-15\n",
			want:  "Updated Date: 2024-01-15",
			found: true,
		},
		{
			name:  "lowercase marker does not match",
			out:   "updated date: 2024-01-15\n",
			found: false,
		},
		{
			name:  "empty output",
			out:   "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractUpdatedDate([]byte(tt.out))
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
