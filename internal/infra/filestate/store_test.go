package filestate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avenlon/domainwatch/internal/domain"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	s := New(domain.StateConfig{
		Dir:        dir,
		WhoisFile:  "whois_record.txt",
		StatusFile: "curl_status.txt",
	})
	return s, dir
}

func TestGet_MissingFileMeansNeverRecorded(t *testing.T) {
	s, _ := newStore(t)

	value, ok, err := s.Get(context.Background(), domain.SignalWhoisUpdatedDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected absent value")
	}
	if value != "" {
		t.Fatalf("expected empty value, got %q", value)
	}
}

func TestSetGet_Roundtrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, domain.SignalWhoisUpdatedDate, "2024-01-15T09:30:00Z"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := s.Get(ctx, domain.SignalWhoisUpdatedDate)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected recorded value")
	}
	if value != "2024-01-15T09:30:00Z" {
		t.Fatalf("expected stored value, got %q", value)
	}
}

func TestGet_TrimsTrailingNewline(t *testing.T) {
	s, dir := newStore(t)

	// A file written by hand or an older tool may carry extra whitespace.
	path := filepath.Join(dir, "curl_status.txt")
	if err := os.WriteFile(path, []byte("  200\n\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	value, ok, err := s.Get(context.Background(), domain.SignalHTTPStatus)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected recorded value")
	}
	if value != "200" {
		t.Fatalf("expected trimmed value, got %q", value)
	}
}

func TestSet_KeysWriteSeparateFiles(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, domain.SignalWhoisUpdatedDate, "2024-01-15"); err != nil {
		t.Fatalf("set whois: %v", err)
	}
	if err := s.Set(ctx, domain.SignalHTTPStatus, "200"); err != nil {
		t.Fatalf("set status: %v", err)
	}

	whois, err := os.ReadFile(filepath.Join(dir, "whois_record.txt"))
	if err != nil {
		t.Fatalf("read whois file: %v", err)
	}
	if string(whois) != "2024-01-15\n" {
		t.Fatalf("unexpected whois file content %q", whois)
	}

	status, err := os.ReadFile(filepath.Join(dir, "curl_status.txt"))
	if err != nil {
		t.Fatalf("read status file: %v", err)
	}
	if string(status) != "200\n" {
		t.Fatalf("unexpected status file content %q", status)
	}
}

func TestSet_LeavesNoTempFile(t *testing.T) {
	s, dir := newStore(t)

	if err := s.Set(context.Background(), domain.SignalHTTPStatus, "200"); err != nil {
		t.Fatalf("set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSet_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := New(domain.StateConfig{Dir: dir, WhoisFile: "w.txt", StatusFile: "s.txt"})

	if err := s.Set(context.Background(), domain.SignalWhoisUpdatedDate, "x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "w.txt")); err != nil {
		t.Fatalf("expected state file created: %v", err)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	s, _ := newStore(t)

	_, _, err := s.Get(context.Background(), domain.SignalKey("uptime"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindState) {
		t.Fatalf("expected state kind, got %v", err)
	}
}

func TestNew_EmptyConfigFallsBackToDefaults(t *testing.T) {
	s := New(domain.StateConfig{})

	paths := s.Paths()
	if got := paths[domain.SignalWhoisUpdatedDate]; got != "whois_record.txt" {
		t.Fatalf("expected default whois path, got %q", got)
	}
	if got := paths[domain.SignalHTTPStatus]; got != "curl_status.txt" {
		t.Fatalf("expected default status path, got %q", got)
	}
}
