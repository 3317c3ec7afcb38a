package domain

import (
	"regexp"
	"strings"
)

// Transient object addresses leak into stringified transport errors
// ("... object at 0x7f9c2c0d3e80 ..."). They differ on every run and must
// not count as a signal change.
var addressPattern = regexp.MustCompile(` at 0x[0-9a-fA-F]+`)

// NormalizeHTTPSignal strips run-dependent noise from an HTTP status signal:
// every ` at 0x<hex>` fragment is removed and outer whitespace trimmed.
// The function is idempotent.
func NormalizeHTTPSignal(s string) string {
	return strings.TrimSpace(addressPattern.ReplaceAllString(s, ""))
}
