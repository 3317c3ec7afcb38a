package domain

import (
	"fmt"
	"strings"
	"time"
)

// Notification is a rendered message ready for delivery.
type Notification struct {
	Subject string
	Body    string
}

// CheckReport represents the result of one full check of a domain.
type CheckReport struct {
	Domain string

	Whois SignalState
	HTTP  SignalState

	StartedAt  time.Time
	FinishedAt time.Time

	// Notified records whether delivery succeeded; NotifyError carries the
	// delivery failure, which never fails the check itself.
	Notified    bool
	NotifyError string
}

// Changed reports whether any monitored signal differs from its stored value.
func (r CheckReport) Changed() bool {
	return r.Whois.Changed || r.HTTP.Changed
}

// Subject is the notification subject line. The wording is stable: downstream
// mail filters key on it.
func (r CheckReport) Subject() string {
	if r.Changed() {
		return r.Domain + " changed"
	}
	return r.Domain + " same"
}

// Body renders the per-signal paragraphs, whois first, joined by a blank line.
func (r CheckReport) Body() string {
	paragraphs := []string{
		signalParagraph(r.Whois),
		signalParagraph(r.HTTP),
	}
	return strings.Join(paragraphs, "\n\n")
}

// Notification bundles Subject and Body for delivery.
func (r CheckReport) Notification() Notification {
	return Notification{
		Subject: r.Subject(),
		Body:    r.Body(),
	}
}

func signalParagraph(s SignalState) string {
	if s.Changed {
		return fmt.Sprintf("%s changed:\n  Previous: %s\n  Current:  %s",
			s.Key.Label(), s.Previous, s.Current)
	}
	return fmt.Sprintf("%s unchanged: %s", s.Key.Label(), s.Current)
}

// ErrorNotification is the message sent when the registry lookup yields no
// usable Updated Date. The check stops there, so this is the only content.
func ErrorNotification(domainName string) Notification {
	return Notification{
		Subject: fmt.Sprintf("Error: Whois Check for %s", domainName),
		Body:    fmt.Sprintf("Could not retrieve the Updated Date from whois for %s.", domainName),
	}
}
