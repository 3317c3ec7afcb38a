package rdapwhois

import (
	"testing"
	"time"

	"github.com/openrdap/rdap"
)

func TestLastChanged_PicksMatchingEvent(t *testing.T) {
	events := []rdap.Event{
		{Action: "registration", Date: "1995-08-14T04:00:00Z"},
		{Action: "last changed", Date: "2024-01-15T09:30:00Z"},
		{Action: "expiration", Date: "2026-08-13T04:00:00Z"},
	}

	date, ok := lastChanged(events)
	if !ok {
		t.Fatal("expected a match")
	}
	if date != "2024-01-15T09:30:00Z" {
		t.Fatalf("expected last changed date, got %q", date)
	}
}

func TestLastChanged_FirstMatchWins(t *testing.T) {
	events := []rdap.Event{
		{Action: "last changed", Date: "2024-01-15T09:30:00Z"},
		{Action: "last changed", Date: "2020-01-01T00:00:00Z"},
	}

	date, ok := lastChanged(events)
	if !ok {
		t.Fatal("expected a match")
	}
	if date != "2024-01-15T09:30:00Z" {
		t.Fatalf("expected first event date, got %q", date)
	}
}

func TestLastChanged_NoMatchingEvent(t *testing.T) {
	events := []rdap.Event{
		{Action: "registration", Date: "1995-08-14T04:00:00Z"},
	}

	if _, ok := lastChanged(events); ok {
		t.Fatal("expected no match")
	}
}

func TestLastChanged_EmptyEvents(t *testing.T) {
	if _, ok := lastChanged(nil); ok {
		t.Fatal("expected no match")
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	custom := &rdap.Client{}

	p := New(20*time.Second, WithClient(custom))
	if p.client != custom {
		t.Fatal("expected injected client")
	}
	if p.timeout != 20*time.Second {
		t.Fatalf("expected 20s timeout, got %s", p.timeout)
	}
}
