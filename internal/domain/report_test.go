package domain

import "testing"

func TestCheckReportSubject_Changed(t *testing.T) {
	r := CheckReport{
		Domain: "example.org",
		Whois:  SignalState{Key: SignalWhoisUpdatedDate, Changed: true},
	}

	if got := r.Subject(); got != "example.org changed" {
		t.Fatalf("expected changed subject, got=%q", got)
	}
}

func TestCheckReportSubject_Same(t *testing.T) {
	r := CheckReport{Domain: "example.org"}

	if got := r.Subject(); got != "example.org same" {
		t.Fatalf("expected same subject, got=%q", got)
	}
}

func TestCheckReportBody_MixedChange(t *testing.T) {
	r := CheckReport{
		Domain: "example.org",
		Whois: SignalState{
			Key:      SignalWhoisUpdatedDate,
			Previous: "2023-12-01",
			Current:  "2024-01-02",
			Changed:  true,
		},
		HTTP: SignalState{
			Key:      SignalHTTPStatus,
			Previous: "200",
			Current:  "200",
		},
	}

	want := "Whois Updated Date changed:\n" +
		"  Previous: 2023-12-01\n" +
		"  Current:  2024-01-02\n" +
		"\n" +
		"HTTP status unchanged: 200"

	if got := r.Body(); got != want {
		t.Fatalf("expected body\n%q\ngot\n%q", want, got)
	}
}

func TestCheckReportBody_AllUnchanged(t *testing.T) {
	r := CheckReport{
		Domain: "example.org",
		Whois: SignalState{
			Key:      SignalWhoisUpdatedDate,
			Previous: "2024-01-02",
			Current:  "2024-01-02",
		},
		HTTP: SignalState{
			Key:      SignalHTTPStatus,
			Previous: "301",
			Current:  "301",
		},
	}

	want := "Whois Updated Date unchanged: 2024-01-02\n\nHTTP status unchanged: 301"
	if got := r.Body(); got != want {
		t.Fatalf("expected body %q, got=%q", want, got)
	}
}

func TestErrorNotification(t *testing.T) {
	n := ErrorNotification("example.org")

	if n.Subject != "Error: Whois Check for example.org" {
		t.Fatalf("expected error subject, got=%q", n.Subject)
	}
	if n.Body != "Could not retrieve the Updated Date from whois for example.org." {
		t.Fatalf("expected error body, got=%q", n.Body)
	}
}
