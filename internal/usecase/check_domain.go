package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/ports"
)

// CheckDomain runs one full check of a domain: probe whois and HTTP, compare
// both signals against the stored state, notify, then persist the new state.
type CheckDomain struct {
	whois    ports.WhoisProber
	http     ports.HTTPProber
	store    ports.StateStore
	notifier ports.Notifier

	now func() time.Time
	log *slog.Logger
}

type CheckDomainOption func(*CheckDomain)

// WithNow overrides the clock (tests).
func WithNow(now func() time.Time) CheckDomainOption {
	return func(uc *CheckDomain) {
		uc.now = now
	}
}

// WithLogger attaches a logger for step-level tracing. Without it the
// usecase stays silent.
func WithLogger(log *slog.Logger) CheckDomainOption {
	return func(uc *CheckDomain) {
		if log != nil {
			uc.log = log
		}
	}
}

func NewCheckDomain(wp ports.WhoisProber, hp ports.HTTPProber, st ports.StateStore, n ports.Notifier, opts ...CheckDomainOption) *CheckDomain {
	uc := &CheckDomain{
		whois:    wp,
		http:     hp,
		store:    st,
		notifier: n,
		now:      time.Now,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute performs the check. A failed whois lookup aborts the run after the
// error notification: without an Updated Date there is nothing to compare,
// and a partial state write would mask the next real change. Every other
// step completes even when notification delivery fails.
func (uc *CheckDomain) Execute(ctx context.Context, domainName string) (domain.CheckReport, error) {
	report := domain.CheckReport{
		Domain:    domainName,
		StartedAt: uc.now(),
	}

	uc.log.Debug("whois.lookup", "domain", domainName)
	rec, err := uc.whois.Lookup(ctx, domainName)
	if err != nil {
		uc.log.Debug("whois.failed", "domain", domainName, "error", err)
		if nerr := uc.notifier.Notify(ctx, domain.ErrorNotification(domainName)); nerr != nil {
			report.NotifyError = nerr.Error()
			uc.log.Debug("notify.failed", "domain", domainName, "error", nerr)
		} else {
			report.Notified = true
		}
		report.FinishedAt = uc.now()
		return report, err
	}
	uc.log.Debug("whois.ok", "domain", domainName, "source", rec.Source, "updated_date", rec.UpdatedDate)

	httpRes := uc.http.Probe(ctx, domainName)
	if httpRes.Err != nil {
		uc.log.Debug("http.failed", "domain", domainName, "kind", httpRes.Err.Kind, "signal", httpRes.Signal())
	} else {
		uc.log.Debug("http.ok", "domain", domainName, "status", httpRes.StatusCode)
	}

	prevWhois, okWhois, err := uc.store.Get(ctx, domain.SignalWhoisUpdatedDate)
	if err != nil {
		report.FinishedAt = uc.now()
		return report, err
	}
	prevHTTP, okHTTP, err := uc.store.Get(ctx, domain.SignalHTTPStatus)
	if err != nil {
		report.FinishedAt = uc.now()
		return report, err
	}

	report.Whois = domain.EvaluateSignal(domain.SignalWhoisUpdatedDate, prevWhois, okWhois, rec.UpdatedDate)
	report.HTTP = domain.EvaluateSignal(domain.SignalHTTPStatus, prevHTTP, okHTTP, httpRes.Signal())
	uc.log.Debug("signals.evaluated",
		"domain", domainName,
		"whois_changed", report.Whois.Changed,
		"http_changed", report.HTTP.Changed,
		"first_run", report.Whois.FirstRun || report.HTTP.FirstRun,
	)

	// Notify before persisting: if delivery fails the stored state still
	// advances, so the next run does not re-report the same change.
	if nerr := uc.notifier.Notify(ctx, report.Notification()); nerr != nil {
		report.NotifyError = nerr.Error()
		uc.log.Debug("notify.failed", "domain", domainName, "error", nerr)
	} else {
		report.Notified = true
		uc.log.Debug("notify.sent", "domain", domainName, "subject", report.Subject())
	}

	if err := uc.store.Set(ctx, domain.SignalWhoisUpdatedDate, report.Whois.Current); err != nil {
		report.FinishedAt = uc.now()
		return report, err
	}
	if err := uc.store.Set(ctx, domain.SignalHTTPStatus, report.HTTP.Current); err != nil {
		report.FinishedAt = uc.now()
		return report, err
	}
	uc.log.Debug("state.saved", "domain", domainName)

	report.FinishedAt = uc.now()
	return report, nil
}
