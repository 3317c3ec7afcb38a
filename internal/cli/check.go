package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/infra/config"
	"github.com/avenlon/domainwatch/internal/infra/logger"
	"github.com/avenlon/domainwatch/internal/usecase"
)

type checkOptions struct {
	dryRun bool
	format string
	plain  bool
}

func checkCmd(flags *rootFlags) *cobra.Command {
	var opts checkOptions

	c := &cobra.Command{
		Use:   "check",
		Short: "Run one check of the configured domain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, flags, opts)
		},
	}

	c.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the notification instead of emailing it")
	c.Flags().StringVar(&opts.format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&opts.plain, "plain", false, "disable styled output")
	return c
}

func runCheck(cmd *cobra.Command, flags *rootFlags, opts checkOptions) error {
	cfg, _, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if err := config.ValidateForCheck(cfg, !opts.dryRun); err != nil {
		return err
	}

	whoisProber, err := buildWhoisProber(cfg)
	if err != nil {
		return err
	}
	httpProber := buildHTTPProber(cfg)

	store, closeStore, err := buildStateStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	notifier, err := buildNotifier(cfg, opts.dryRun, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	uc := usecase.NewCheckDomain(whoisProber, httpProber, store, notifier,
		usecase.WithLogger(logger.L()))

	logger.L().Info("check.start",
		"domain", cfg.Domain,
		"whois_mode", cfg.Whois.Mode,
		"state_backend", cfg.State.Backend,
		"dry_run", opts.dryRun,
	)

	report, err := uc.Execute(cmd.Context(), cfg.Domain)
	if err != nil {
		logger.L().Error("check.failed", "domain", cfg.Domain, "error", err)
		return err
	}

	if report.NotifyError != "" {
		logger.L().Warn("notify.failed", "domain", cfg.Domain, "error", report.NotifyError)
	}
	logger.L().Info("check.completed",
		"domain", cfg.Domain,
		"changed", report.Changed(),
		"notified", report.Notified,
	)

	return printReport(cmd.OutOrStdout(), report, opts.format, opts.plain)
}

func printReport(w io.Writer, report domain.CheckReport, format string, plain bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "pretty", "":
		th := defaultTheme()
		if plain {
			th = plainTheme()
		}
		printPrettyReport(w, report, th)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, r domain.CheckReport, th theme) {
	total := r.FinishedAt.Sub(r.StartedAt)
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "%s %s\n", th.Title.Render("Domain:"), r.Domain)
	fmt.Fprintf(w, "%s %s\n", th.Label.Render("Started: "), r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "%s %s\n", th.Label.Render("Duration:"), total)
	fmt.Fprintln(w)

	printSignalLine(w, r.Whois, th)
	printSignalLine(w, r.HTTP, th)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s\n", th.Label.Render("Subject: "), r.Subject())
	if r.NotifyError != "" {
		fmt.Fprintf(w, "%s %s\n", th.Label.Render("Notify:  "), th.Changed.Render("failed: "+r.NotifyError))
	} else if r.Notified {
		fmt.Fprintf(w, "%s sent\n", th.Label.Render("Notify:  "))
	}
}

func printSignalLine(w io.Writer, s domain.SignalState, th theme) {
	switch {
	case s.FirstRun:
		fmt.Fprintf(w, "- [%s] %s: %s\n", th.Init.Render("INIT"), s.Key.Label(), s.Current)
	case s.Changed:
		fmt.Fprintf(w, "- [%s] %s\n", th.Changed.Render("CHANGED"), s.Key.Label())
		fmt.Fprintf(w, "    Previous: %s\n", s.Previous)
		fmt.Fprintf(w, "    Current:  %s\n", s.Current)
	default:
		fmt.Fprintf(w, "- [%s] %s: %s\n", th.Same.Render("SAME"), s.Key.Label(), s.Current)
	}
}
