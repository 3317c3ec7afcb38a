package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avenlon/domainwatch/internal/domain"
)

const maskValue = "********"

func configCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	c.AddCommand(configShowCmd(flags))
	return c
}

func configShowCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (secrets masked)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := loadConfig(flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config: %s\n\n", path)
			fmt.Fprintf(out, "domain: %s\n", cfg.Domain)
			fmt.Fprintf(out, "whois:  mode=%s binary=%s timeout=%s\n", cfg.Whois.Mode, cfg.Whois.Binary, cfg.Whois.Timeout)
			fmt.Fprintf(out, "http:   timeout=%s\n", cfg.HTTP.Timeout)

			switch cfg.State.Backend {
			case domain.StateBackendSQLite:
				fmt.Fprintf(out, "state:  backend=%s path=%s\n", cfg.State.Backend, cfg.State.SQLitePath)
			default:
				fmt.Fprintf(out, "state:  backend=%s dir=%s whois_file=%s status_file=%s\n",
					cfg.State.Backend, cfg.State.Dir, cfg.State.WhoisFile, cfg.State.StatusFile)
			}

			password := ""
			if cfg.SMTP.Password != "" {
				password = maskValue
			}
			fmt.Fprintf(out, "smtp:   host=%s port=%d username=%s password=%s from=%s to=%s timeout=%s\n",
				cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, password, cfg.SMTP.From, cfg.SMTP.To, cfg.SMTP.Timeout)
			fmt.Fprintf(out, "log:    level=%s format=%s\n", cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
	return c
}
