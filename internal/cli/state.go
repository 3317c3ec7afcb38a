package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avenlon/domainwatch/internal/domain"
)

func stateCmd(flags *rootFlags) *cobra.Command {
	var plain bool

	c := &cobra.Command{
		Use:   "state",
		Short: "Show the stored signal values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(flags)
			if err != nil {
				return err
			}

			store, closeStore, err := buildStateStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			th := defaultTheme()
			if plain {
				th = plainTheme()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%s backend)\n\n",
				th.Title.Render("Domain:"), cfg.Domain, cfg.State.Backend)

			keys := []domain.SignalKey{
				domain.SignalWhoisUpdatedDate,
				domain.SignalHTTPStatus,
			}
			for _, key := range keys {
				value, ok, err := store.Get(cmd.Context(), key)
				if err != nil {
					return err
				}

				label := fmt.Sprintf("%-19s", key.Label()+":")
				if !ok {
					fmt.Fprintf(out, "%s %s\n", th.Label.Render(label), th.Faint.Render("(not recorded)"))
					continue
				}
				fmt.Fprintf(out, "%s %s\n", th.Label.Render(label), value)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&plain, "plain", false, "disable styled output")
	return c
}
