package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avenlon/domainwatch/internal/infra/config"
)

func initCmd(flags *rootFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// No upward discovery here: init writes where it is told, never
			// at a config found in a parent directory.
			path := flags.configPath
			if path == "" {
				path = config.DefaultPath
			}

			if err := config.WriteDefault(path, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", path)
			fmt.Fprintln(out, "Edit the domain and smtp sections, then run `domainwatch check`.")
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return c
}
