package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/infra/config"
	"github.com/avenlon/domainwatch/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "domainwatch",
		Short:        "Watch a domain's whois record and HTTP status for changes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bare invocation runs the check, so a crontab line stays a
			// one-worder.
			return runCheck(cmd, flags, checkOptions{})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to the config file (default: nearest domainwatch.yaml, searching upward)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to stderr")

	cmd.AddCommand(
		checkCmd(flags),
		stateCmd(flags),
		configCmd(flags),
		initCmd(flags),
		versionCmd(),
	)
	return cmd
}

// loadConfig reads the config file and installs the process logger from its
// log section (with --debug forcing debug level). An explicit --config path
// is used verbatim; otherwise the file is discovered upward from the working
// directory. The returned path is the file actually loaded.
func loadConfig(flags *rootFlags) (domain.Config, string, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath
		if found, err := config.Discover("."); err == nil {
			path = found
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, path, err
	}

	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Debug:  flags.debug,
	})

	return cfg, path, nil
}
