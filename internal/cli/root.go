package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/schemalens/schemalens/internal/platform"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	RegistryPath string
	Draft        string
	YAML         bool
	JSONOutput   bool
	LogLevel     string
	LogFormat    string
}

func newRootCmd() *cobra.Command {
	opts := &RootOptions{
		RegistryPath: envDefault("SCHEMALENS_REGISTRY", defaultRegistryPath()),
		LogLevel:     envDefault("SCHEMALENS_LOG_LEVEL", "info"),
		LogFormat:    envDefault("SCHEMALENS_LOG_FORMAT", "text"),
	}
	cmd := &cobra.Command{
		Use:           "schemalens",
		Short:         "SchemaLens CLI",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logOpts := platform.LogOptions{Level: opts.LogLevel, Format: opts.LogFormat}
			_, err := platform.ConfigureLogger(logOpts, cmd.ErrOrStderr())
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.RegistryPath, "registry", opts.RegistryPath, "Path to the schema registry database")
	cmd.PersistentFlags().StringVar(&opts.Draft, "draft", "auto", "JSON Schema draft (auto, draft4, draft6, draft7, draft2019-09, draft2020-12)")
	cmd.PersistentFlags().BoolVar(&opts.YAML, "yaml", false, "Treat input documents as YAML")
	cmd.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "Emit JSON output")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format (text, json)")

	cmd.AddCommand(
		newCheckCmd(opts),
		newValidateCmd(opts),
		newDraftCmd(opts),
		newSchemaCmd(opts),
	)

	return cmd
}

func defaultRegistryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".schemalens", "registry.db")
	}
	return filepath.Join(home, ".schemalens", "registry.db")
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
