package cmd

import (
	"fmt"

	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the shipping command. Flags override environment
// variables, which override the defaults.
func NewRootCommand() *cobra.Command {
	v := NewViper()

	var (
		output      string
		metricsFile string
	)

	command := &cobra.Command{
		Use:   "shipping",
		Short: "Assemble a demo manifest of shipping containers",
		Long: `shipping puts a dry, a refrigerated and a heated refrigerated container
into service, loads cargo, adjusts temperatures and prints the manifest.

Container codes follow ISO 6346 and embed a serial drawn from one shared
sequence, starting at --seed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := LoadConfig(v)
			if err != nil {
				return err
			}

			logger, err := logging.New(config.LogLevel, config.LogFormat, c.ErrOrStderr())
			if err != nil {
				return err
			}

			app := NewCompositionRoot(config, logger)
			manifest, err := RunManifest(c.Context(), &app)
			if err != nil {
				return err
			}

			if err = WriteManifest(c.OutOrStdout(), output, manifest); err != nil {
				return err
			}

			if metricsFile != "" {
				if err = prometheus.WriteToTextfile(metricsFile, app.Metrics().Gatherer()); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}

			return nil
		},
	}

	flags := command.Flags()
	flags.Int64("seed", services.DefaultSerialSeed, "first container serial number (env SERIAL_SEED)")
	flags.String("owner", DefaultOwnerCode, "three letter owner code (env OWNER_CODE)")
	flags.String("log-level", DefaultLogLevel, "log level: debug, info, warn or error (env LOG_LEVEL)")
	flags.String("log-format", DefaultLogFormat, "log format: text or json (env LOG_FORMAT)")
	flags.StringVarP(&output, "output", "o", OutputLog, "manifest output: log, json or yaml")
	flags.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	for key, flag := range map[string]string{
		"serial_seed": "seed",
		"owner_code":  "owner",
		"log_level":   "log-level",
		"log_format":  "log-format",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	return command
}
