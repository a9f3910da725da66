package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentx-labs/skillmaker/internal/branding"
	"github.com/agentx-labs/skillmaker/internal/config"
	"github.com/agentx-labs/skillmaker/internal/logger"
	"github.com/agentx-labs/skillmaker/internal/presenter"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// settings is resolved once per invocation in PersistentPreRunE.
var settings config.Settings

// persistent flag name -> config key
var boundFlags = map[string]string{
	"output-dir": config.KeyOutputDir,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds reusable, testable skills: Go packages with typed
inputs and outputs, an execute body picked from a template library, a test
stub and a SKILL.md description, and checks them against fixed principles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		for flag, key := range boundFlags {
			if err := viper.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(flag)); err != nil {
				return fmt.Errorf("binding --%s: %w", flag, err)
			}
		}

		s, err := config.Resolve()
		if err != nil {
			return err
		}
		if err := logger.SetLogLevel(s.LogLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
		}
		logger.SetLogFormat(s.LogFormat)
		settings = s

		logger.G(cmd.Context()).WithField("output_dir", s.OutputDir).Debug("settings resolved")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("output-dir", config.DefaultOutputDir, "Root directory generated skills are written to")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (fmt, json)")
}

// newPresenter returns a presenter writing to the command's streams.
func newPresenter(cmd *cobra.Command) *presenter.Presenter {
	return presenter.NewWithOptions(cmd.OutOrStdout(), cmd.ErrOrStderr(), presenter.DetectColorMode())
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the command context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
