// Package cmd implements the auction-monitor CLI commands.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "AUCTION_MONITOR"

// Flag keys, shared between pflag and viper.
const (
	flagConfig         = "config"
	flagEnvFile        = "env-file"
	flagLogLevel       = "log-level"
	flagLogFormat      = "log-format"
	flagOutput         = "output"
	flagNoSpinner      = "no-spinner"
	flagMetricsFile    = "metrics-file"
	flagDiscordWebhook = "discord-webhook"
)

// NewRootCommand builds the root command. Running it without a subcommand
// performs one monitoring run. Each call gets its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "auction-monitor",
		Short: "Summarize running CarOnSale auctions",
		Long: "auction-monitor authenticates against the CarOnSale API, fetches the\n" +
			"running auctions visible to the buyer and prints the number of auctions,\n" +
			"the average number of bids and the average auction progress.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMonitor(cmd.Context(), v, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.String(flagConfig, "", "config file path (optional)")
	flags.String(flagEnvFile, ".env", "dotenv file loaded before the environment is read")
	flags.String(flagLogLevel, "", "log level (debug, info, warn, error)")
	flags.String(flagLogFormat, "", "log format (text, json, tint)")
	flags.String(flagOutput, "", "output format (text, json)")
	flags.Bool(flagNoSpinner, false, "disable the progress spinner")
	flags.String(flagMetricsFile, "", "write Prometheus metrics to this textfile after the run")
	flags.String(flagDiscordWebhook, "", "post the summary to this Discord webhook")

	cobra.CheckErr(v.BindPFlags(flags))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(versionCommand())

	return root
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand()
	err := root.ExecuteContext(ctx)
	if err != nil {
		root.PrintErrln("Error:", err)
	}
	return err
}
