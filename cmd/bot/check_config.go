package main

import (
	"fmt"

	"homework_status_bot/internal/infra/config"

	"github.com/spf13/cobra"
)

// checkConfigCmd validates the environment without contacting any API.
var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Validate the environment configuration",
	Long: `Validate the bot configuration (environment and .env file) without
starting the bot. All missing required variables are reported at once.

Exit codes:
  0 - configuration is valid
  1 - configuration is invalid`,
	RunE: runCheckConfig,
}

func init() {
	rootCmd.AddCommand(checkConfigCmd)
}

func runCheckConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	journal := "disabled"
	if cfg.DatabaseURL != "" {
		journal = "enabled"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Config is valid!")
	fmt.Fprintf(out, "  Endpoint:     %s\n", cfg.Endpoint)
	fmt.Fprintf(out, "  Chat ID:      %d\n", cfg.TelegramChatID)
	fmt.Fprintf(out, "  Retry period: %s\n", cfg.RetryPeriod)
	fmt.Fprintf(out, "  HTTP timeout: %s\n", cfg.HTTPTimeout)
	fmt.Fprintf(out, "  Journal:      %s\n", journal)
	fmt.Fprintf(out, "  Log level:    %s (%s)\n", cfg.LogLevel, cfg.Environment)
	return nil
}
