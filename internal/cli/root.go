package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "moonlight",
		Short: "CLI tool for the Moonlight Cards blackjack API",
		Long: `moonlight is a CLI tool for playing blackjack against the Moonlight Cards JSON API.

Create a table, place a bet for each seat, then hit or stand until the round
settles. The last table you created is remembered, so most commands need no
table ID.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Fall back to the remembered table if none was given
			if err := cfg.LoadTable(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: MOONLIGHT_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.TableID, "table", cfg.TableID, "Table ID (env: MOONLIGHT_TABLE)")
	rootCmd.PersistentFlags().StringVar(&cfg.TableFile, "table-file", cfg.TableFile, "File remembering the last table (env: MOONLIGHT_TABLE_FILE)")
	rootCmd.PersistentFlags().IntVarP(&cfg.Seat, "seat", "s", cfg.Seat, "Seat to act for")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured output")

	// Add subcommands
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newBetCmd())
	rootCmd.AddCommand(newHitCmd())
	rootCmd.AddCommand(newStandCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
