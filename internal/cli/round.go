package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bet <amount>",
		Short: "Place a bet for a seat",
		Long:  "Place a bet for the seat given by --seat. Cards are dealt once every seat has bet.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("amount must be a positive whole number")
			}

			body := map[string]any{
				"seat":   cfg.Seat,
				"amount": amount,
			}
			return seatAction(cmd.Context(), "bet", body)
		},
	}
}

func newHitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hit",
		Short: "Draw a card for the acting seat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seatAction(cmd.Context(), "hit", map[string]any{"seat": cfg.Seat})
		},
	}
}

func newStandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stand",
		Short: "Stand for the acting seat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seatAction(cmd.Context(), "stand", map[string]any{"seat": cfg.Seat})
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start the next round with a fresh deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seatAction(cmd.Context(), "reset", nil)
		},
	}
}

// seatAction posts an action for the current table and prints the resulting table
func seatAction(ctx context.Context, action string, body any) error {
	id, err := cfg.RequireTable()
	if err != nil {
		return err
	}

	var result Table

	if err := client.Post(ctx, tablePath(id, action), body, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output, cfg.NoColor)
	out.Print(result)
	return nil
}
