package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Table commands",
	}

	cmd.AddCommand(newTableNewCmd())
	cmd.AddCommand(newTableGetCmd())
	cmd.AddCommand(newTableDeleteCmd())

	return cmd
}

func newTableNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [names...]",
		Short: "Create a table with one seat per name",
		Long:  "Create a table with one seat per name. With no names a single default player is seated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Table

			body := map[string]any{"players": args}
			if err := client.Post(cmd.Context(), "/api/v1/tables", body, &result); err != nil {
				return err
			}

			if err := cfg.SaveTable(result.ID); err != nil {
				return fmt.Errorf("failed to remember table: %w", err)
			}

			out := NewOutput(cfg.Output, cfg.NoColor)
			out.Print(result)
			return nil
		},
	}
}

func newTableGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.TableID = args[0]
			}
			id, err := cfg.RequireTable()
			if err != nil {
				return err
			}

			var result Table

			if err := client.Get(cmd.Context(), tablePath(id, ""), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cfg.NoColor)
			out.Print(result)
			return nil
		},
	}
}

func newTableDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.TableID = args[0]
			}
			id, err := cfg.RequireTable()
			if err != nil {
				return err
			}

			if err := client.Delete(cmd.Context(), tablePath(id, "")); err != nil {
				return err
			}

			if err := cfg.ForgetTable(id); err != nil {
				return fmt.Errorf("failed to forget table: %w", err)
			}

			out := NewOutput(cfg.Output, cfg.NoColor)
			out.PrintMessage(fmt.Sprintf("Deleted table %s", id))
			return nil
		},
	}
}

// tablePath builds the API path for a table, or one of its actions
func tablePath(id, action string) string {
	if action == "" {
		return fmt.Sprintf("/api/v1/tables/%s", id)
	}
	return fmt.Sprintf("/api/v1/tables/%s/%s", id, action)
}
