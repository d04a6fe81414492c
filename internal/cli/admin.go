package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin operations (requires --admin-key)",
	}

	adminCmd.AddCommand(newAdminStatusCmd())
	adminCmd.AddCommand(newAdminToggleCmd())
	adminCmd.AddCommand(newAdminHistoryCmd())
	adminCmd.AddCommand(newAdminExportCmd())
	adminCmd.AddCommand(newAdminDeleteCmd())

	return adminCmd
}

func newAdminStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the gacha is open for play",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SystemStatusResult

			if err := client.Get("/api/admin/system_status", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip the gacha between open and closed",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SystemStatusResult

			if err := client.Post("/api/admin/toggle_system", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminHistoryCmd() *cobra.Command {
	var page, limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List play records, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HistoryResult

			path := fmt.Sprintf("/api/admin/history?page=%d&limit=%d", page, limit)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	historyCmd.Flags().IntVar(&page, "page", 1, "Page number")
	historyCmd.Flags().IntVar(&limit, "limit", 100, "Records per page")

	return historyCmd
}

func newAdminExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump the full play history",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ExportResult

			if err := client.Get("/api/admin/export", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <digest>",
		Short: "Delete one play record so its visitor can play again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DeleteResult

			if err := client.Delete("/api/admin/delete/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
