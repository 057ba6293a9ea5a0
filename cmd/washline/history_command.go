package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"washline/internal/history"
	"washline/internal/report"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded benchmark runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
				return nil
			}

			report.NewWriter(cmd.OutOrStdout()).History(records)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum rows to show (0 for all)")

	cmd.AddCommand(newHistoryClearCommand(cctx))
	return cmd
}

func newHistoryClearCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}
