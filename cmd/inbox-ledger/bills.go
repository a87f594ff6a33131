package main

import (
	"fmt"

	"github.com/Veraticus/inbox-ledger/internal/cli"
	"github.com/Veraticus/inbox-ledger/internal/common"
	"github.com/Veraticus/inbox-ledger/internal/model"

	"github.com/spf13/cobra"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "List and manage extracted bill events",
	}

	cmd.AddCommand(billsListCmd())
	cmd.AddCommand(billsMarkCmd())

	return cmd
}

func billsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List extracted bill events, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			events, err := store.GetBillEvents(ctx)
			if err != nil {
				return fmt.Errorf("failed to load bill events: %w", err)
			}
			if len(events) == 0 {
				fmt.Println(cli.FormatInfo("No bill events yet; run extract first"))
				return nil
			}

			header := cli.TableHeaderStyle.Render(
				fmt.Sprintf("%-36s %-12s %-20s %10s %-12s %s",
					"ID", "Type", "Bank", "Amount", "Due", "Status"))
			fmt.Println(header)
			for _, event := range events {
				fmt.Println(cli.TableCellStyle.Render(
					fmt.Sprintf("%-36s %-12s %-20s %10.2f %-12s %s",
						event.ID, event.Type, event.Bank, event.Amount, event.DueDate, event.Status)))
			}
			return nil
		},
	}
}

var validStatuses = map[model.BillEventStatus]bool{
	model.StatusPending:   true,
	model.StatusCompleted: true,
	model.StatusNoted:     true,
	model.StatusPaid:      true,
	model.StatusDismissed: true,
}

func billsMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark <id> <status>",
		Short: "Update the status of a bill event",
		Long: `Update the lifecycle status of an extracted bill event.

Valid statuses: pending, completed, noted, paid, dismissed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]
			status := model.BillEventStatus(args[1])

			if !validStatuses[status] {
				return fmt.Errorf("%w: status %q", common.ErrInvalidInput, args[1])
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateBillStatus(ctx, id, status); err != nil {
				return fmt.Errorf("failed to update bill %s: %w", id, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Marked %s as %s", id, status)))
			return nil
		},
	}
}
