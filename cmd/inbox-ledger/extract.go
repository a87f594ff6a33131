package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/inbox-ledger/internal/cli"
	"github.com/Veraticus/inbox-ledger/internal/engine"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract bill, payment, and transaction events",
		Long: `Run the tiered extractor over every stored message and persist the
structured events it finds.

Most messages do not describe a financial event; non-matches are counted
and skipped, never reported as errors.`,
		RunE: runExtract,
	}

	cmd.Flags().StringP("user", "u", "", "User identifier to attach to extracted events")
	cmd.Flags().Bool("json", false, "Emit extracted events as JSON on stdout")
	_ = viper.BindPFlag("extract.user", cmd.Flags().Lookup("user"))
	_ = viper.BindPFlag("extract.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	messages, err := store.GetMessages(ctx)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	if len(messages) == 0 {
		slog.Info(cli.FormatWarning("No messages stored; run import first"))
		return nil
	}

	slog.Info(cli.FormatTitle("Extracting financial events"))

	eng := engine.New(store)
	result, err := eng.ExtractAll(ctx, messages, viper.GetString("extract.user"))
	if err != nil {
		return err
	}

	if viper.GetBool("extract.json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Parsed %d of %d messages",
		cli.BillIcon, result.Parsed, result.Total)))
	for _, event := range result.Events {
		line := fmt.Sprintf("%-12s %-22s %10.2f", event.Type, event.Bank, event.Amount)
		if event.DueDate != "" {
			line += "  due " + event.DueDate
		}
		fmt.Println(cli.TableCellStyle.Render(line))
	}

	return nil
}
