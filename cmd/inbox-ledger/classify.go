package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/inbox-ledger/internal/cli"
	"github.com/Veraticus/inbox-ledger/internal/engine"
	"github.com/Veraticus/inbox-ledger/internal/model"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify stored messages into categories",
		Long: `Classify every stored message into one of seven categories and record
newly seen banking messages for extraction.

Each message is classified independently; a problem with one message
never aborts the batch.`,
		RunE: runClassify,
	}

	cmd.Flags().Bool("json", false, "Emit the full batch result as JSON on stdout")
	cmd.Flags().StringP("input", "i", "", "Classify messages from a backup file instead of the database")
	_ = viper.BindPFlag("classify.json", cmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("classify.input", cmd.Flags().Lookup("input"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var messages []model.Message
	if input := viper.GetString("classify.input"); input != "" {
		messages, err = readBackup(input)
	} else {
		messages, err = store.GetMessages(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	if len(messages) == 0 {
		slog.Info(cli.FormatWarning("No messages stored; run import first"))
		return nil
	}

	slog.Info(cli.FormatTitle("Classifying messages"))

	eng := engine.New(store)
	result, err := eng.ClassifyAll(ctx, messages)
	if err != nil {
		return err
	}

	if viper.GetBool("classify.json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	displayClassifySummary(result)
	return nil
}

func displayClassifySummary(result *engine.BatchResult) {
	header := cli.TableHeaderStyle.Render(fmt.Sprintf("%-20s %s", "Category", "Count"))
	fmt.Println(header)
	for _, cat := range model.Categories {
		row := fmt.Sprintf("%-20s %d", cat, result.Counts[cat])
		if result.Counts[cat] == 0 {
			row = cli.SubtleStyle.Render(row)
		}
		fmt.Println(cli.TableCellStyle.Render(row))
	}

	fmt.Println()
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Classified %d messages", result.Total)))
	if len(result.StoredIDs) > 0 {
		fmt.Println(cli.FormatInfo(fmt.Sprintf("%s Recorded %d new banking messages",
			cli.BankIcon, len(result.StoredIDs))))
	}
}
