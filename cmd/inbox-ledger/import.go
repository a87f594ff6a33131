package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/inbox-ledger/internal/cli"
	"github.com/Veraticus/inbox-ledger/internal/common"
	"github.com/Veraticus/inbox-ledger/internal/model"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <backup.json>",
		Short: "Import messages from an SMS backup export",
		Long: `Import messages from a JSON SMS backup export.

The export is an array of objects with "address", "body", "date" (epoch
milliseconds), and "type" (1 received, 2 sent) fields. Messages are
deduplicated automatically, so re-importing an overlapping export is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Parse the backup without saving to the database")
	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

// backupMessage is the wire format of a single entry in an SMS backup
// export.
type backupMessage struct {
	Address string `json:"address"`
	Body    string `json:"body"`
	Date    int64  `json:"date"`
	Type    int    `json:"type"`
}

// readBackup parses an SMS backup export into domain messages.
func readBackup(path string) ([]model.Message, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return nil, common.NewUserError("could not read backup file", err)
	}

	var entries []backupMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, common.NewUserError("backup file is not a valid SMS export", err)
	}

	messages := make([]model.Message, 0, len(entries))
	for _, entry := range entries {
		direction := model.DirectionInbox
		if entry.Type == 2 {
			direction = model.DirectionSent
		}
		messages = append(messages, model.Message{
			Sender:          entry.Address,
			Body:            entry.Body,
			TimestampMillis: entry.Date,
			Direction:       direction,
		})
	}
	return messages, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	backupPath := args[0]

	messages, err := readBackup(backupPath)
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Importing SMS backup"))
	slog.Info("Backup parsed", "file", backupPath, "messages", len(messages))

	if viper.GetBool("import.dry_run") {
		slog.Info(cli.FormatWarning("Dry run mode - not saving to database"))
		return nil
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(len(messages),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing messages...[reset]"),
	)

	// Batches keep each transaction small while still amortizing the
	// prepared-statement cost.
	const batchSize = 500
	saved := 0
	for start := 0; start < len(messages); start += batchSize {
		end := start + batchSize
		if end > len(messages) {
			end = len(messages)
		}
		n, saveErr := store.SaveMessages(ctx, messages[start:end])
		if saveErr != nil {
			return fmt.Errorf("failed to save messages: %w", saveErr)
		}
		saved += n
		_ = bar.Add(end - start)
	}
	fmt.Fprintln(os.Stderr)

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Imported %d new messages (%d duplicates skipped)",
		saved, len(messages)-saved)))

	return nil
}
