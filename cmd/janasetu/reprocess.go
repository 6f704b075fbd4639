package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/janasetu/janasetu/internal/heuristic"
)

func reprocessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reprocess",
		Short: "Re-run the heuristic classifier over stored chat records",
		Long: `Re-runs the current rule table over every stored chat record and
rewrites categories and priorities that changed. Useful after rule
updates so history stays consistent with new classifications.`,
		RunE: runReprocess,
	}

	cmd.Flags().Bool("dry-run", false, "report changes without writing them")

	return cmd
}

func runReprocess(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	records, err := store.AllChatRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to load chat records: %w", err)
	}

	if len(records) == 0 {
		slog.Info("no chat records to reprocess")
		return nil
	}

	classifier := heuristic.NewDefaultClassifier()
	bar := progressbar.Default(int64(len(records)), "reprocessing")

	changed := 0
	for _, record := range records {
		_ = bar.Add(1)

		category, priority := classifier.Classify(record.Message)
		if category == record.Category && priority == record.Priority {
			continue
		}

		changed++
		if dryRun {
			slog.Info("would update record",
				"record_id", record.ID,
				"old_category", record.Category,
				"new_category", category,
				"old_priority", record.Priority,
				"new_priority", priority)
			continue
		}

		if err := store.UpdateChatClassification(ctx, record.ID, category, priority); err != nil {
			return fmt.Errorf("failed to update record %s: %w", record.ID, err)
		}
	}

	slog.Info("reprocess complete",
		"records", len(records),
		"changed", changed,
		"dry_run", dryRun)

	return nil
}
