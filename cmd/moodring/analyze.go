package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/Veraticus/moodring/internal/cli"
	"github.com/Veraticus/moodring/internal/common"
	"github.com/Veraticus/moodring/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <text...>",
		Short: "Classify a piece of text",
		Long: `Classify text as positive, negative or neutral.

Statements about arithmetic and about today's date are fact-checked. Use --at
to evaluate date statements as if it were another day.`,
		Example: `  moodring analyze "5 + 3 = 8"
  moodring analyze today is Monday --at 2024-05-13
  moodring analyze "I really love this ❤" --save --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().String("at", "", "evaluate as if now were this time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().Bool("save", false, "store the result in the history database")
	cmd.Flags().Bool("json", false, "print the result as JSON")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	at, _ := cmd.Flags().GetString("at")
	save, _ := cmd.Flags().GetBool("save")
	asJSON, _ := cmd.Flags().GetBool("json")

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return common.NewUserError("Text is required", common.ErrEmptyText)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var clock clockwork.Clock
	if at != "" {
		now, parseErr := parseAt(at, cfg.Location)
		if parseErr != nil {
			return common.NewUserError("Invalid --at value, expected RFC3339 or YYYY-MM-DD", parseErr)
		}
		clock = clockwork.NewFakeClockAt(now)
	}

	analyzer, err := newAnalyzer(cfg, clock)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := analyzer.Classify(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to analyze text: %w", err)
	}

	var record any = result
	savedID := ""
	if save {
		store, storeErr := initStorage(ctx, cfg)
		if storeErr != nil {
			return storeErr
		}
		defer func() { _ = store.Close() }()

		analysis := model.NewAnalysis(text, result)
		if err := store.SaveAnalysis(ctx, analysis); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		slog.Debug("Saved analysis", "id", analysis.ID)
		record = analysis
		savedID = analysis.ID
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderResult(text, result))
	if savedID != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Saved as "+savedID))
	}
	return nil
}

// parseAt accepts a full RFC3339 timestamp or a calendar date, which is
// taken as noon in loc.
func parseAt(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	day, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(12 * time.Hour), nil
}
