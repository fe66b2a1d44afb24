package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/moodring/internal/cli"
	"github.com/Veraticus/moodring/internal/common"
	"github.com/Veraticus/moodring/internal/model"
)

const previewWidth = 48

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage stored analyses",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyDeleteCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored analyses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			asJSON, _ := cmd.Flags().GetBool("json")
			if limit < 0 {
				return common.NewUserError("--limit cannot be negative", nil)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			analyses, err := store.ListAnalyses(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(analyses)
			}
			if len(analyses) == 0 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("No analyses stored yet."))
				return nil
			}

			rows := make([][]string, 0, len(analyses))
			for _, a := range analyses {
				rows = append(rows, []string{
					a.ID,
					a.CreatedAt.Local().Format("2006-01-02 15:04"),
					cli.FormatSentiment(a.Sentiment),
					fmt.Sprintf("%+.2f", a.Score),
					preview(a.Text),
				})
			}
			fmt.Fprintln(out, cli.RenderTable([]string{"ID", "CREATED", "SENTIMENT", "SCORE", "TEXT"}, rows))
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "maximum number of records to show (0 for all)")
	cmd.Flags().Bool("json", false, "print records as JSON")

	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			analysis, err := store.GetAnalysis(cmd.Context(), args[0])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError("Record not found", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderAnalysis(analysis))
			return nil
		},
	}
}

func historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			err = store.DeleteAnalysis(cmd.Context(), args[0])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError("Record not found", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Record deleted: "+args[0]))
			return nil
		},
	}
}

func renderAnalysis(a *model.Analysis) string {
	body := cli.RenderResult(a.Text, a.AnalysisResult)
	meta := cli.SubtleStyle.Render(fmt.Sprintf("%s · created %s", a.ID, a.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	return body + "\n" + meta
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= previewWidth {
		return text
	}
	return string(runes[:previewWidth-1]) + "…"
}
