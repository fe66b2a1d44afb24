package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/moodring/internal/cli"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the fact-check rules in the order they are tried",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			analyzer, err := newAnalyzer(cfg, nil)
			if err != nil {
				return err
			}
			rules := analyzer.Rules()

			rows := make([][]string, 0, len(rules))
			for _, r := range rules {
				rows = append(rows, []string{strconv.Itoa(r.Priority), r.Name, string(r.Category), r.Description})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Detector rules"))
			fmt.Fprintln(out, cli.RenderTable([]string{"PRIORITY", "NAME", "CATEGORY", "DESCRIPTION"}, rows))
			return nil
		},
	}
}
