package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List scenario templates with their derived probabilities",
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(catalog))
	for _, t := range catalog {
		sc, err := engine.NewScenario(t)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			t.Emoji + " " + t.Name,
			t.Event,
			t.Test,
			fmt.Sprintf("%.3f", sc.P.A),
			fmt.Sprintf("%.3f", sc.P.BGivenA),
			fmt.Sprintf("%.3f", sc.P.NotBGivenNotA),
			fmt.Sprintf("%.4f", sc.P.B),
			fmt.Sprintf("%.3f", sc.P.AGivenB),
		})
	}
	header := lipgloss.NewStyle().Bold(true)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers("Scenario", "Event", "Evidence", "P(A)", "Sensitivity", "Specificity", "P(B)", "P(A|B)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
	return nil
}
