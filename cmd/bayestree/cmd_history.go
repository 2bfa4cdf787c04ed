package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/DaanHessen/bayes-tree/internal/store"
)

var historyFlags struct {
	limit   int
	session string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently judged rounds from the journal",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "number of rounds to show")
	historyCmd.Flags().StringVar(&historyFlags.session, "session", "", "show every round of one session id, in play order")
}

// parseSession returns the session filter; ok is false when none was given.
func parseSession(s string) (id uuid.UUID, ok bool, err error) {
	if s == "" {
		return uuid.Nil, false, nil
	}
	id, err = uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("invalid --session %q: %w", s, err)
	}
	return id, true, nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	session, bySession, err := parseSession(historyFlags.session)
	if err != nil {
		return err
	}
	if historyFlags.limit < 1 {
		return fmt.Errorf("limit must be at least 1 (got %d)", historyFlags.limit)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DSN == "" {
		return errors.New("history needs a database (--dsn or DATABASE_URL)")
	}
	db, err := store.Open(cmd.Context(), cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := store.NewRoundRepo(db)
	var recs []store.RoundRecord
	if bySession {
		recs, err = repo.ListSession(cmd.Context(), session)
	} else {
		recs, err = repo.ListRecent(cmd.Context(), historyFlags.limit)
	}
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		return nil
	}
	rows := make([][]string, 0, len(recs))
	correct := 0
	for _, r := range recs {
		verdict := "✗"
		if r.IsCorrect {
			verdict = "✓"
			correct++
		}
		rows = append(rows, []string{
			r.JudgedAt.Local().Format("2006-01-02 15:04"),
			r.Seed,
			fmt.Sprintf("%d", r.Round),
			r.Scenario,
			string(r.QuestionType()),
			r.Input,
			fmt.Sprintf("%.3f", r.Correct),
			verdict,
		})
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers("When", "Seed", "Round", "Scenario", "Question", "Answer", "Truth", "").
		Rows(rows...)
	fmt.Fprintln(out, tbl.Render())
	fmt.Fprintf(out, "%d of %d correct\n", correct, len(recs))
	return nil
}
