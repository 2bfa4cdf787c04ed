package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

var rootFlags struct {
	seed      string
	dsn       string
	catalog   string
	theme     string
	logFile   string
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "bayestree",
	Short: "Practise Bayes' theorem on an interactive probability tree",
	Long: "bayestree draws a two-level probability tree for a scenario and asks for a\n" +
		"posterior probability. Click (or Tab through) the leaves to inspect joint\n" +
		"probabilities, type an answer, and open the worked solution when stuck.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.seed, "seed", "", "session seed (random if omitted; env BAYES_SEED)")
	f.StringVar(&rootFlags.dsn, "dsn", "", "PostgreSQL DSN for the round journal (env DATABASE_URL)")
	f.StringVar(&rootFlags.catalog, "catalog", "", "YAML scenario catalog replacing the built-in one (env BAYES_CATALOG)")
	f.StringVar(&rootFlags.theme, "theme", "", "colour theme (env BAYES_THEME)")
	f.StringVar(&rootFlags.logFile, "log-file", "", "write logs to this file (env BAYES_LOG_FILE)")
	f.StringVar(&rootFlags.logLevel, "log-level", "", "debug, info, warn or error (env BAYES_LOG_LEVEL)")
	f.StringVar(&rootFlags.logFormat, "log-format", "", "text or json (env BAYES_LOG_FORMAT)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
