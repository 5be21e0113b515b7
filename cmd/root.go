package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oslerai/preceptor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "preceptor",
	Short: "Adaptive medical tutoring in the terminal",
	Long:  "Preceptor runs Socratic tutoring dialogues over clinical topics, grading free-text answers and triaging knowledge gaps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PRECEPTOR_DB env var)")
	rootCmd.Flags().String("topic", "", "Topic to tutor (overrides config)")
	rootCmd.Flags().Bool("resume", false, "Resume the most recent saved session")

	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then config, then PRECEPTOR_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
