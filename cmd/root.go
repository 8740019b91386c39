package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/passagequiz/internal/llm"
	"github.com/abhisek/passagequiz/internal/store"
)

// needsLLM marks commands that build a provider. Their configuration is
// checked before RunE so a missing key fails fast.
const needsLLM = "needs-llm"

// llmConfig is resolved once in PersistentPreRunE.
var llmConfig llm.Config

var rootCmd = &cobra.Command{
	Use:   "passagequiz",
	Short: "Exam-style question generator for English passages",
	Long: "passagequiz turns an English passage into Korean school-exam style " +
		"questions (수능/내신 변형문제) and exports them as a printable PDF.",
	Annotations:       map[string]string{needsLLM: "true"},
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PASSAGEQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Environment file loaded before configuration is read")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: gemini, openai, anthropic, openrouter or mock (overrides PASSAGEQUIZ_LLM_PROVIDER)")
	rootCmd.Flags().Bool("no-welcome", false, "Skip the welcome screen")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig seeds the environment from the env file, then validates the
// LLM configuration for commands that need it.
func loadConfig(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if cmd.Annotations[needsLLM] == "" {
		return nil
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		if err := os.Setenv("PASSAGEQUIZ_LLM_PROVIDER", p); err != nil {
			return err
		}
	}
	cfg, err := llm.LoadConfig()
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}
	llmConfig = cfg
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PASSAGEQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
