package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/porameht/git-relax/internal/app"
	"github.com/porameht/git-relax/internal/gitx"
)

var rootCmd = &cobra.Command{
	Use:   "git-relax",
	Short: "🧘 AI-powered commit & PR generator",
	Long: `git-relax turns pending changes into commit messages and pull requests
using a hosted LLM. Run it bare for the interactive menu.

Environment:
  OPENROUTER_API_KEY  OpenRouter API key (checked first)
  OPENAI_API_KEY      OpenAI API key
  LLM_MODEL           model override (optional)`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return gitx.EnsureRepo(cmd.Context())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Interactive(cmd.Context())
	},
}

var commitCmd = &cobra.Command{
	Use:     "commit",
	Aliases: []string{"cm"},
	Short:   "Generate a commit message from staged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Commit(cmd.Context())
	},
}

var prBase string

var prCmd = &cobra.Command{
	Use:     "pr",
	Aliases: []string{"pull"},
	Short:   "Create a pull request with an AI-generated description",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.PullRequest(cmd.Context(), prBase)
	},
}

func init() {
	prCmd.Flags().StringVarP(&prBase, "base", "b", "main", "base branch to diff and target")
	rootCmd.AddCommand(commitCmd, prCmd)
}

func main() {
	// A missing .env is normal; real configuration may live in the shell env.
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
