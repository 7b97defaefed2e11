// Package app holds the command handlers behind the CLI surface. Handlers own
// the interaction flow and the normalization of model output; the llm package
// stays a dumb exchange.
package app

import (
	"context"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/porameht/git-relax/internal/llm"
)

// ChatClient is the slice of the llm client the handlers need. Kept minimal
// so tests can drop in a fake.
type ChatClient interface {
	Chat(ctx context.Context, system llm.Prompt, user string) (string, error)
}

// newChatClient resolves provider credentials and builds the real client.
// Handlers call this only after confirming there is a diff to work on, so a
// missing key never masks a "nothing staged" situation.
func newChatClient() (ChatClient, error) {
	cfg, err := llm.ResolveConfig()
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("provider", cfg.Provider.String()).
		Str("model", cfg.Model).
		Msg("provider resolved")
	return llm.New(cfg), nil
}

var (
	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212"))

	boxStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2).
		MarginBottom(1)

	warnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().Faint(true)
)

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	return s
}

// normalizeSubject applies the casing rules shared by commit messages and PR
// titles: trimmed, lowercase.
func normalizeSubject(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeBody trims only. PR bodies are free-form markdown, so casing stays
// with the model.
func normalizeBody(s string) string {
	return strings.TrimSpace(s)
}
