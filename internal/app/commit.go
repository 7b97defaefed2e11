package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/porameht/git-relax/internal/gitx"
	"github.com/porameht/git-relax/internal/llm"
)

// Commit generates a commit message for the staged changes and records the
// commit once the user has had a chance to edit and confirm it.
func Commit(ctx context.Context) error {
	diff, err := gitx.StagedDiff(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diff) == "" {
		fmt.Println(warnStyle.Render("No staged changes. Use 'git add' first."))
		return nil
	}

	client, err := newChatClient()
	if err != nil {
		return err
	}

	s := newSpinner("Generating commit message...")
	s.Start()
	raw, err := client.Chat(ctx, llm.PromptCommit, diff)
	s.Stop()
	if err != nil {
		return err
	}

	message := normalizeSubject(raw)

	fmt.Println()
	fmt.Println(headerStyle.Render("Generated Commit Message:"))
	fmt.Println(boxStyle.Render(message))

	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Edit message").
				Description("Press enter to accept as is").
				Value(&message),
			huh.NewConfirm().
				Title("Commit with this message?").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if !confirmed {
		fmt.Println(dimStyle.Render("Cancelled."))
		return nil
	}

	if err := gitx.Commit(ctx, message); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Committed!"))
	return nil
}
