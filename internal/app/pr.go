package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/porameht/git-relax/internal/gh"
	"github.com/porameht/git-relax/internal/gitx"
	"github.com/porameht/git-relax/internal/llm"
)

// PullRequest generates a PR title and body for the changes between base and
// HEAD, then pushes the branch if needed and opens the PR once the user
// confirms. An empty base falls back to "main".
func PullRequest(ctx context.Context, base string) error {
	if strings.TrimSpace(base) == "" {
		base = "main"
	}

	diff, err := gitx.BranchDiff(ctx, base)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diff) == "" {
		fmt.Println(warnStyle.Render(fmt.Sprintf("No changes compared to %s.", base)))
		return nil
	}

	client, err := newChatClient()
	if err != nil {
		return err
	}

	s := newSpinner("Generating PR title and description...")
	s.Start()
	rawTitle, err := client.Chat(ctx, llm.PromptPRTitle, diff)
	if err != nil {
		s.Stop()
		return err
	}
	rawBody, err := client.Chat(ctx, llm.PromptPRBody, diff)
	s.Stop()
	if err != nil {
		return err
	}

	title := normalizeSubject(rawTitle)
	body := normalizeBody(rawBody)

	fmt.Println()
	fmt.Println(headerStyle.Render("Title:") + " " + title)
	fmt.Println(boxStyle.Render(body))

	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create pull request?").
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

	if !gitx.HasUpstream(ctx) {
		push := newSpinner("Pushing branch...")
		push.Start()
		err := gitx.Push(ctx)
		push.Stop()
		if err != nil {
			return err
		}
	}

	create := newSpinner("Creating pull request...")
	create.Start()
	url, err := gh.CreatePR(ctx, title, body, base)
	create.Stop()
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render("Created!") + " " + url)
	return nil
}
