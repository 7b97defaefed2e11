package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Interactive shows the top-level menu and runs the chosen command.
func Interactive(ctx context.Context) error {
	fmt.Println(headerStyle.Render("🧘 Git Relax"))

	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📝 Commit: generate an AI commit message", "commit"),
					huh.NewOption("🔀 Pull Request: create a PR with an AI description", "pr"),
				).
				Value(&action),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	switch action {
	case "commit":
		if err := Commit(ctx); err != nil {
			return err
		}
	case "pr":
		if err := PullRequest(ctx, ""); err != nil {
			return err
		}
	}

	fmt.Println(dimStyle.Render("Done! 🧘"))
	return nil
}
