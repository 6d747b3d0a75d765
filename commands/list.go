package commands

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"essc/ess"
	"essc/state"
)

// List prints available sheet names from the configured directories, the
// currently selected theme marked with an asterisk.
func List(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	current := env.Cfg.Styles.DefaultTheme
	if env.Profile != nil {
		current = env.Profile.SyntaxTheme()
	}

	names := ess.ListStyleSheets(env.Cfg.Styles.UserDir, env.Cfg.Styles.SystemDir)
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "no style sheets found")
		return nil
	}

	for _, name := range names {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, name)
	}
	return nil
}
