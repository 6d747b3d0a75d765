package commands

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"essc/ess"
	"essc/state"
)

// Check parses sheets in strict mode, reporting every syntax error. Any
// failing sheet makes the whole run fail.
func Check(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no style sheets specified")
	}

	parser := ess.NewParser(env.Log)

	var result error
	for _, name := range cmd.Args().Slice() {
		path, err := locateSheet(env, name)
		if err != nil {
			result = multierr.Append(result, err)
			continue
		}

		data, err := ess.ReadSheet(path)
		if err != nil {
			result = multierr.Append(result, fmt.Errorf("unable to read '%s': %w", path, err))
			continue
		}

		set, err := parser.Parse(data, true)
		if err != nil {
			var serr *ess.SyntaxError
			if errors.As(err, &serr) {
				env.Log.Error("Sheet has syntax errors",
					zap.String("path", path), zap.String("tag", serr.Tag), zap.String("reason", serr.Reason))
			}
			result = multierr.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}

		env.Log.Info("Sheet is valid", zap.String("path", path), zap.Int("tags", len(set)))
	}
	return result
}
