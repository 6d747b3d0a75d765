package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"essc/ess"
	"essc/ess/cssimport"
	"essc/state"
)

// Import converts a CSS file into a sheet written under a slugified theme
// name in the user styles directory (or an explicit destination).
func Import(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no CSS file specified")
	}
	env.Overwrite = cmd.Bool("overwrite")
	src := cmd.Args().Get(0)

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}
	env.Rpt.Store("input.css", src)

	res := cssimport.NewImporter(env.Log).Import(data, src)
	for _, w := range res.Warnings {
		env.Log.Warn("CSS conversion", zap.String("detail", w))
	}
	if len(res.Styles) == 0 {
		return fmt.Errorf("nothing usable in '%s'", src)
	}

	dest := cmd.Args().Get(1)
	if len(dest) == 0 {
		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dest = filepath.Join(env.Cfg.Styles.UserDir, slug.Make(base)+ess.SheetExt)
	} else {
		dest = destinationPath(dest)
	}
	if _, err := os.Stat(dest); err == nil && !env.Overwrite {
		return fmt.Errorf("destination '%s' already exists", dest)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("unable to create styles directory: %w", err)
	}

	out := ess.FormatSheet(res.Styles)
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", dest, err)
	}
	env.Rpt.StoreData("output.ess", out)

	env.Log.Info("Imported CSS",
		zap.String("from", src), zap.String("to", dest),
		zap.Int("styles", len(res.Styles)), zap.Int("warnings", len(res.Warnings)))
	return nil
}
