// Package commands implements essc subcommand actions.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"essc/config"
	"essc/ess"
	"essc/state"
)

// StyleEntry is what compile output templates are executed against.
type StyleEntry struct {
	Tag       string
	Fore      string
	Back      string
	Face      string
	Size      string
	Modifiers string
	Style     string
}

// Compile loads a sheet, merges it with the defaults and prints the fully
// resolved styles.
func Compile(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no style sheet specified")
	}
	env.Overwrite = cmd.Bool("overwrite")
	name := cmd.Args().Get(0)
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	path, err := locateSheet(env, name)
	if err != nil {
		return err
	}
	env.Rpt.Store("input.ess", path)

	if !env.Registry.LoadStyleSheet(path, cmd.Bool("force")) {
		env.Log.Warn("Style sheet could not be used, showing defaults", zap.String("path", path))
	}

	entries := resolveEntries(env.Registry)

	out := os.Stdout
	if dest := cmd.Args().Get(1); len(dest) > 0 {
		dest = destinationPath(dest)
		if _, err := os.Stat(dest); err == nil && !env.Overwrite {
			return fmt.Errorf("destination '%s' already exists", dest)
		}
		if out, err = os.Create(dest); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dest, err)
		}
		defer out.Close()
	}

	tmplText := cmd.String("template")
	if len(tmplText) == 0 {
		tmplText = env.Cfg.Compile.OutputTemplate
	}
	if len(tmplText) == 0 {
		for _, e := range entries {
			fmt.Fprintf(out, "%s -> %s\n", e.Tag, e.Style)
		}
		return nil
	}

	tmpl, err := template.New("compile").Funcs(sprig.FuncMap()).Parse(tmplText)
	if err != nil {
		return fmt.Errorf("bad output template: %w", err)
	}
	if err := tmpl.Execute(out, entries); err != nil {
		return fmt.Errorf("unable to execute output template: %w", err)
	}
	return nil
}

// destinationPath cleans the file name part of a requested destination so
// characters the file system cannot take do not end up in created files.
func destinationPath(dest string) string {
	return filepath.Join(filepath.Dir(dest), config.CleanFileName(filepath.Base(dest)))
}

// locateSheet accepts either a direct path or a sheet name to be found in
// the configured directories.
func locateSheet(env *state.LocalEnv, name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && fi.Mode().IsRegular() {
		return name, nil
	}
	if path, ok := ess.FindStyleSheet(name, env.Cfg.Styles.UserDir, env.Cfg.Styles.SystemDir); ok {
		return path, nil
	}
	return "", fmt.Errorf("style sheet '%s' not found", name)
}

// resolveEntries flattens the current set with all placeholders substituted,
// default_style first.
func resolveEntries(reg *ess.Registry) []StyleEntry {
	set := reg.GetStyleSet()

	tags := make([]string, 0, len(set))
	for tag := range set {
		if tag == ess.DefaultStyleTagName {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	if _, ok := set[ess.DefaultStyleTagName]; ok {
		tags = append([]string{ess.DefaultStyleTagName}, tags...)
	}

	entries := make([]StyleEntry, 0, len(tags))
	for _, tag := range tags {
		item := reg.GetItemByName(tag)
		entries = append(entries, StyleEntry{
			Tag:       tag,
			Fore:      item.Fore(),
			Back:      item.Back(),
			Face:      item.Face(),
			Size:      item.Size(),
			Modifiers: item.Modifiers(),
			Style:     reg.GetStyleByName(tag),
		})
	}
	return entries
}
