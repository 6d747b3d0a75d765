// Package profile keeps per-user editor state that survives between runs:
// the selected syntax theme and the font choices.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// DefaultTheme is the theme selection written when nothing was chosen yet or
// the chosen sheet failed to load.
const DefaultTheme = "default"

type values struct {
	SynTheme      string `yaml:"syntheme"`
	PrimaryFont   string `yaml:"primary_font,omitempty"`
	SecondaryFont string `yaml:"secondary_font,omitempty"`
	FontSize      int    `yaml:"font_size,omitempty"`
	FontSize2     int    `yaml:"font_size2,omitempty"`
}

// Profile is a small YAML-backed key store. Save failures are logged, never
// raised - losing a preference update must not interrupt the editor.
type Profile struct {
	path string
	log  *zap.Logger
	vals values
}

// Load reads the profile at path, returning a default-initialized profile
// when the file does not exist yet.
func Load(path string, log *zap.Logger) (*Profile, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Profile{
		path: path,
		log:  log.Named("profile"),
		vals: values{SynTheme: DefaultTheme},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return nil, fmt.Errorf("unable to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p.vals); err != nil {
		return nil, fmt.Errorf("unable to decode profile: %w", err)
	}
	if len(p.vals.SynTheme) == 0 {
		p.vals.SynTheme = DefaultTheme
	}
	return p, nil
}

// Save writes the profile back to disk, creating parent directories as needed.
func (p *Profile) Save() error {
	data, err := yaml.Marshal(p.vals)
	if err != nil {
		return fmt.Errorf("unable to encode profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("unable to create profile directory: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("unable to write profile: %w", err)
	}
	return nil
}

// SyntaxTheme returns the selected theme name.
func (p *Profile) SyntaxTheme() string {
	return p.vals.SynTheme
}

// SetSyntaxTheme updates and persists the theme selection. Implements the
// registry's ThemeStore.
func (p *Profile) SetSyntaxTheme(name string) {
	if p.vals.SynTheme == name {
		return
	}
	p.vals.SynTheme = name
	if err := p.Save(); err != nil {
		p.log.Warn("Failed to persist theme selection", zap.String("theme", name), zap.Error(err))
	}
}

// Fonts returns the stored font preferences; zero values mean "unset".
func (p *Profile) Fonts() (primary, secondary string, size, size2 int) {
	return p.vals.PrimaryFont, p.vals.SecondaryFont, p.vals.FontSize, p.vals.FontSize2
}

// EffectiveFonts overlays stored font preferences over the configured
// defaults, returning the values the font dictionary should be built from.
// Unset preferences leave the corresponding default in place.
func (p *Profile) EffectiveFonts(primary, secondary string, size, size2 int) (string, string, int, int) {
	if len(p.vals.PrimaryFont) > 0 {
		primary = p.vals.PrimaryFont
	}
	if len(p.vals.SecondaryFont) > 0 {
		secondary = p.vals.SecondaryFont
	}
	if p.vals.FontSize > 0 {
		size = p.vals.FontSize
	}
	if p.vals.FontSize2 > 0 {
		size2 = p.vals.FontSize2
	}
	return primary, secondary, size, size2
}

// SetFonts updates and persists the font preferences.
func (p *Profile) SetFonts(primary, secondary string, size, size2 int) {
	p.vals.PrimaryFont = primary
	p.vals.SecondaryFont = secondary
	p.vals.FontSize = size
	p.vals.FontSize2 = size2
	if err := p.Save(); err != nil {
		p.log.Warn("Failed to persist font preferences", zap.Error(err))
	}
}
