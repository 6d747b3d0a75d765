package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	p, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if p.SyntaxTheme() != DefaultTheme {
		t.Errorf("bad initial theme: %s", p.SyntaxTheme())
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.yaml")

	p, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	p.SetSyntaxTheme("zenburn")
	p.SetFonts("Courier", "Helvetica", 11, 12)

	q, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if q.SyntaxTheme() != "zenburn" {
		t.Errorf("theme not persisted: %s", q.SyntaxTheme())
	}
	primary, secondary, size, size2 := q.Fonts()
	if primary != "Courier" || secondary != "Helvetica" || size != 11 || size2 != 12 {
		t.Errorf("fonts not persisted: %s %s %d %d", primary, secondary, size, size2)
	}
}

func TestSetSyntaxThemeNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	p, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	p.SetSyntaxTheme(DefaultTheme)
	if _, err := os.Stat(path); err == nil {
		t.Error("unchanged selection should not touch the file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("syntheme: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, zap.NewNop()); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoadEmptyTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("syntheme: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if p.SyntaxTheme() != DefaultTheme {
		t.Errorf("empty theme should fall back to default, got %q", p.SyntaxTheme())
	}
}

func TestEffectiveFonts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	p, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	// empty profile leaves the configured defaults alone
	primary, secondary, size, size2 := p.EffectiveFonts("Courier New", "Helvetica", 10, 10)
	if primary != "Courier New" || secondary != "Helvetica" || size != 10 || size2 != 10 {
		t.Errorf("defaults changed: %s %s %d %d", primary, secondary, size, size2)
	}

	p.SetFonts("Monaco", "Arial", 12, 14)
	primary, secondary, size, size2 = p.EffectiveFonts("Courier New", "Helvetica", 10, 10)
	if primary != "Monaco" || secondary != "Arial" || size != 12 || size2 != 14 {
		t.Errorf("preferences not applied: %s %s %d %d", primary, secondary, size, size2)
	}
}

func TestEffectiveFontsPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("syntheme: default\nprimary_font: Monaco\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	primary, secondary, size, size2 := p.EffectiveFonts("Courier New", "Helvetica", 10, 10)
	if primary != "Monaco" || secondary != "Helvetica" || size != 10 || size2 != 10 {
		t.Errorf("partial overlay wrong: %s %s %d %d", primary, secondary, size, size2)
	}
}

func TestSavedFileIsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	p, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	p.SetSyntaxTheme("oblivion")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "syntheme: oblivion") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}
