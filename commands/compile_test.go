package commands

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"essc/config"
	"essc/ess"
	"essc/state"
)

func TestResolveEntries(t *testing.T) {
	reg := ess.NewRegistry(ess.NewFontConfig("Courier", "Helvetica", 10, 10), zap.NewNop())

	entries := resolveEntries(reg)
	if len(entries) == 0 {
		t.Fatal("no entries resolved")
	}
	if entries[0].Tag != ess.DefaultStyleTagName {
		t.Errorf("first entry = %s, want default_style", entries[0].Tag)
	}

	for _, e := range entries {
		if e.Tag == "comment_style" {
			if e.Face != "Courier" {
				t.Errorf("placeholder not resolved: face = %q", e.Face)
			}
			if e.Size != "10" {
				t.Errorf("placeholder not resolved: size = %q", e.Size)
			}
		}
		if e.Style == "" && !ess.DefaultStyleSet()[e.Tag].IsNull() {
			t.Errorf("tag %s resolved to empty style", e.Tag)
		}
	}
}

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"out.txt", "out.txt"},
		{filepath.Join("reports", "out.txt"), filepath.Join("reports", "out.txt")},
		{filepath.Join("reports", "a:b.ess"), filepath.Join("reports", "ab.ess")},
	}
	for _, tc := range tests {
		if got := destinationPath(tc.in); got != tc.want {
			t.Errorf("destinationPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLocateSheet(t *testing.T) {
	userDir := t.TempDir()
	sysDir := t.TempDir()

	direct := filepath.Join(t.TempDir(), "direct.ess")
	if err := os.WriteFile(direct, []byte("default_style { fore: #000000; }"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "zenburn.ess"), []byte("default_style { fore: #DCDCCC; }"), 0644); err != nil {
		t.Fatal(err)
	}

	env := &state.LocalEnv{
		Cfg: &config.Config{
			Styles: config.StylesConfig{UserDir: userDir, SystemDir: sysDir},
		},
	}

	if got, err := locateSheet(env, direct); err != nil || got != direct {
		t.Errorf("direct path: got %q, %v", got, err)
	}
	if got, err := locateSheet(env, "zenburn"); err != nil || got != filepath.Join(userDir, "zenburn.ess") {
		t.Errorf("by name: got %q, %v", got, err)
	}
	if _, err := locateSheet(env, "missing"); err == nil {
		t.Error("expected error for unknown sheet")
	}
}
