package ess_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"essc/ess"
)

func populate(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("/* empty */"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
}

func TestFindStyleSheet(t *testing.T) {
	userDir := t.TempDir()
	sysDir := t.TempDir()
	populate(t, userDir, "custom.ess")
	populate(t, sysDir, "default.ess", "Custom.ess")

	// user directory wins, matching is case-insensitive
	path, ok := ess.FindStyleSheet("Custom", userDir, sysDir)
	if !ok {
		t.Fatal("FindStyleSheet(Custom) not found")
	}
	if filepath.Dir(path) != userDir {
		t.Errorf("FindStyleSheet() = %q, want user directory copy", path)
	}

	// extension is optional
	if _, ok := ess.FindStyleSheet("default.ess", userDir, sysDir); !ok {
		t.Error("FindStyleSheet(default.ess) not found")
	}
	if _, ok := ess.FindStyleSheet("absent", userDir, sysDir); ok {
		t.Error("FindStyleSheet(absent) should fail")
	}
	if _, ok := ess.FindStyleSheet("", userDir, sysDir); ok {
		t.Error("FindStyleSheet(\"\") should fail")
	}
}

func TestListStyleSheets(t *testing.T) {
	userDir := t.TempDir()
	sysDir := t.TempDir()
	populate(t, userDir, "zenburn.ess", "theme2.ess")
	populate(t, sysDir, "default.ess", "theme10.ess", "Zenburn.ess", "notes.txt")

	got := ess.ListStyleSheets(userDir, sysDir)

	// natural order, duplicates collapsed case-insensitively, non-sheets skipped
	want := []string{"default", "theme2", "theme10", "zenburn"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListStyleSheets() = %v, want %v", got, want)
	}
}

func TestReadSheet_BOM(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		data []byte
	}{
		{"plain.ess", []byte("tag_style { fore: #000000; }")},
		{"bom.ess", append([]byte{0xEF, 0xBB, 0xBF}, "tag_style { fore: #000000; }"...)},
	}
	for _, tc := range cases {
		path := filepath.Join(dir, tc.name)
		if err := os.WriteFile(path, tc.data, 0644); err != nil {
			t.Fatalf("failed to write %s: %v", tc.name, err)
		}
		data, err := ess.ReadSheet(path)
		if err != nil {
			t.Fatalf("ReadSheet(%s) error = %v", tc.name, err)
		}
		if string(data) != "tag_style { fore: #000000; }" {
			t.Errorf("ReadSheet(%s) = %q", tc.name, data)
		}
	}

	if _, err := ess.ReadSheet(filepath.Join(dir, "missing.ess")); err == nil {
		t.Error("ReadSheet(missing) should fail")
	}
}
