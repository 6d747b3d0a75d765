package ess

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// SheetExt is the style sheet file extension.
const SheetExt = ".ess"

// FindStyleSheet locates a named sheet, looking in the user styles directory
// first and the system one second. The extension is appended when the name
// does not carry it and matching against directory entries is
// case-insensitive. Returns the full path and whether it was found.
func FindStyleSheet(name string, userDir, sysDir string) (string, bool) {
	if len(name) == 0 {
		return "", false
	}
	fname := strings.ToLower(name)
	if !strings.EqualFold(filepath.Ext(fname), SheetExt) {
		fname += SheetExt
	}
	for _, dir := range []string{userDir, sysDir} {
		if len(dir) == 0 {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(e.Name(), fname) {
				return filepath.Join(dir, e.Name()), true
			}
		}
	}
	return "", false
}

// ListStyleSheets enumerates sheet names available in the given directories
// in natural order, without extensions. Earlier directories win on duplicate
// names, so pass the user directory first.
func ListStyleSheets(dirs ...string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range dirs {
		if len(dir) == 0 {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), SheetExt) {
				continue
			}
			name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, name)
		}
	}
	sort.Sort(natural.StringSlice(names))
	return names
}
