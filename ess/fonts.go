package ess

import (
	"regexp"
	"strconv"
	"strings"
)

// FontConfig is the runtime font dictionary placeholders resolve against:
// two face names and three size slots.
type FontConfig struct {
	Primary   string
	Secondary string
	Size      int
	Size2     int
	Size3     int
}

// DefaultFonts builds the standard font set around a ten point base size.
func DefaultFonts() FontConfig {
	return NewFontConfig("Courier New", "Helvetica", 10, 10)
}

// NewFontConfig derives the third size slot from the primary size the same
// way the original editor did.
func NewFontConfig(primary, secondary string, size, size2 int) FontConfig {
	return FontConfig{
		Primary:   primary,
		Secondary: secondary,
		Size:      size,
		Size2:     size2,
		Size3:     size - 2,
	}
}

// PlaceholderKey is the closed set of keys a %(key)s token may name.
type PlaceholderKey int

const (
	PlaceholderPrimary PlaceholderKey = iota
	PlaceholderSecondary
	PlaceholderSize
	PlaceholderSize2
	PlaceholderSize3
)

func (k PlaceholderKey) String() string {
	switch k {
	case PlaceholderPrimary:
		return "primary"
	case PlaceholderSecondary:
		return "secondary"
	case PlaceholderSize:
		return "size"
	case PlaceholderSize2:
		return "size2"
	case PlaceholderSize3:
		return "size3"
	default:
		// this should never happen
		panic("unknown placeholder key requested")
	}
}

// ParsePlaceholderKey recognizes a placeholder key name.
func ParsePlaceholderKey(name string) (PlaceholderKey, bool) {
	switch name {
	case "primary":
		return PlaceholderPrimary, true
	case "secondary":
		return PlaceholderSecondary, true
	case "size":
		return PlaceholderSize, true
	case "size2":
		return PlaceholderSize2, true
	case "size3":
		return PlaceholderSize3, true
	}
	return 0, false
}

// Resolve returns the configured value for a key.
func (fc FontConfig) Resolve(key PlaceholderKey) string {
	switch key {
	case PlaceholderPrimary:
		return fc.Primary
	case PlaceholderSecondary:
		return fc.Secondary
	case PlaceholderSize:
		return strconv.Itoa(fc.Size)
	case PlaceholderSize2:
		return strconv.Itoa(fc.Size2)
	case PlaceholderSize3:
		return strconv.Itoa(fc.Size3)
	default:
		return ""
	}
}

// placeholderPattern matches a %(key)s / %(key)d token anywhere in a value.
var placeholderPattern = regexp.MustCompile(`%\(([a-zA-Z0-9]+)\)[sd]`)

// HasPlaceholder reports whether the string carries any placeholder token.
func HasPlaceholder(s string) bool {
	return strings.Contains(s, "%(")
}

// ExpandPlaceholders substitutes every recognized placeholder token with the
// corresponding font value. Tokens naming unknown keys are left untouched.
func ExpandPlaceholders(s string, fc FontConfig) string {
	if !HasPlaceholder(s) {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(tok string) string {
		sub := placeholderPattern.FindStringSubmatch(tok)
		if key, ok := ParsePlaceholderKey(sub[1]); ok {
			return fc.Resolve(key)
		}
		return tok
	})
}
