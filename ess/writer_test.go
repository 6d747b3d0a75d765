package ess

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestFormatSheetRoundTrip(t *testing.T) {
	set := StyleSet{
		"default_style": NewStyleItem("#000000", "#FFFFFF", "Courier", "10"),
		"comment_style": NewStyleItem("#838383", "", "", ""),
		"keyword_style": NewStyleItem("#A52B2B", "", "", "", ModBold, ModItalic),
	}

	out := FormatSheet(set)

	parsed, err := NewParser(zap.NewNop()).Parse(out, true)
	if err != nil {
		t.Fatalf("formatted sheet does not parse back: %v", err)
	}
	for tag, item := range set {
		got, ok := parsed[tag]
		if !ok {
			t.Errorf("tag %s lost in round trip", tag)
			continue
		}
		if !got.Equal(item) {
			t.Errorf("tag %s: got %q, want %q", tag, got.String(), item.String())
		}
	}
}

func TestFormatSheetDefaultFirst(t *testing.T) {
	set := StyleSet{
		"zzz_style":     NewStyleItem("#111111", "", "", ""),
		"default_style": NewStyleItem("#000000", "#FFFFFF", "Courier", "10"),
		"abc_style":     NewStyleItem("#222222", "", "", ""),
	}

	text := string(FormatSheet(set))

	first := strings.Index(text, "default_style")
	abc := strings.Index(text, "abc_style")
	zzz := strings.Index(text, "zzz_style")
	if !(first < abc && abc < zzz) {
		t.Errorf("bad block order:\n%s", text)
	}
}

func TestFormatSheetNullItem(t *testing.T) {
	set := StyleSet{
		"select_style": NullStyleItem(),
	}

	text := string(FormatSheet(set))
	if !strings.Contains(text, "select_style {") {
		t.Errorf("null tag missing:\n%s", text)
	}
	if strings.Contains(text, "fore") || strings.Contains(text, "modifiers") {
		t.Errorf("null item should produce an empty block:\n%s", text)
	}
}
