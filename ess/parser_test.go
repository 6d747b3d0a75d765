package ess_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"essc/ess"
)

const sampleSheet = `
/* A sample style sheet.
 * Comments may appear anywhere outside a block. */
default_style {
	fore: #000000;
	back: #F6F6F6;
	face: %(primary)s;
	size: %(size)d;
}

comment_style {
	fore: #838383;
}

keyword_style {
	fore: #A52B2B;
	modifiers: bold;
}
`

func TestParser_Sample(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	set, err := p.Parse([]byte(sampleSheet), false)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("Parse() produced %d tags, want 3", len(set))
	}

	def, ok := set["default_style"]
	if !ok {
		t.Fatal("default_style missing")
	}
	want := "fore:#000000,back:#F6F6F6,face:%(primary)s,size:%(size)d"
	if got := def.String(); got != want {
		t.Errorf("default_style = %q, want %q", got, want)
	}

	kw := set["keyword_style"]
	if kw == nil || !kw.HasModifier(ess.ModBold) {
		t.Errorf("keyword_style lost its modifier: %q", kw)
	}
}

func TestParser_Idempotent(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	first, _ := p.Parse([]byte(sampleSheet), false)
	second, _ := p.Parse([]byte(sampleSheet), false)

	if len(first) != len(second) {
		t.Fatalf("tag counts differ: %d vs %d", len(first), len(second))
	}
	for tag, item := range first {
		other, ok := second[tag]
		if !ok {
			t.Errorf("tag %q missing from second parse", tag)
			continue
		}
		if !item.Equal(other) {
			t.Errorf("tag %q differs: %q vs %q", tag, item, other)
		}
	}
}

func TestParser_FaceWithSpacesAndTrailingModifiers(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	set, _ := p.Parse([]byte(`tag_style { face: Times New Roman bold italic; }`), false)
	item := set["tag_style"]
	if item == nil {
		t.Fatal("tag_style missing")
	}
	if item.Face() != "Times New Roman" {
		t.Errorf("Face() = %q, want %q", item.Face(), "Times New Roman")
	}
	if got := item.Modifiers(); got != "bold,italic" {
		t.Errorf("Modifiers() = %q, want %q", got, "bold,italic")
	}
}

func TestParser_ColorValidation(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	// too-short hex value is rejected, leaving fore unset
	set, _ := p.Parse([]byte(`tag_style { fore: #12; back: #AABBCC; }`), false)
	item := set["tag_style"]
	if item == nil {
		t.Fatal("tag_style missing")
	}
	if item.Fore() != "" {
		t.Errorf("short hex should be dropped, got fore %q", item.Fore())
	}
	if item.Back() != "#AABBCC" {
		t.Errorf("Back() = %q, want #AABBCC", item.Back())
	}
}

func TestParser_SizeValidation(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	cases := []struct {
		value string
		want  string
	}{
		{"10", "10"},
		{"%(size)d", "%(size)d"},
		{"%(size2)s", "%(size2)s"},
		{"ten", ""},
		{"10pt", ""},
	}
	for _, tc := range cases {
		set, _ := p.Parse([]byte("tag_style { size: "+tc.value+"; fore: #000000; }"), false)
		item := set["tag_style"]
		if item == nil {
			t.Fatalf("size %q: tag_style missing", tc.value)
		}
		if item.Size() != tc.want {
			t.Errorf("size %q: got %q, want %q", tc.value, item.Size(), tc.want)
		}
	}
}

func TestParser_UnknownAttributeDropped(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	set, err := p.Parse([]byte(`tag_style { colour: #000000; fore: #FFFFFF; }`), false)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	item := set["tag_style"]
	if item == nil {
		t.Fatal("tag_style missing")
	}
	if got := item.String(); got != "fore:#FFFFFF" {
		t.Errorf("unknown attribute should be dropped, got %q", got)
	}
}

func TestParser_UnknownModifierDropped(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	set, _ := p.Parse([]byte(`tag_style { modifiers: bold blink; }`), false)
	item := set["tag_style"]
	if item == nil {
		t.Fatal("tag_style missing")
	}
	if got := item.Modifiers(); got != "bold" {
		t.Errorf("Modifiers() = %q, want %q", got, "bold")
	}
}

func TestParser_TolerantNeverFails(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	// mangled variants: misplaced and missing structural characters
	inputs := []string{
		"",
		"}{",
		"{{{",
		"}}}}",
		"tag {",
		"tag } fore: #000; {",
		"tag { fore #000000; }",
		"tag { fore: ; }",
		"tag { : #000000; }",
		"tag { fore: #000000 }",
		"tag { fore: #000000; } trailing",
		"{ fore: #000000; }",
		"1tag { fore: #000000; }",
		"tag { fore:: #000000; }",
		"tag { ;;;; }",
		"/* unterminated comment tag { fore: #000000; }",
		"tag { fore: #000000; /* comment inside */ back: #FFFFFF; }",
	}

	for _, in := range inputs {
		set, err := p.Parse([]byte(in), false)
		if err != nil {
			t.Errorf("Parse(%q, strict=false) error = %v, tolerant mode must not fail", in, err)
		}
		if set == nil {
			t.Errorf("Parse(%q, strict=false) returned nil set", in)
		}
	}
}

func TestParser_InvalidTagKeepsDeclarations(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	set, err := p.Parse([]byte(`1bad_style { fore: #838383; size: 10; }`), false)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	item, ok := set["1bad_style"]
	if !ok {
		t.Fatal("tag with invalid name missing from tolerant result")
	}
	if got, want := item.String(), "fore:#838383,size:10"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParser_StrictMode(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	cases := []struct {
		name  string
		input string
	}{
		{"missing brace", "bad_tag missing_brace fore:#fff;"},
		{"missing colon", "tag_style { fore #000000; }"},
		{"unknown attribute", "tag_style { colour: #000000; }"},
		{"bad tag name", "1tag { fore: #000000; }"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse([]byte(tc.input), true)
			if err == nil {
				t.Fatalf("Parse(%q, strict=true) should fail", tc.input)
			}
			var serr *ess.SyntaxError
			if !errors.As(err, &serr) {
				t.Errorf("error type = %T, want *ess.SyntaxError", err)
			}
		})
	}
}

func TestParser_StrictModeAcceptsValidSheet(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	set, err := p.Parse([]byte(sampleSheet), true)
	if err != nil {
		t.Fatalf("Parse(valid, strict=true) error = %v", err)
	}
	if len(set) != 3 {
		t.Errorf("Parse() produced %d tags, want 3", len(set))
	}
}

func TestParser_CommentStripping(t *testing.T) {
	p := ess.NewParser(zap.NewNop())

	input := `/* leading */ tag_style { /* inner */ fore: #000000; } /* trailing
	multi line */ other_style { back: #FFFFFF; }`

	set, err := p.Parse([]byte(input), true)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("Parse() produced %d tags, want 2", len(set))
	}
	if set["tag_style"].Fore() != "#000000" {
		t.Errorf("tag_style fore = %q", set["tag_style"].Fore())
	}
	if set["other_style"].Back() != "#FFFFFF" {
		t.Errorf("other_style back = %q", set["other_style"].Back())
	}
}
