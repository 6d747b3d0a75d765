package ess

import (
	"fmt"
	"strings"
)

// Modifier is a boolean rendering flag attached to a style.
type Modifier string

const (
	ModBold      Modifier = "bold"
	ModItalic    Modifier = "italic"
	ModUnderline Modifier = "underline"
	ModEOL       Modifier = "eol"
)

// ParseModifier recognizes a modifier keyword.
func ParseModifier(s string) (Modifier, bool) {
	switch Modifier(s) {
	case ModBold, ModItalic, ModUnderline, ModEOL:
		return Modifier(s), true
	}
	return "", false
}

// Attr is the closed set of scalar style attributes recognized by the
// sheet grammar.
type Attr int

const (
	AttrFore Attr = iota
	AttrBack
	AttrFace
	AttrSize
	AttrModifiers
)

func (a Attr) String() string {
	switch a {
	case AttrFore:
		return "fore"
	case AttrBack:
		return "back"
	case AttrFace:
		return "face"
	case AttrSize:
		return "size"
	case AttrModifiers:
		return "modifiers"
	default:
		// this should never happen
		panic("unknown style attribute requested")
	}
}

// ParseAttr recognizes an attribute name.
func ParseAttr(name string) (Attr, bool) {
	switch name {
	case "fore":
		return AttrFore, true
	case "back":
		return AttrBack, true
	case "face":
		return AttrFace, true
	case "size":
		return AttrSize, true
	case "modifiers":
		return AttrModifiers, true
	}
	return 0, false
}

// StyleItem holds the visual attributes of a single named style. Colors are
// hex strings, face and size may carry a font placeholder resolved at lookup
// time. A null item means "use the system default appearance" and is exempt
// from default merging.
type StyleItem struct {
	fore string
	back string
	face string
	size string
	mods []Modifier
	null bool
}

// NewStyleItem builds an item from literal attribute values. Empty strings
// leave the corresponding attribute unset.
func NewStyleItem(fore, back, face, size string, mods ...Modifier) *StyleItem {
	si := &StyleItem{fore: fore, back: back, face: face, size: size}
	for _, m := range mods {
		si.SetModifier(m, true)
	}
	return si
}

// NullStyleItem creates an empty item that cannot be merged with defaults.
func NullStyleItem() *StyleItem {
	return &StyleItem{null: true}
}

// FromString builds an item from its canonical attribute string form
// (i.e. "fore:#888444,face:Monaco,size:10,bold").
func FromString(s string) *StyleItem {
	si := &StyleItem{}
	si.SetAttrFromStr(s)
	return si
}

// String serializes the item in canonical attribute order: fore, back, face,
// size, modifiers. The result has no spaces after ':' and no trailing comma -
// the format the rendering control accepts.
func (si *StyleItem) String() string {
	parts := make([]string, 0, 5)
	if len(si.fore) > 0 {
		parts = append(parts, "fore:"+si.fore)
	}
	if len(si.back) > 0 {
		parts = append(parts, "back:"+si.back)
	}
	if len(si.face) > 0 {
		parts = append(parts, "face:"+si.face)
	}
	if len(si.size) > 0 {
		parts = append(parts, "size:"+si.size)
	}
	if len(si.mods) > 0 {
		parts = append(parts, "modifiers:"+si.Modifiers())
	}
	return strings.Join(parts, ",")
}

// Equal reports whether two items serialize to the same canonical string.
func (si *StyleItem) Equal(other *StyleItem) bool {
	if si == nil || other == nil {
		return si == other
	}
	return si.String() == other.String()
}

// AsList returns attr:value strings usable for building sheet or control values.
func (si *StyleItem) AsList() []string {
	var ret []string
	for _, p := range []struct {
		attr Attr
		val  string
	}{{AttrFore, si.fore}, {AttrBack, si.back}, {AttrFace, si.face}, {AttrSize, si.size}} {
		if len(p.val) > 0 {
			ret = append(ret, p.attr.String()+":"+p.val)
		}
	}
	if len(si.mods) > 0 {
		ret = append(ret, "modifiers:"+si.Modifiers())
	}
	return ret
}

func (si *StyleItem) Fore() string { return si.fore }
func (si *StyleItem) Back() string { return si.back }
func (si *StyleItem) Face() string { return si.face }
func (si *StyleItem) Size() string { return si.size }

// Modifiers returns the comma-joined modifier list in insertion order.
func (si *StyleItem) Modifiers() string {
	ms := make([]string, len(si.mods))
	for i, m := range si.mods {
		ms[i] = string(m)
	}
	return strings.Join(ms, ",")
}

// ModifierList returns the modifiers in insertion order.
func (si *StyleItem) ModifierList() []Modifier {
	out := make([]Modifier, len(si.mods))
	copy(out, si.mods)
	return out
}

// HasModifier reports whether the given modifier is set.
func (si *StyleItem) HasModifier(m Modifier) bool {
	for _, have := range si.mods {
		if have == m {
			return true
		}
	}
	return false
}

// IsNull reports whether the item is a "use system default" sentinel.
func (si *StyleItem) IsNull() bool { return si.null }

// IsOK reports whether the item carries any styling information.
func (si *StyleItem) IsOK() bool { return len(si.String()) > 0 }

// Nullify clears all values and marks the item as null.
func (si *StyleItem) Nullify() {
	si.null = true
	si.fore, si.back, si.face, si.size = "", "", "", ""
	si.mods = nil
}

// Clone returns an independent copy of the item.
func (si *StyleItem) Clone() *StyleItem {
	c := *si
	c.mods = make([]Modifier, len(si.mods))
	copy(c.mods, si.mods)
	return &c
}

// SetFore sets the foreground color. Setting any attribute unsets null.
func (si *StyleItem) SetFore(fore string) {
	si.null = false
	si.fore = fore
}

// SetBack sets the background color.
func (si *StyleItem) SetBack(back string) {
	si.null = false
	si.back = back
}

// SetFace sets the font face name.
func (si *StyleItem) SetFace(face string) {
	si.null = false
	si.face = face
}

// SetSize sets the font point size (literal digits or a placeholder token).
func (si *StyleItem) SetSize(size string) {
	si.null = false
	si.size = size
}

// SetModifier adds (add=true) or removes a modifier, keeping insertion order
// and rejecting unknown keywords.
func (si *StyleItem) SetModifier(m Modifier, add bool) {
	si.null = false
	if _, ok := ParseModifier(string(m)); !ok {
		return
	}
	if add {
		if !si.HasModifier(m) {
			si.mods = append(si.mods, m)
		}
		return
	}
	for i, have := range si.mods {
		if have == m {
			si.mods = append(si.mods[:i], si.mods[i+1:]...)
			return
		}
	}
}

// SetNamed sets a scalar attribute through the closed attribute enum. Values
// with an embedded comma are rejected: modifiers attach only through the
// dedicated modifiers attribute or the trailing-token convention handled by
// the parser, never smuggled inside another value.
func (si *StyleItem) SetNamed(attr Attr, value string) error {
	if attr == AttrModifiers {
		si.null = false
		for _, tok := range strings.Split(value, ",") {
			if m, ok := ParseModifier(strings.TrimSpace(tok)); ok {
				si.SetModifier(m, true)
			}
		}
		return nil
	}
	if strings.Contains(value, ",") {
		return fmt.Errorf("embedded list in %q value: %q", attr, value)
	}
	si.null = false
	switch attr {
	case AttrFore:
		si.fore = value
	case AttrBack:
		si.back = value
	case AttrFace:
		si.face = value
	case AttrSize:
		si.size = value
	}
	return nil
}

// SetAttrFromStr parses a canonical attribute string and sets any values it
// finds. Only sets or overwrites, never zeroes previously set values. Bare
// modifier keywords between commas are accepted - that is how the canonical
// form carries them after the labeled first one. Returns true if at least one
// recognized attribute was set.
func (si *StyleItem) SetAttrFromStr(styleStr string) bool {
	si.null = false
	set := false
	for atom := range strings.SplitSeq(styleStr, ",") {
		name, value, found := strings.Cut(atom, ":")
		if found {
			if attr, ok := ParseAttr(name); ok {
				set = true
				if attr == AttrModifiers {
					if m, mok := ParseModifier(value); mok {
						si.SetModifier(m, true)
					}
				} else {
					switch attr {
					case AttrFore:
						si.fore = value
					case AttrBack:
						si.back = value
					case AttrFace:
						si.face = value
					case AttrSize:
						si.size = value
					}
				}
				continue
			}
		}
		// a bare token may still be a modifier keyword
		for tok := range strings.SplitSeq(atom, ":") {
			if m, ok := ParseModifier(tok); ok {
				si.SetModifier(m, true)
			}
		}
	}
	return set
}
