package ess

import (
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// StyleSet maps a style tag name to its item. One set exists per loaded
// sheet identity plus the built-in default set.
type StyleSet map[string]*StyleItem

// Clone returns a deep copy of the set.
func (ss StyleSet) Clone() StyleSet {
	out := make(StyleSet, len(ss))
	for tag, item := range ss {
		out[tag] = item.Clone()
	}
	return out
}

// Parser compiles Editra Style Sheet text into a style set.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new sheet parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("ess-parser")}
}

var (
	commentPattern = regexp.MustCompile(`/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`)
	hexPattern     = regexp.MustCompile(`^#[0-9a-fA-F]{3,6}$`)
	scalarPattern  = regexp.MustCompile(`^%\([a-zA-Z0-9]+\)[sd]$`)
)

// Parse compiles raw sheet text into a tag to item mapping.
//
// In tolerant mode (strict=false) every malformed block, declaration or
// attribute is logged and dropped and Parse always returns whatever it could
// build with a nil error - a broken sheet degrades instead of blocking. In
// strict mode the first malformed construct aborts parsing with a
// *SyntaxError.
func (p *Parser) Parse(data []byte, strict bool) (StyleSet, error) {
	text := commentPattern.ReplaceAllString(string(data), "")

	// the grammar is whitespace-insensitive except inside face names
	r := strings.NewReplacer("\r\n", "", "\n", "", "\r", "", "\t", "")
	text = r.Replace(text)

	type block struct {
		tag   string
		decls [][2]string
	}
	var blocks []block

	rawBlocks := strings.Split(text, "}")
	if n := len(rawBlocks); n > 0 && strings.TrimSpace(rawBlocks[n-1]) == "" {
		rawBlocks = rawBlocks[:n-1]
	}

	for _, raw := range rawBlocks {
		parts := strings.Split(raw, "{")
		if len(parts) != 2 {
			near := firstField(parts[0])
			p.log.Error("Missing { or } in style definition", zap.String("near", near))
			if strict {
				return nil, &SyntaxError{Tag: near, Reason: "missing { or }"}
			}
			continue
		}

		tag := strings.ReplaceAll(parts[0], " ", "")
		var decls [][2]string
		for decl := range strings.SplitSeq(strings.TrimSpace(parts[1]), ";") {
			if strings.TrimSpace(decl) == "" {
				continue
			}
			dparts := strings.Split(decl, ":")
			for i := range dparts {
				dparts[i] = strings.TrimSpace(dparts[i])
			}
			if len(dparts) != 2 {
				p.log.Error("Missing : or ; in declaration", zap.String("tag", tag))
				if strict {
					return nil, &SyntaxError{Tag: tag, Reason: "missing : or ; in declaration"}
				}
				continue
			}
			if _, ok := ParseAttr(dparts[0]); !ok {
				p.log.Warn("Unknown style attribute",
					zap.String("attribute", dparts[0]), zap.String("tag", tag))
				if strict {
					return nil, &SyntaxError{Tag: tag, Reason: "unknown attribute " + dparts[0]}
				}
				continue
			}
			decls = append(decls, [2]string{dparts[0], dparts[1]})
		}
		if len(decls) == 0 {
			// nothing usable in this block
			continue
		}
		blocks = append(blocks, block{tag: tag, decls: decls})
	}

	set := make(StyleSet, len(blocks))
	for _, b := range blocks {
		if len(b.tag) == 0 || !unicode.IsLetter(rune(b.tag[0])) {
			p.log.Error("Invalid style tag name", zap.String("tag", b.tag))
			if strict {
				return nil, &SyntaxError{Tag: b.tag, Reason: "invalid tag name"}
			}
			// tolerant mode keeps the entry with its declarations
			// applied, so a typo in a tag name loses the binding but
			// not the styling behind it
		}

		var styleStr []string
		for _, decl := range b.decls {
			attr, _ := ParseAttr(decl[0])
			value, ok := p.validateValue(b.tag, attr, decl[1])
			if !ok {
				continue
			}
			styleStr = append(styleStr, decl[0]+":"+value)
		}

		item := &StyleItem{}
		if len(styleStr) > 0 {
			item.SetAttrFromStr(strings.Join(styleStr, ","))
		}
		set[b.tag] = item
	}

	return set, nil
}

// validateValue checks a declaration value for the given attribute and
// returns it in canonical form: the scalar first, any recognized trailing
// modifier tokens comma-appended. Returns false if the value is unusable.
func (p *Parser) validateValue(tag string, attr Attr, raw string) (string, bool) {
	if attr == AttrModifiers {
		// tokens may be separated by commas, whitespace or both
		var valid []string
		for _, tok := range strings.Fields(strings.ReplaceAll(raw, ",", " ")) {
			if _, ok := ParseModifier(tok); ok {
				valid = append(valid, tok)
				continue
			}
			p.log.Warn("Unknown modifier keyword",
				zap.String("value", tok), zap.String("tag", tag))
		}
		if len(valid) == 0 {
			return "", false
		}
		return strings.Join(valid, ","), true
	}

	values := strings.Fields(raw)
	if len(values) == 0 {
		return "", false
	}

	scalarOK := false
	switch attr {
	case AttrFore, AttrBack:
		if hexPattern.MatchString(values[0]) {
			scalarOK = true
		} else {
			p.log.Warn("Bad color value",
				zap.String("attribute", attr.String()), zap.String("value", values[0]), zap.String("tag", tag))
		}
	case AttrSize:
		if scalarPattern.MatchString(values[0]) || isDigits(values[0]) {
			scalarOK = true
		} else {
			p.log.Warn("Bad size value",
				zap.String("value", values[0]), zap.String("tag", tag))
		}
	case AttrFace:
		// font names may have spaces in them, join the leading tokens that
		// are not modifier keywords into a single face name
		if len(values) > 1 {
			var name []string
			rest := values
			for len(rest) > 0 {
				if _, ok := ParseModifier(rest[0]); ok {
					break
				}
				name = append(name, rest[0])
				rest = rest[1:]
			}
			values = append([]string{strings.Join(name, " ")}, rest...)
		}
		scalarOK = true
	}

	extrasOK := false
	if len(values) > 1 {
		for _, v := range values[1:] {
			if _, ok := ParseModifier(v); !ok {
				p.log.Warn("Unknown modifier keyword",
					zap.String("value", v), zap.String("attribute", attr.String()), zap.String("tag", tag))
				extrasOK = false
				break
			}
			extrasOK = true
		}
	}

	switch {
	case scalarOK && extrasOK:
		return strings.Join(values, ","), true
	case scalarOK:
		return values[0], true
	default:
		return "", false
	}
}

func firstField(s string) string {
	if fs := strings.Fields(s); len(fs) > 0 {
		return fs[0]
	}
	return ""
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
