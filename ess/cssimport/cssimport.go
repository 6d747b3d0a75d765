// Package cssimport converts a subset of CSS into editor style sets. Only
// simple selectors and text styling properties survive the conversion, the
// rest is reported as warnings.
package cssimport

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"essc/ess"
)

// Importer drives the CSS tokenizer and maps what it understands onto style
// items.
type Importer struct {
	log *zap.Logger
}

// NewImporter creates a new CSS importer.
func NewImporter(log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{log: log.Named("css-import")}
}

// Result holds the converted styles along with everything that had to be
// dropped on the way.
type Result struct {
	Styles   ess.StyleSet
	Warnings []string
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Import converts CSS text. The optional source parameter identifies what is
// being converted (for debug logging).
func (im *Importer) Import(data []byte, source ...string) *Result {
	res := &Result{Styles: make(ess.StyleSet)}

	if len(source) > 0 && source[0] != "" {
		im.log.Debug("Converting CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				im.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return res

		case css.BeginAtRuleGrammar:
			// @media, @font-face and friends have no place in editor styles
			res.warnf("dropped %s block", string(data))
			im.skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			res.warnf("dropped %s rule", string(data))

		case css.BeginRulesetGrammar:
			selectors := im.parseSelectors(data, parser.Values())
			props := im.parseDeclarations(parser)

			for _, selStr := range selectors {
				tag, ok := selectorToTag(selStr)
				if !ok {
					res.warnf("unsupported selector: %s", selStr)
					im.log.Debug("Skipping selector", zap.String("selector", selStr))
					continue
				}
				im.applyProperties(res, tag, props)
			}
		}
	}
}

// parseSelectors extracts selector strings from token data.
func (im *Importer) parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (im *Importer) parseDeclarations(parser *css.Parser) map[string]string {
	props := make(map[string]string)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			if value := joinTokens(parser.Values()); value != "" {
				props[name] = value
			}

		case css.CustomPropertyGrammar:
			continue
		}
	}
}

// applyProperties maps recognized CSS properties onto the tag's style item,
// creating it on first use. Unknown properties and values become warnings.
func (im *Importer) applyProperties(res *Result, tag string, props map[string]string) {
	item, ok := res.Styles[tag]
	if !ok {
		item = &ess.StyleItem{}
		res.Styles[tag] = item
	}

	for name, value := range props {
		switch name {
		case "color":
			if hex, ok := toHexColor(value); ok {
				item.SetFore(hex)
			} else {
				res.warnf("%s: unsupported color value: %s", tag, value)
			}
		case "background", "background-color":
			if hex, ok := toHexColor(value); ok {
				item.SetBack(hex)
			} else {
				res.warnf("%s: unsupported background value: %s", tag, value)
			}
		case "font-family":
			if face := firstFontFamily(value); face != "" {
				item.SetFace(face)
			}
		case "font-size":
			if pts, ok := toPoints(value); ok {
				item.SetSize(strconv.Itoa(pts))
			} else {
				res.warnf("%s: unsupported font-size value: %s", tag, value)
			}
		case "font-weight":
			if isBoldWeight(value) {
				item.SetModifier(ess.ModBold, true)
			}
		case "font-style":
			if strings.EqualFold(value, "italic") || strings.EqualFold(value, "oblique") {
				item.SetModifier(ess.ModItalic, true)
			}
		case "text-decoration", "text-decoration-line":
			if strings.Contains(strings.ToLower(value), "underline") {
				item.SetModifier(ess.ModUnderline, true)
			}
		default:
			res.warnf("%s: dropped property %s", tag, name)
		}
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (im *Importer) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// selectorToTag reduces a selector to a style tag. Only plain element and
// class selectors qualify, combinators, attribute and pseudo selectors do
// not. Class names win over element names, dashes become underscores.
func selectorToTag(selStr string) (string, bool) {
	if strings.ContainsAny(selStr, "+~>[]: \t\n") || strings.Contains(selStr, "*") {
		return "", false
	}

	name := selStr
	if _, class, found := strings.Cut(selStr, "."); found {
		if class == "" {
			return "", false
		}
		name = class
	}

	name = strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	if len(name) == 0 {
		return "", false
	}
	r := rune(name[0])
	if !unicode.IsLetter(r) {
		return "", false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return "", false
		}
	}
	return name, true
}

// joinTokens builds a value string from declaration tokens, collapsing
// whitespace runs to single spaces.
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#FFFFFF",
	"red":     "#FF0000",
	"green":   "#008000",
	"blue":    "#0000FF",
	"yellow":  "#FFFF00",
	"cyan":    "#00FFFF",
	"magenta": "#FF00FF",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#C0C0C0",
	"maroon":  "#800000",
	"olive":   "#808000",
	"navy":    "#000080",
	"purple":  "#800080",
	"teal":    "#008080",
	"orange":  "#FFA500",
	"brown":   "#A52A2A",
}

// toHexColor normalizes hex literals, a small set of named colors and
// rgb(r,g,b) calls.
func toHexColor(value string) (string, bool) {
	value = strings.TrimSpace(value)

	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return "", false
		}
		for _, r := range hex {
			if !isHexDigit(r) {
				return "", false
			}
		}
		return "#" + strings.ToUpper(hex), true
	}

	if hex, ok := namedColors[strings.ToLower(value)]; ok {
		return hex, true
	}

	low := strings.ToLower(value)
	if strings.HasPrefix(low, "rgb(") && strings.HasSuffix(low, ")") {
		inner := value[4 : len(value)-1]
		var rgb [3]int
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return "", false
		}
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return "", false
			}
			rgb[i] = n
		}
		return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2]), true
	}

	return "", false
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// toPoints converts a font-size value to whole points. Bare numbers and pt
// are taken as is, px is converted at the usual 96dpi.
func toPoints(value string) (int, bool) {
	value = strings.ToLower(strings.TrimSpace(value))

	unit := ""
	num := value
	switch {
	case strings.HasSuffix(value, "pt"):
		unit, num = "pt", strings.TrimSuffix(value, "pt")
	case strings.HasSuffix(value, "px"):
		unit, num = "px", strings.TrimSuffix(value, "px")
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	if unit == "px" {
		f = f * 72.0 / 96.0
	}
	pts := int(f + 0.5)
	if pts < 1 {
		pts = 1
	}
	return pts, true
}

// firstFontFamily picks the first family from a font-family list.
func firstFontFamily(value string) string {
	first, _, _ := strings.Cut(value, ",")
	return unquote(first)
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// isBoldWeight recognizes keyword and numeric bold weights.
func isBoldWeight(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "bold", "bolder":
		return true
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n >= 600
	}
	return false
}
