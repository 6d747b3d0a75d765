package ess

import (
	"bytes"
	"sort"
	"strings"
)

// FormatSheet renders a style set back to sheet text. default_style comes
// first, remaining tags follow in lexical order. Null items produce empty
// blocks.
func FormatSheet(set StyleSet) []byte {
	tags := make([]string, 0, len(set))
	for tag := range set {
		if tag == DefaultStyleTagName {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	if _, ok := set[DefaultStyleTagName]; ok {
		tags = append([]string{DefaultStyleTagName}, tags...)
	}

	buf := new(bytes.Buffer)
	for i, tag := range tags {
		if i > 0 {
			buf.WriteString("\n")
		}
		writeBlock(buf, tag, set[tag])
	}
	return buf.Bytes()
}

func writeBlock(buf *bytes.Buffer, tag string, item *StyleItem) {
	buf.WriteString(tag)
	buf.WriteString(" {\n")
	if item != nil && !item.IsNull() {
		writeDecl(buf, AttrFore.String(), item.Fore())
		writeDecl(buf, AttrBack.String(), item.Back())
		writeDecl(buf, AttrFace.String(), item.Face())
		writeDecl(buf, AttrSize.String(), item.Size())
		if mods := item.ModifierList(); len(mods) > 0 {
			parts := make([]string, len(mods))
			for i, m := range mods {
				parts[i] = string(m)
			}
			writeDecl(buf, AttrModifiers.String(), strings.Join(parts, ", "))
		}
	}
	buf.WriteString("}\n")
}

func writeDecl(buf *bytes.Buffer, attr, value string) {
	if value == "" {
		return
	}
	buf.WriteString("    ")
	buf.WriteString(attr)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString(";\n")
}
