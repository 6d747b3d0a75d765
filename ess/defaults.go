package ess

// DefaultStyleTagName is the tag every other style inherits unset
// attributes from.
const DefaultStyleTagName = "default_style"

// Tags reserved to mean "use the system default appearance". They are filled
// with null items instead of copies of default_style during merging.
var systemDefaultTags = map[string]bool{
	"select_style":     true,
	"whitespace_style": true,
}

// DefaultStyleSet builds a fresh copy of the built-in style set. Callers get
// independent items - merging mutates them in place.
func DefaultStyleSet() StyleSet {
	return StyleSet{
		"brace_good":       NewStyleItem("#FFFFFF", "#0000FF", "", "", ModBold),
		"brace_bad":        NewStyleItem("", "#FF0000", "", "", ModBold),
		"calltip":          NewStyleItem("#404040", "#FFFFB8", "", ""),
		"caret_line":       NewStyleItem("", "#D8F8FF", "", ""),
		"ctrl_char":        NewStyleItem("", "", "", ""),
		"line_num":         NewStyleItem("", "#C0C0C0", "%(secondary)s", "%(size3)d"),
		"array_style":      NewStyleItem("#EE8B02", "", "%(secondary)s", "", ModBold),
		"btick_style":      NewStyleItem("#8959F6", "", "", "%(size)d", ModBold),
		"default_style":    NewStyleItem("#000000", "#F6F6F6", "%(primary)s", "%(size)d"),
		"char_style":       NewStyleItem("#FF3AFF", "", "", ""),
		"class_style":      NewStyleItem("#2E8B57", "", "", "", ModBold),
		"class2_style":     NewStyleItem("#2E8B57", "", "", "", ModBold),
		"comment_style":    NewStyleItem("#838383", "", "", ""),
		"decor_style":      NewStyleItem("#BA0EEA", "", "%(secondary)s", "", ModItalic),
		"directive_style":  NewStyleItem("#0000FF", "", "%(secondary)s", "", ModBold),
		"dockey_style":     NewStyleItem("#0000FF", "", "", ""),
		"error_style":      NewStyleItem("#DD0101", "", "%(secondary)s", "", ModBold),
		"foldmargin_style": NewStyleItem("", "#D1D1D1", "", ""),
		"funct_style":      NewStyleItem("#008B8B", "", "", "", ModItalic),
		"global_style":     NewStyleItem("#007F7F", "", "%(secondary)s", "", ModBold),
		"guide_style":      NewStyleItem("#838383", "", "", ""),
		"here_style":       NewStyleItem("#CA61CA", "", "%(secondary)s", "", ModBold),
		"ideol_style":      NewStyleItem("#E0C0E0", "", "%(secondary)s", ""),
		"keyword_style":    NewStyleItem("#A52B2B", "", "", "", ModBold),
		"keyword2_style":   NewStyleItem("#2E8B57", "", "", "", ModBold),
		"keyword3_style":   NewStyleItem("#008B8B", "", "", "", ModBold),
		"keyword4_style":   NewStyleItem("#9D2424", "", "", ""),
		"marker_style":     NewStyleItem("#FFFFFF", "#000000", "", ""),
		"number_style":     NewStyleItem("#DD0101", "", "", ""),
		"number2_style":    NewStyleItem("#DD0101", "", "", "", ModBold),
		"operator_style":   NewStyleItem("#000000", "", "%(primary)s", "", ModBold),
		"pre_style":        NewStyleItem("#AB39F2", "", "", "", ModBold),
		"pre2_style":       NewStyleItem("#AB39F2", "#FFFFFF", "", "", ModBold),
		"regex_style":      NewStyleItem("#008B8B", "", "", ""),
		"scalar_style":     NewStyleItem("#AB37F2", "", "%(secondary)s", "", ModBold),
		"scalar2_style":    NewStyleItem("#AB37F2", "", "%(secondary)s", ""),
		"select_style":     NullStyleItem(),
		"string_style":     NewStyleItem("#FF3AFF", "", "", "", ModBold),
		"stringeol_style":  NewStyleItem("#000000", "#EEC0EE", "%(secondary)s", "", ModBold, ModEOL),
		"unknown_style":    NewStyleItem("#FFFFFF", "#DD0101", "", "", ModBold, ModEOL),
		"userkw_style":     NewStyleItem("", "", "", ""),
		"whitespace_style": NewStyleItem("#838383", "", "", ""),
	}
}

// BlankStyleSet returns a set of unset items over the default tag list:
// null items for the reserved system-default tags, black-on-white items
// with font placeholders everywhere else.
func BlankStyleSet() StyleSet {
	blank := make(StyleSet)
	for tag := range DefaultStyleSet() {
		if systemDefaultTags[tag] {
			blank[tag] = NullStyleItem()
		} else {
			blank[tag] = NewStyleItem("#000000", "#FFFFFF", "%(primary)s", "%(size)d")
		}
	}
	return blank
}

// MergeStyles merges src into dst, overwriting duplicate tags with items
// from src.
func MergeStyles(dst, src StyleSet) StyleSet {
	for tag, item := range src {
		dst[tag] = item
	}
	return dst
}

// MergeFonts eagerly substitutes font values into every placeholder-bearing
// item of the set. Used by exports that need literal values; regular lookups
// resolve lazily instead.
func MergeFonts(set StyleSet, fc FontConfig) StyleSet {
	for tag, item := range set {
		if s := item.String(); HasPlaceholder(s) {
			fresh := &StyleItem{}
			fresh.SetAttrFromStr(ExpandPlaceholders(s, fc))
			set[tag] = fresh
		}
	}
	return set
}
