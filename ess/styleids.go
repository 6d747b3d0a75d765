package ess

import (
	"strconv"
	"sync"
)

// Scintilla-compatible style ids the rendering control understands. Syntax
// bindings may name an id symbolically or give it as a decimal number;
// ResolveStyleID handles both. The table carries the shared control-level
// slots plus the ids of the lexers the editor ships bindings for - extend it
// with RegisterStyleID when adding a lexer.
var styleIDs = map[string]int{
	// control-level slots, shared by every lexer
	"STC_STYLE_DEFAULT":     32,
	"STC_STYLE_LINENUMBER":  33,
	"STC_STYLE_BRACELIGHT":  34,
	"STC_STYLE_BRACEBAD":    35,
	"STC_STYLE_CONTROLCHAR": 36,
	"STC_STYLE_INDENTGUIDE": 37,
	"STC_STYLE_CALLTIP":     38,

	// Python lexer
	"STC_P_DEFAULT":      0,
	"STC_P_COMMENTLINE":  1,
	"STC_P_NUMBER":       2,
	"STC_P_STRING":       3,
	"STC_P_CHARACTER":    4,
	"STC_P_WORD":         5,
	"STC_P_TRIPLE":       6,
	"STC_P_TRIPLEDOUBLE": 7,
	"STC_P_CLASSNAME":    8,
	"STC_P_DEFNAME":      9,
	"STC_P_OPERATOR":     10,
	"STC_P_IDENTIFIER":   11,
	"STC_P_COMMENTBLOCK": 12,
	"STC_P_STRINGEOL":    13,
	"STC_P_WORD2":        14,
	"STC_P_DECORATOR":    15,

	// C/C++ family lexer
	"STC_C_DEFAULT":                0,
	"STC_C_COMMENT":                1,
	"STC_C_COMMENTLINE":            2,
	"STC_C_COMMENTDOC":             3,
	"STC_C_NUMBER":                 4,
	"STC_C_WORD":                   5,
	"STC_C_STRING":                 6,
	"STC_C_CHARACTER":              7,
	"STC_C_UUID":                   8,
	"STC_C_PREPROCESSOR":           9,
	"STC_C_OPERATOR":               10,
	"STC_C_IDENTIFIER":             11,
	"STC_C_STRINGEOL":              12,
	"STC_C_VERBATIM":               13,
	"STC_C_REGEX":                  14,
	"STC_C_COMMENTLINEDOC":         15,
	"STC_C_WORD2":                  16,
	"STC_C_COMMENTDOCKEYWORD":      17,
	"STC_C_COMMENTDOCKEYWORDERROR": 18,
	"STC_C_GLOBALCLASS":            19,
}

// styleIDsMu guards the table: registrations may race with id resolution
// when bindings are installed off the main goroutine.
var styleIDsMu sync.RWMutex

// RegisterStyleID adds a symbolic style id, usually for a lexer this package
// does not know about. Later registrations win.
func RegisterStyleID(name string, id int) {
	styleIDsMu.Lock()
	defer styleIDsMu.Unlock()
	styleIDs[name] = id
}

// ResolveStyleID resolves a symbolic or decimal style id.
func ResolveStyleID(idOrName string) (int, bool) {
	styleIDsMu.RLock()
	id, ok := styleIDs[idOrName]
	styleIDsMu.RUnlock()
	if ok {
		return id, true
	}
	if id, err := strconv.Atoi(idOrName); err == nil && id >= 0 {
		return id, true
	}
	return 0, false
}
