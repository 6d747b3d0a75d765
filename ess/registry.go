package ess

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DefaultSetName is the cache identity of the built-in style set.
const DefaultSetName = "default"

// ThemeStore persists the active theme selection between runs. The registry
// rewrites the selection to "default" when a sheet fails to load.
type ThemeStore interface {
	SetSyntaxTheme(name string)
}

// SyntaxSpec names one requested binding between a renderer style id
// (symbolic STC_* name or decimal number) and a style tag.
type SyntaxSpec struct {
	StyleID string
	Tag     string
}

// SyntaxBinding is a validated binding with the id resolved and the style
// specification compiled against the current set and fonts.
type SyntaxBinding struct {
	ID    int
	Tag   string
	Style string
}

// Registry owns the cache of named style sets, merges loaded sets against
// the built-in defaults and serves style lookups with lazy font-placeholder
// resolution. Create one at application start and pass it by reference.
//
// All methods are safe for concurrent use - unlike the original single
// UI thread design nothing here guarantees callers stay on one goroutine.
type Registry struct {
	mu     sync.RWMutex
	log    *zap.Logger
	parser *Parser
	themes ThemeStore

	styles  map[string]StyleSet
	current string
	fonts   FontConfig
	syntax  []SyntaxBinding
}

// RegistryOption configures a Registry at construction.
type RegistryOption func(*Registry)

// WithThemeStore attaches persistent theme selection storage.
func WithThemeStore(ts ThemeStore) RegistryOption {
	return func(r *Registry) { r.themes = ts }
}

// NewRegistry creates a registry primed with the built-in default set.
func NewRegistry(fonts FontConfig, log *zap.Logger, opts ...RegistryOption) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log:    log.Named("style-registry"),
		parser: NewParser(log),
		styles: make(map[string]StyleSet),
		fonts:  fonts,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.SetStyles(DefaultSetName, DefaultStyleSet(), false)
	return r
}

// CurrentStyleSetName returns the identity of the active style set.
func (r *Registry) CurrentStyleSetName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Fonts returns the current font configuration.
func (r *Registry) Fonts() FontConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fonts
}

// SetGlobalFont updates a single slot of the font configuration.
func (r *Registry) SetGlobalFont(key PlaceholderKey, face string, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch key {
	case PlaceholderPrimary:
		r.fonts.Primary = face
	case PlaceholderSecondary:
		r.fonts.Secondary = face
	}
	if size > 0 {
		r.fonts.Size = size
		r.fonts.Size3 = size - 2
	}
}

// SetStyleFont sets the primary (or secondary) face together with its size slot.
func (r *Registry) SetStyleFont(face string, size int, primary bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if primary {
		r.fonts.Primary = face
		r.fonts.Size = size
		r.fonts.Size3 = size - 2
	} else {
		r.fonts.Secondary = face
		r.fonts.Size2 = size
	}
}

// LoadStyleSheet loads a sheet from disk and makes it the active set,
// reusing cached data unless force is set. Read and parse failures never
// propagate: the registry falls back to the built-in default set, resets the
// persisted theme selection and reports failure through the return value.
func (r *Registry) LoadStyleSheet(path string, force bool) bool {
	if len(path) > 0 {
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			r.mu.Lock()
			_, cached := r.styles[path]
			if cached && !force {
				r.current = path
				r.mu.Unlock()
				r.log.Debug("Using cached style data", zap.String("sheet", path))
				return true
			}
			r.mu.Unlock()

			data, err := ReadSheet(path)
			if err != nil {
				r.log.Error("Failed to open style sheet", zap.String("sheet", path), zap.Error(err))
				r.fallbackToDefault()
				return false
			}
			set, _ := r.parser.Parse(data, false)
			r.log.Info("Loaded style sheet", zap.String("sheet", path), zap.Int("tags", len(set)))
			return r.SetStyles(path, set, false)
		}
	}
	r.log.Warn("Style sheet does not exist", zap.String("sheet", path))
	r.fallbackToDefault()
	return false
}

func (r *Registry) fallbackToDefault() {
	if r.themes != nil {
		r.themes.SetSyntaxTheme(DefaultSetName)
	}
	r.SetStyles(DefaultSetName, DefaultStyleSet(), false)
}

// SetStyles stores the given set in the cache under name and makes it
// current. With noMerge the set is stored as-is after attribute packing.
// Otherwise it is completed first: a default_style entry is ensured
// (borrowing the built-in one when missing) and every built-in tag absent
// from the set is back-filled - the reserved system-default tags with null
// items, everything else with a copy of default_style. Returns false without
// touching the cache when the set contains nil items.
func (r *Registry) SetStyles(name string, set StyleSet, noMerge bool) bool {
	if set == nil {
		r.log.Error("SetStyles expects a set of style items", zap.String("name", name))
		return false
	}
	for tag, item := range set {
		if item == nil {
			r.log.Error("Invalid data in style set", zap.String("name", name), zap.String("tag", tag))
			return false
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !noMerge {
		defaults := DefaultStyleSet()
		if _, ok := set[DefaultStyleTagName]; !ok {
			set[DefaultStyleTagName] = defaults[DefaultStyleTagName]
		}
		for tag := range defaults {
			if _, ok := set[tag]; ok {
				continue
			}
			if systemDefaultTags[tag] {
				set[tag] = NullStyleItem()
			} else {
				set[tag] = set[DefaultStyleTagName].Clone()
			}
		}
	}

	r.current = name
	r.styles[name] = PackStyleSet(set)
	return true
}

// PackStyleSet back-fills unset scalar attributes of every non-null item
// from the set's own default_style entry, in place. Sets without a
// default_style entry are returned untouched.
func PackStyleSet(set StyleSet) StyleSet {
	def, ok := set[DefaultStyleTagName]
	if !ok {
		return set
	}
	for _, item := range set {
		if item.IsNull() {
			continue
		}
		if len(item.Face()) == 0 {
			item.SetFace(def.Face())
		}
		if len(item.Fore()) == 0 {
			item.SetFore(def.Fore())
		}
		if len(item.Back()) == 0 {
			item.SetBack(def.Back())
		}
		if len(item.Size()) == 0 {
			item.SetSize(def.Size())
		}
	}
	return set
}

// GetStyleSet returns the active style set, or the built-in defaults when
// nothing was loaded yet. The returned set is live - use SetStyleTag for
// mutation.
func (r *Registry) GetStyleSet() StyleSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentSetLocked()
}

func (r *Registry) currentSetLocked() StyleSet {
	if set, ok := r.styles[r.current]; ok {
		return set
	}
	return DefaultStyleSet()
}

// HasNamedStyle checks whether a tag exists in the active set.
func (r *Registry) HasNamedStyle(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.currentSetLocked()[tag]
	return ok
}

// GetItemByName returns the item stored under tag. Placeholder-bearing items
// are resolved against the current fonts into a fresh item on every lookup,
// leaving the cache untouched. Unknown tags yield a fresh empty item.
func (r *Registry) GetItemByName(tag string) *StyleItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.currentSetLocked()[tag]
	if !ok {
		return &StyleItem{}
	}
	if s := item.String(); HasPlaceholder(s) {
		fresh := &StyleItem{}
		fresh.SetAttrFromStr(ExpandPlaceholders(s, r.fonts))
		return fresh
	}
	return item
}

// GetStyleByName returns the compiled style specification string for tag,
// with the modifiers label stripped: the rendering control wants bare
// comma-joined modifier keywords after the scalar attributes. Unknown tags
// yield an empty string.
func (r *Registry) GetStyleByName(tag string) string {
	if !r.HasNamedStyle(tag) {
		return ""
	}
	return strings.ReplaceAll(r.GetItemByName(tag).String(), "modifiers:", "")
}

// GetDefaultForeColor returns the default style foreground, black when unset.
func (r *Registry) GetDefaultForeColor() string {
	if fore := r.GetItemByName(DefaultStyleTagName).Fore(); len(fore) > 0 {
		return fore
	}
	return "#000000"
}

// GetDefaultBackColor returns the default style background, white when unset.
func (r *Registry) GetDefaultBackColor() string {
	if back := r.GetItemByName(DefaultStyleTagName).Back(); len(back) > 0 {
		return back
	}
	return "#FFFFFF"
}

// SetStyleTag replaces the value of a single tag in the active set.
func (r *Registry) SetStyleTag(tag string, item *StyleItem) bool {
	if item == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.styles[r.current]
	if !ok {
		return false
	}
	set[tag] = item
	return true
}

// SetSyntax validates the requested bindings, resolves each tag to its
// compiled style string and records the valid subset as the current syntax
// binding list. Invalid pairs - empty tag, unresolvable style id - are
// dropped silently.
func (r *Registry) SetSyntax(specs []SyntaxSpec) []SyntaxBinding {
	valid := make([]SyntaxBinding, 0, len(specs))
	for _, spec := range specs {
		if len(spec.Tag) == 0 {
			continue
		}
		id, ok := ResolveStyleID(spec.StyleID)
		if !ok {
			continue
		}
		valid = append(valid, SyntaxBinding{ID: id, Tag: spec.Tag, Style: r.GetStyleByName(spec.Tag)})
	}
	r.mu.Lock()
	r.syntax = valid
	r.mu.Unlock()
	return valid
}

// SyntaxBindings returns the currently applied bindings in order.
func (r *Registry) SyntaxBindings() []SyntaxBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SyntaxBinding, len(r.syntax))
	copy(out, r.syntax)
	return out
}

// FindTagByID finds the style tag bound to the given renderer style id,
// falling back to default_style when nothing matches.
func (r *Registry) FindTagByID(id int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.syntax {
		if b.ID == id {
			return b.Tag
		}
	}
	return DefaultStyleTagName
}
