package segments

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/promptline/pkg/platform"
)

// Entry is one author-supplied symbol mapping before normalization.
type Entry struct {
	Key    string
	Symbol string
}

// SymbolTable maps normalized OS identifiers to display symbols. Keys
// are canonicalized to lowercase at construction, so two spellings of
// the same identifier can never coexist and lookups succeed under any
// casing. Insertion order is preserved for inspection and
// serialization; lookup is by key only.
type SymbolTable struct {
	keys    []string
	symbols map[string]string
}

// NewSymbolTable builds a normalized table from ordered entries. When
// two raw keys collide after lowercasing, the later entry wins and no
// error is raised; this lets later configuration layers override
// earlier ones without conflict resolution upstream.
func NewSymbolTable(entries ...Entry) *SymbolTable {
	t := &SymbolTable{symbols: make(map[string]string, len(entries))}
	for _, e := range entries {
		key := strings.ToLower(e.Key)
		if _, exists := t.symbols[key]; !exists {
			t.keys = append(t.keys, key)
		}
		t.symbols[key] = e.Symbol
	}
	return t
}

// NewSymbolTableFromMap builds a table from an unordered mapping.
// Go maps carry no iteration order, so raw keys are processed in
// sorted order to keep collision resolution deterministic: of two
// keys that normalize identically, the lexicographically later one
// wins.
func NewSymbolTableFromMap(raw map[string]string) *SymbolTable {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Symbol: raw[k]})
	}
	return NewSymbolTable(entries...)
}

// Lookup returns the symbol for an identifier under any casing. The
// empty string is a valid symbol, distinct from absence.
func (t *SymbolTable) Lookup(identifier string) (string, bool) {
	if t == nil {
		return "", false
	}
	symbol, ok := t.symbols[strings.ToLower(identifier)]
	return symbol, ok
}

// Len reports the number of entries.
func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the normalized keys in insertion order.
func (t *SymbolTable) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Resolve looks an identifier up through an ordered chain of tables
// and returns the first hit. A hit with an empty symbol is honored;
// an identifier absent from every table resolves to ("", false),
// which callers treat as "omit the symbol", never as an error.
func Resolve(identifier string, sources ...*SymbolTable) (string, bool) {
	for _, table := range sources {
		if symbol, ok := table.Lookup(identifier); ok {
			return symbol, true
		}
	}
	return "", false
}

var (
	defaultSymbolsOnce sync.Once
	defaultSymbols     *SymbolTable
)

// DefaultSymbols returns the built-in symbol table. It covers every
// member of the platform enumeration, Unknown included, so resolution
// always produces a symbol absent user configuration. The table is
// built once and shared read-only.
func DefaultSymbols() *SymbolTable {
	defaultSymbolsOnce.Do(func() {
		defaultSymbols = NewSymbolTable(
			Entry{"Alpine", "🏔️ "},
			Entry{"Amazon", "🙂 "},
			Entry{"Android", "🤖 "},
			Entry{"Arch", "🎗️ "},
			Entry{"CentOS", "💠 "},
			Entry{"Debian", "🌀 "},
			Entry{"DragonFly", "🐉 "},
			Entry{"Emscripten", "🔗 "},
			Entry{"EndeavourOS", "🚀 "},
			Entry{"Fedora", "🎩 "},
			Entry{"FreeBSD", "😈 "},
			Entry{"Garuda", "🦅 "},
			Entry{"Gentoo", "🗜️ "},
			Entry{"HardenedBSD", "🛡️ "},
			Entry{"Illumos", "🐦 "},
			Entry{"Linux", "🐧 "},
			Entry{"Macos", "🍎 "},
			Entry{"Manjaro", "🥭 "},
			Entry{"Mariner", "🌊 "},
			Entry{"MidnightBSD", "🌘 "},
			Entry{"Mint", "🌿 "},
			Entry{"NetBSD", "🚩 "},
			Entry{"NixOS", "❄️ "},
			Entry{"OpenBSD", "🐡 "},
			Entry{"openSUSE", "🦎 "},
			Entry{"OracleLinux", "🦴 "},
			Entry{"Pop", "🍭 "},
			Entry{"Raspbian", "🍓 "},
			Entry{"Redhat", "🎩 "},
			Entry{"RedHatEnterprise", "🎩 "},
			Entry{"Redox", "🧪 "},
			Entry{"Solus", "⛵ "},
			Entry{"SUSE", "🦎 "},
			Entry{"Ubuntu", "🎯 "},
			Entry{"Unknown", "❓ "},
			Entry{"Windows", "🪟 "},
		)
	})
	return defaultSymbols
}

// symbolFor resolves the display symbol for an OS family through the
// override table, then the defaults.
func symbolFor(t platform.Type, overrides *SymbolTable) (string, bool) {
	return Resolve(t.String(), overrides, DefaultSymbols())
}
