package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/promptline/pkg/platform"
)

func TestNewSymbolTableNormalizesKeys(t *testing.T) {
	table := NewSymbolTable(
		Entry{"Arch", "🎗️ "},
		Entry{"WINDOWS", "🪟 "},
		Entry{"openSUSE", "🦎 "},
	)

	assert.Equal(t, []string{"arch", "windows", "opensuse"}, table.Keys())

	// Lookup succeeds under any casing.
	for _, key := range []string{"arch", "Arch", "ARCH", "aRcH"} {
		symbol, ok := table.Lookup(key)
		assert.True(t, ok, "lookup %q failed", key)
		assert.Equal(t, "🎗️ ", symbol)
	}
}

func TestNewSymbolTableCollisionLastWriteWins(t *testing.T) {
	t.Run("ordered entries", func(t *testing.T) {
		table := NewSymbolTable(
			Entry{"Arch", "first"},
			Entry{"arch", "second"},
		)

		assert.Equal(t, 1, table.Len())
		symbol, ok := table.Lookup("ARCH")
		require.True(t, ok)
		assert.Equal(t, "second", symbol)
	})

	t.Run("map input resolves collisions deterministically", func(t *testing.T) {
		// Raw keys are processed in sorted order, so of "Arch" and
		// "arch" the lexicographically later "arch" wins — every
		// time, regardless of map iteration order.
		for i := 0; i < 20; i++ {
			table := NewSymbolTableFromMap(map[string]string{
				"Arch": "upper",
				"arch": "lower",
			})
			symbol, ok := table.Lookup("arch")
			require.True(t, ok)
			assert.Equal(t, "lower", symbol)
		}
	})
}

func TestSymbolTableEmptyValue(t *testing.T) {
	table := NewSymbolTable(Entry{"Unknown", ""})

	symbol, ok := table.Lookup("unknown")
	assert.True(t, ok, "empty symbol must be present, not absent")
	assert.Equal(t, "", symbol)
}

func TestSymbolTableNil(t *testing.T) {
	var table *SymbolTable

	_, ok := table.Lookup("arch")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Keys())
}

func TestResolve(t *testing.T) {
	overrides := NewSymbolTable(
		Entry{"ARCH", "custom-arch "},
		Entry{"Unknown", ""},
	)

	t.Run("override beats default", func(t *testing.T) {
		symbol, ok := Resolve("Arch", overrides, DefaultSymbols())
		require.True(t, ok)
		assert.Equal(t, "custom-arch ", symbol)
	})

	t.Run("empty override beats default", func(t *testing.T) {
		symbol, ok := Resolve("Unknown", overrides, DefaultSymbols())
		require.True(t, ok)
		assert.Equal(t, "", symbol)
	})

	t.Run("falls back to default table", func(t *testing.T) {
		symbol, ok := Resolve("Debian", overrides, DefaultSymbols())
		require.True(t, ok)
		assert.Equal(t, "🌀 ", symbol)
	})

	t.Run("identifier casing does not matter", func(t *testing.T) {
		a, okA := Resolve("debian", overrides, DefaultSymbols())
		b, okB := Resolve("DEBIAN", overrides, DefaultSymbols())
		assert.Equal(t, okA, okB)
		assert.Equal(t, a, b)
	})

	t.Run("absent from every table resolves to absence", func(t *testing.T) {
		_, ok := Resolve("TempleOS", overrides, DefaultSymbols())
		assert.False(t, ok)
	})

	t.Run("no sources at all", func(t *testing.T) {
		_, ok := Resolve("Arch")
		assert.False(t, ok)
	})
}

func TestDefaultSymbolsCoverEveryFamily(t *testing.T) {
	empty := NewSymbolTable()

	for _, typ := range platform.Types() {
		symbol, ok := symbolFor(typ, empty)
		assert.True(t, ok, "no default symbol for %q", typ)
		assert.NotEmpty(t, symbol, "default symbol for %q is empty", typ)
	}
}

func TestDefaultSymbolsKnownValues(t *testing.T) {
	tests := []struct {
		typ  platform.Type
		want string
	}{
		{platform.Alpine, "🏔️ "},
		{platform.Arch, "🎗️ "},
		{platform.Linux, "🐧 "},
		{platform.Macos, "🍎 "},
		{platform.NixOS, "❄️ "},
		{platform.OpenSUSE, "🦎 "},
		{platform.Ubuntu, "🎯 "},
		{platform.Unknown, "❓ "},
		{platform.Windows, "🪟 "},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			symbol, ok := DefaultSymbols().Lookup(tt.typ.String())
			require.True(t, ok)
			assert.Equal(t, tt.want, symbol)
		})
	}
}

func TestDefaultSymbolsIsShared(t *testing.T) {
	// The default table is a process-wide constant, built once.
	assert.Same(t, DefaultSymbols(), DefaultSymbols())
}
