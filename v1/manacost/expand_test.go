package manacost

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"generic amounts", "{1}{2}{3}", "1 colourless mana, 2 colourless mana, 3 colourless mana"},
		{"white", "{W}", "1 white mana"},
		{"blue", "{U}", "1 blue mana"},
		{"black", "{B}", "1 black mana"},
		{"red", "{R}", "1 red mana"},
		{"green", "{G}", "1 green mana"},
		{"colourless symbol", "{C}", "1 colourless mana"},
		{"snow", "{S}", "1 snow mana"},
		{"variable", "{X}", "X mana"},
		{"tap", "{T}", "tap symbol"},
		{"untap", "{Q}", "untap symbol"},
		{"hybrid colour pair", "{W/U}", "white or blue hybrid mana"},
		{"phyrexian", "{R/P}", "red or 2 life hybrid mana"},
		{"generic hybrid", "{2/W}", "2 colourless or white hybrid mana"},
		{"colourless hybrid", "{C/W}", "colourless or white hybrid mana"},
		{"snow hybrid", "{S/G}", "snow or green hybrid mana"},
		{"unknown hybrid part", "{W/Z}", "white or Z hybrid mana"},
		{"three part hybrid", "{2/W/B}", "2 colourless or white or black hybrid mana"},
		{"unknown symbol", "{Z}", "Z"},
		{"unknown multi letter", "{HW}", "HW"},
		{"mixed", "{2}{W}{W/P}", "2 colourless mana, 1 white mana, white or 2 life hybrid mana"},
		{"leading zeros", "{02}", "2 colourless mana"},
		{"zero", "{0}", "0 colourless mana"},
		{"all zeros", "{000}", "0 colourless mana"},
		{"large amount", "{1000000000000000000000}", "1000000000000000000000 colourless mana"},
		{"lower case", "{w}{u/p}{x}", "1 white mana, blue or 2 life hybrid mana, X mana"},
		{"surrounding whitespace", "{ 3 }{ r }", "3 colourless mana, 1 red mana"},
		{"text outside brackets", "cost: {1} and {G}!", "1 colourless mana, 1 green mana"},
		{"empty groups are skipped", "{}{1}{ }", "1 colourless mana"},
		{"hybrid with empty side", "{W/}", "white hybrid mana"},
		{"bare separator", "{/}", "/"},
		{"unterminated group", "{2}{W", "2 colourless mana"},
		{"nested opening brace", "{{2}", "{2"},
		{"split card separator", "{1}{R} // {2}{U}", "1 colourless mana, 1 red mana, 2 colourless mana, 1 blue mana"},
		{"non ascii digit", "{²}", "²"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Expand(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_Absent(t *testing.T) {
	for _, in := range []string{"", "2WW", "}{", "{", "{}", "{ }", "{}{}"} {
		got, ok := Expand(in)
		assert.False(t, ok, "input %q", in)
		assert.Empty(t, got, "input %q", in)
	}
}

func TestExpandPtr(t *testing.T) {
	assert.Nil(t, ExpandPtr(nil))

	empty := ""
	assert.Nil(t, ExpandPtr(&empty))

	onlyEmptyGroups := "{}"
	assert.Nil(t, ExpandPtr(&onlyEmptyGroups))

	cost := "{3}{G}{G}"
	got := ExpandPtr(&cost)
	require.NotNil(t, got)
	assert.Equal(t, "3 colourless mana, 1 green mana, 1 green mana", *got)
}

func TestExpand_Deterministic(t *testing.T) {
	const in = "{X}{2/U}{B/P}{S}"
	first, ok := Expand(in)
	require.True(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := Expand(in)
			assert.True(t, ok)
			assert.Equal(t, first, got)
		}()
	}
	wg.Wait()
}

func TestExtractSymbols(t *testing.T) {
	assert.Nil(t, ExtractSymbols(""))
	assert.Nil(t, ExtractSymbols("no brackets"))
	assert.Equal(t, []string{"2", "W/P", "", " x "}, ExtractSymbols("{2}{W/P}{}{ x }"))
	assert.Equal(t, []string{"1"}, ExtractSymbols("{1}}{"))
}
