package manacost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		payload string
		kind    Kind
		raw     string
	}{
		{"7", KindGeneric, "7"},
		{"w", KindColor, "W"},
		{"C", KindColorless, "C"},
		{"S", KindSnow, "S"},
		{"x", KindVariable, "X"},
		{"T", KindTap, "T"},
		{"Q", KindUntap, "Q"},
		{"G/U", KindHybrid, "G/U"},
		{"/", KindUnknown, "/"},
		{"P", KindUnknown, "P"},
		{"HALF", KindUnknown, "HALF"},
		{"", KindUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			s := Classify(tt.payload)
			assert.Equal(t, tt.kind, s.Kind, "kind is %s", s.Kind)
			assert.Equal(t, tt.raw, s.Raw)
		})
	}
}

func TestClassify_Fields(t *testing.T) {
	generic := Classify("010")
	assert.Equal(t, "10", generic.Amount)

	color := Classify("B")
	assert.Equal(t, "black", color.Color)

	hybrid := Classify("2/R/")
	if assert.Len(t, hybrid.Parts, 2) {
		assert.Equal(t, PartGeneric, hybrid.Parts[0].Kind)
		assert.Equal(t, "2", hybrid.Parts[0].Amount)
		assert.Equal(t, PartColor, hybrid.Parts[1].Kind)
		assert.Equal(t, "red", hybrid.Parts[1].Color)
	}
}

func TestClassifyPart(t *testing.T) {
	tests := []struct {
		part string
		kind PartKind
		want string
	}{
		{"", PartEmpty, ""},
		{"  ", PartEmpty, ""},
		{"03", PartGeneric, "3 colourless"},
		{"p", PartPhyrexian, "2 life"},
		{"G", PartColor, "green"},
		{"C", PartColorless, "colourless"},
		{"S", PartSnow, "snow"},
		{"x", PartUnknown, "X"},
	}

	for _, tt := range tests {
		p := ClassifyPart(tt.part)
		assert.Equal(t, tt.kind, p.Kind, "part %q", tt.part)
		assert.Equal(t, tt.want, p.Describe(), "part %q", tt.part)
	}
}

func TestExpandSymbol(t *testing.T) {
	assert.Equal(t, "1 blue mana", ExpandSymbol("U"))
	assert.Equal(t, "black or green hybrid mana", ExpandSymbol("b/g"))
	assert.Equal(t, "E", ExpandSymbol("E"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "hybrid", KindHybrid.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
