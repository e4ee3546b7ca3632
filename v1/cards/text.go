package cards

import (
	"strings"
)

// EmbeddingText is the text embedded for semantic search. Only the searchable
// properties take part; the raw mana cost, collector number, legalities and
// image URL are left out.
func (c *Card) EmbeddingText() string {
	var b strings.Builder

	line := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}
	opt := func(label string, value *string) {
		if value != nil {
			line(label, *value)
		}
	}
	list := func(label string, values []string) {
		line(label, strings.Join(values, ", "))
	}

	line("Name", c.Name)
	opt("Mana cost", c.ManaCostTextExpanded)
	list("Colors", c.Colors)
	list("Color identity", c.ColorIdentity)
	opt("Type", c.Type)
	list("Subtypes", c.Subtypes)
	opt("Rarity", c.Rarity)
	opt("Text", c.Text)
	opt("Flavor", c.Flavor)
	opt("Power", c.Power)
	opt("Toughness", c.Toughness)
	opt("Loyalty", c.Loyalty)

	return strings.TrimRight(b.String(), "\n")
}
