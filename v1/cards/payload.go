package cards

import (
	"fmt"
	"math"
	"strconv"
)

// Payload converts the card to a vector store payload keyed by its JSON
// property names. Nil values are kept as explicit nulls.
func (c *Card) Payload() map[string]any {
	return map[string]any{
		"multiverse_id":           c.MultiverseID,
		"name":                    c.Name,
		"mana_cost":               strOrNil(c.ManaCost),
		"mana_cost_text_expanded": strOrNil(c.ManaCostTextExpanded),
		"colors":                  listOrNil(c.Colors),
		"color_identity":          listOrNil(c.ColorIdentity),
		"type":                    strOrNil(c.Type),
		"subtypes":                listOrNil(c.Subtypes),
		"rarity":                  strOrNil(c.Rarity),
		"text":                    strOrNil(c.Text),
		"flavor":                  strOrNil(c.Flavor),
		"number":                  intOrNil(c.Number),
		"power":                   strOrNil(c.Power),
		"toughness":               strOrNil(c.Toughness),
		"loyalty":                 strOrNil(c.Loyalty),
		"legalities":              strOrNil(c.Legalities),
		"legal_formats":           listOrNil(c.LegalFormats),
		"image_url":               strOrNil(c.ImageURL),
	}
}

// FromPayload rebuilds a card from a payload read back from the vector store.
// Numbers may arrive as int64 or float64 and lists as []any or []string.
func FromPayload(p map[string]any) (*Card, error) {
	if p == nil {
		return nil, fmt.Errorf("cards: empty payload")
	}

	id, ok, err := payloadInt(p["multiverse_id"])
	if err != nil {
		return nil, fmt.Errorf("cards: multiverse_id: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("cards: payload has no multiverse_id")
	}

	c := &Card{MultiverseID: id}
	if name := payloadString(p["name"]); name != nil {
		c.Name = *name
	}
	c.ManaCost = payloadString(p["mana_cost"])
	c.ManaCostTextExpanded = payloadString(p["mana_cost_text_expanded"])
	c.Colors = payloadList(p["colors"])
	c.ColorIdentity = payloadList(p["color_identity"])
	c.Type = payloadString(p["type"])
	c.Subtypes = payloadList(p["subtypes"])
	c.Rarity = payloadString(p["rarity"])
	c.Text = payloadString(p["text"])
	c.Flavor = payloadString(p["flavor"])
	c.Power = payloadString(p["power"])
	c.Toughness = payloadString(p["toughness"])
	c.Loyalty = payloadString(p["loyalty"])
	c.Legalities = payloadString(p["legalities"])
	c.LegalFormats = payloadList(p["legal_formats"])
	c.ImageURL = payloadString(p["image_url"])

	if n, ok, err := payloadInt(p["number"]); err != nil {
		return nil, fmt.Errorf("cards: number: %w", err)
	} else if ok {
		c.Number = &n
	}

	return c, nil
}

func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intOrNil(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

func listOrNil(values []string) any {
	if values == nil {
		return nil
	}
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return items
}

func payloadString(v any) *string {
	switch s := v.(type) {
	case string:
		return &s
	default:
		return nil
	}
}

func payloadList(v any) []string {
	switch l := v.(type) {
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func payloadInt(v any) (int64, bool, error) {
	switch n := v.(type) {
	case nil:
		return 0, false, nil
	case int:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, false, fmt.Errorf("not an integer: %v", n)
		}
		return int64(n), true, nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false, err
		}
		return i, true, nil
	default:
		return 0, false, fmt.Errorf("unexpected type %T", v)
	}
}
