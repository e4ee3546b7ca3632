package manacost

import "strings"

// PartKind identifies one side of a hybrid symbol.
type PartKind int

const (
	PartUnknown PartKind = iota
	PartEmpty
	PartGeneric
	PartPhyrexian
	PartColor
	PartColorless
	PartSnow
)

// HybridPart is one "/"-separated side of a hybrid symbol.
type HybridPart struct {
	Kind   PartKind
	Raw    string
	Amount string
	Color  string
}

// ClassifyPart classifies one side of a hybrid symbol.
func ClassifyPart(part string) HybridPart {
	raw := normalize(part)

	switch {
	case raw == "":
		return HybridPart{Kind: PartEmpty}
	case isDigits(raw):
		return HybridPart{Kind: PartGeneric, Raw: raw, Amount: trimLeadingZeros(raw)}
	case raw == "P":
		return HybridPart{Kind: PartPhyrexian, Raw: raw}
	}
	if color, ok := colorNames[raw]; ok {
		return HybridPart{Kind: PartColor, Raw: raw, Color: color}
	}
	switch raw {
	case "C":
		return HybridPart{Kind: PartColorless, Raw: raw}
	case "S":
		return HybridPart{Kind: PartSnow, Raw: raw}
	}
	return HybridPart{Kind: PartUnknown, Raw: raw}
}

// Describe renders the part; empty parts render as "".
func (p HybridPart) Describe() string {
	switch p.Kind {
	case PartEmpty:
		return ""
	case PartGeneric:
		return p.Amount + " colourless"
	case PartPhyrexian:
		return "2 life"
	case PartColor:
		return p.Color
	case PartColorless:
		return "colourless"
	case PartSnow:
		return "snow"
	default:
		return p.Raw
	}
}

// splitHybrid splits on every "/" and keeps the parts that describe to something.
// Symbols with three or more parts are joined the same way as two-part ones.
func splitHybrid(raw string) []HybridPart {
	var parts []HybridPart
	for _, piece := range strings.Split(raw, "/") {
		part := ClassifyPart(piece)
		if part.Describe() == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

func describeHybrid(parts []HybridPart) string {
	phrases := make([]string, 0, len(parts))
	for _, p := range parts {
		phrases = append(phrases, p.Describe())
	}
	return strings.Join(phrases, " or ") + " hybrid mana"
}
