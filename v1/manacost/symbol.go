package manacost

import "strings"

// Kind identifies what a single bracket group of a mana cost stands for.
type Kind int

const (
	// KindUnknown is any payload that matches no other kind. It is rendered verbatim.
	KindUnknown Kind = iota
	// KindGeneric is an all-digit payload: an amount of colourless mana.
	KindGeneric
	// KindColor is one of the five colour codes W, U, B, R and G.
	KindColor
	// KindColorless is the colourless mana symbol C.
	KindColorless
	// KindSnow is the snow mana symbol S.
	KindSnow
	// KindVariable is the variable amount X.
	KindVariable
	// KindTap is the tap symbol T.
	KindTap
	// KindUntap is the untap symbol Q.
	KindUntap
	// KindHybrid is a payload with at least one "/" and one describable part.
	KindHybrid
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindGeneric:   "generic",
	KindColor:     "color",
	KindColorless: "colorless",
	KindSnow:      "snow",
	KindVariable:  "variable",
	KindTap:       "tap",
	KindUntap:     "untap",
	KindHybrid:    "hybrid",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// colorNames maps the single-letter colour codes to their names.
var colorNames = map[string]string{
	"W": "white",
	"U": "blue",
	"B": "black",
	"R": "red",
	"G": "green",
}

// symbolPhrases holds the fixed single-letter symbols other than colours.
var symbolPhrases = map[string]struct {
	kind   Kind
	phrase string
}{
	"C": {KindColorless, "1 colourless mana"},
	"S": {KindSnow, "1 snow mana"},
	"X": {KindVariable, "X mana"},
	"T": {KindTap, "tap symbol"},
	"Q": {KindUntap, "untap symbol"},
}

// Symbol is one classified payload of a mana cost.
type Symbol struct {
	Kind Kind
	// Raw is the normalized (trimmed, upper-cased) payload.
	Raw string
	// Amount is the decimal amount of a KindGeneric symbol without leading zeros.
	Amount string
	// Color is the colour name of a KindColor symbol.
	Color string
	// Parts holds the describable parts of a KindHybrid symbol in source order.
	Parts []HybridPart
}

// Classify normalizes payload and assigns it exactly one Kind. The first
// matching rule wins: digits, colour code, fixed symbol, hybrid, unknown.
func Classify(payload string) Symbol {
	raw := normalize(payload)

	if isDigits(raw) {
		return Symbol{Kind: KindGeneric, Raw: raw, Amount: trimLeadingZeros(raw)}
	}
	if color, ok := colorNames[raw]; ok {
		return Symbol{Kind: KindColor, Raw: raw, Color: color}
	}
	if fixed, ok := symbolPhrases[raw]; ok {
		return Symbol{Kind: fixed.kind, Raw: raw}
	}
	if strings.Contains(raw, "/") {
		if parts := splitHybrid(raw); len(parts) > 0 {
			return Symbol{Kind: KindHybrid, Raw: raw, Parts: parts}
		}
	}
	return Symbol{Kind: KindUnknown, Raw: raw}
}

// Describe renders the symbol as a phrase. Unknown symbols render as their payload.
func (s Symbol) Describe() string {
	switch s.Kind {
	case KindGeneric:
		return s.Amount + " colourless mana"
	case KindColor:
		return "1 " + s.Color + " mana"
	case KindColorless, KindSnow, KindVariable, KindTap, KindUntap:
		return symbolPhrases[s.Raw].phrase
	case KindHybrid:
		return describeHybrid(s.Parts)
	default:
		return s.Raw
	}
}

// ExpandSymbol classifies and describes a single payload.
func ExpandSymbol(payload string) string {
	return Classify(payload).Describe()
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// trimLeadingZeros keeps arbitrarily long amounts exact instead of parsing them.
func trimLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
