// Package manacost expands Magic: The Gathering mana cost notation into prose.
//
// A mana cost is written as a run of bracketed symbols, for example "{2}{W/P}{X}".
// Each payload is classified into a Kind (generic amount, colour, colourless, snow,
// variable, tap, untap, hybrid or unknown) and rendered as a phrase; the phrases are
// joined with ", ":
//
//	desc, ok := manacost.Expand("{2}{W}{W/P}")
//	// desc == "2 colourless mana, 1 white mana, white or 2 life hybrid mana", ok == true
//
// Hybrid symbols are split on every "/", so "{2/W/B}" renders as
// "2 colourless or white or black hybrid mana". Symbols that are not recognised are
// passed through verbatim ("{Z}" renders as "Z") and empty groups such as "{}" are
// skipped. When nothing can be described Expand reports false instead of returning an
// empty string; ExpandPtr maps that to nil for nullable record fields.
//
// All functions are pure and safe for concurrent use.
package manacost
