package cards

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cardforge/mtgsearch/v1/manacost"
)

// Row is one CSV record addressed by column name. A missing column and an
// empty cell are both treated as no value.
type Row map[string]string

func (r Row) get(column string) (string, bool) {
	v, ok := r[column]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "nan") {
		return "", false
	}
	return v, true
}

func (r Row) ptr(column string) *string {
	v, ok := r.get(column)
	if !ok {
		return nil
	}
	return &v
}

// Preprocess turns a CSV row into a Card. It reports false when the row has
// no usable multiverse id; such rows are skipped by ingestion.
//
// List columns hold list literals such as "['W', 'U']". The legalities column
// holds a mapping literal such as "{'modern': 'Legal'}", kept verbatim and
// also reduced to the sorted list of formats marked Legal.
func Preprocess(row Row) (*Card, bool) {
	id, ok := parseMultiverseID(row)
	if !ok {
		return nil, false
	}

	c := &Card{
		MultiverseID:  id,
		ManaCost:      row.ptr("mana_cost"),
		Colors:        parseList(row, "colors"),
		ColorIdentity: parseList(row, "color_identity"),
		Type:          row.ptr("type"),
		Subtypes:      parseList(row, "subtypes"),
		Rarity:        row.ptr("rarity"),
		Text:          row.ptr("text"),
		Flavor:        row.ptr("flavor"),
		Number:        parseInteger(row, "number"),
		Power:         row.ptr("power"),
		Toughness:     row.ptr("toughness"),
		Loyalty:       normalizeNumeric(row.ptr("loyalty")),
		Legalities:    row.ptr("legalities"),
		ImageURL:      row.ptr("image_url"),
	}
	if name, ok := row.get("name"); ok {
		c.Name = name
	}
	c.ManaCostTextExpanded = manacost.ExpandPtr(c.ManaCost)
	c.LegalFormats = legalFormats(c.Legalities)

	return c, true
}

func parseMultiverseID(row Row) (int64, bool) {
	raw, ok := row.get("multiverse_id")
	if !ok {
		return 0, false
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, true
	}
	// numeric columns with gaps are often exported as floats, e.g. "409574.0"
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

func parseInteger(row Row, column string) *int64 {
	raw, ok := row.get(column)
	if !ok {
		return nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int64(f)
	return &n
}

// normalizeNumeric renders integral float text ("3.0") as an integer ("3").
func normalizeNumeric(v *string) *string {
	if v == nil {
		return nil
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return v
	}
	s := strconv.FormatInt(int64(f), 10)
	return &s
}

// parseList reads a list literal. The literal syntax is a subset of YAML flow
// sequences, so it is decoded as one. Malformed literals yield nil.
func parseList(row Row, column string) []string {
	raw, ok := row.get(column)
	if !ok {
		return nil
	}
	var items []string
	if err := yaml.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	if items == nil {
		items = []string{}
	}
	return items
}

func legalFormats(legalities *string) []string {
	if legalities == nil {
		return nil
	}
	var byFormat map[string]string
	if err := yaml.Unmarshal([]byte(*legalities), &byFormat); err != nil {
		return nil
	}
	formats := make([]string, 0, len(byFormat))
	for format, status := range byFormat {
		if strings.EqualFold(status, "Legal") {
			formats = append(formats, strings.ToLower(format))
		}
	}
	sort.Strings(formats)
	return formats
}
