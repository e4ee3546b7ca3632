package cards

import (
	"strconv"

	"github.com/google/uuid"
)

// cardNamespace scopes the deterministic point IDs derived from multiverse IDs.
var cardNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://gatherer.wizards.com/"))

// Card is one printed card as stored in the vector store.
// Optional values are nil when the source cell was empty.
type Card struct {
	MultiverseID         int64    `json:"multiverse_id"`
	Name                 string   `json:"name"`
	ManaCost             *string  `json:"mana_cost"`
	ManaCostTextExpanded *string  `json:"mana_cost_text_expanded"`
	Colors               []string `json:"colors"`
	ColorIdentity        []string `json:"color_identity"`
	Type                 *string  `json:"type"`
	Subtypes             []string `json:"subtypes"`
	Rarity               *string  `json:"rarity"`
	Text                 *string  `json:"text"`
	Flavor               *string  `json:"flavor"`
	Number               *int64   `json:"number"`
	Power                *string  `json:"power"`
	Toughness            *string  `json:"toughness"`
	Loyalty              *string  `json:"loyalty"`

	// Legalities is the raw per-format legality mapping as found in the CSV.
	Legalities *string `json:"legalities"`

	// LegalFormats lists the formats in which the card is legal, sorted.
	LegalFormats []string `json:"legal_formats"`

	ImageURL *string `json:"image_url"`
}

// PointID is the deterministic vector store ID of the card. Re-ingesting the
// same card overwrites its previous point.
func (c *Card) PointID() string {
	return uuid.NewSHA1(cardNamespace, []byte(strconv.FormatInt(c.MultiverseID, 10))).String()
}
