// Package cards models Magic: The Gathering card records and prepares them
// for the vector store.
//
// A cards CSV export is streamed with [Reader] in chunks of rows. [Preprocess]
// turns a row into a [Card]: rows without a multiverse id are skipped, list
// literals are decoded, and the mana cost is expanded to words with package
// manacost. Each card has a deterministic [Card.PointID], the text that gets
// embedded ([Card.EmbeddingText]) and a payload representation
// ([Card.Payload], [FromPayload]).
package cards
