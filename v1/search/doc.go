// Package search answers natural-language card queries.
//
// A query is embedded with the same model used at ingestion time and matched
// against the card collection by cosine similarity. Results farther than the
// maximum distance are dropped:
//
//	results, err := svc.Search(ctx, search.Query{Text: "flying dragon", Rarity: "rare"})
//	if errors.Is(err, search.ErrEmptyQuery) {
//		// reject the request
//	}
//
// Query embeddings are kept in an LRU cache so repeated searches skip the
// embedding round trip.
package search
