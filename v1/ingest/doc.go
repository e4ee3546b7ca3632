// Package ingest loads a cards export into the vector store.
//
// [Loader.Rebuild] streams the CSV in chunks of 200 rows, skips rows without a
// multiverse id, embeds each chunk's cards with bounded concurrency and
// upserts them under deterministic point IDs, so re-running a load updates
// cards in place. Options.Limit stops the run after that many cards were
// stored. Progress is logged per chunk, counted in the cards_ingested_total
// and card_rows_skipped_total metrics, and traced with one span per run and
// per chunk.
package ingest
