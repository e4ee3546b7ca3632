// Package vectordb defines the vector store contract the card pipeline depends on.
//
// [Service] covers what ingestion and search need: collection management,
// upserting embeddings with their card payload, filtered similarity search and a
// health probe. The Qdrant adapter in package qdrant implements it; tests use
// the generated [MockService].
//
// # Filters
//
// Filters are expressed with a small database-agnostic DSL:
//
//	filters := vectordb.NewFilterSet(
//	    vectordb.Must(
//	        vectordb.NewMatch("rarity", "rare"),
//	        vectordb.NewMatch("legal_formats", "modern"),
//	    ),
//	    vectordb.MustNot(vectordb.NewIsEmpty("image_url")),
//	)
//
// A FilterSet marshals to JSON, and condition types are recovered on unmarshal
// from their keys ("equalTo", "anyOf", "noneOf", range bounds, "isEmpty").
//
// # Scores
//
// Collections use cosine similarity. [SearchResult.Distance] converts the score
// back to the cosine distance the search API reports.
package vectordb
