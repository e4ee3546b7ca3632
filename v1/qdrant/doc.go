// Package qdrant provides the Qdrant implementation of vectordb.Service.
//
// [NewQdrantClient] connects over gRPC (plain for a local instance, TLS with an
// API key for Qdrant Cloud) and fails fast with a health check. [Adapter] wraps
// the client and implements the database-agnostic [vectordb.Service]:
//
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{
//	    Config: qdrant.FromEndpoint("localhost"),
//	    Logger: log,
//	})
//	if err != nil {
//	    return err
//	}
//	var db vectordb.Service = qdrant.NewAdapter(client)
//
// Collections are created with cosine distance. Inserts are upserts sent in
// batches of Config.BatchSize (200 by default) and wait for persistence.
// Point IDs must be UUIDs or unsigned integers.
//
// # Filters and payloads
//
// vectordb filter conditions are translated to Qdrant conditions. Matching a
// keyword against a list payload such as "colors" succeeds when any element
// matches. Payload values come back as plain Go values: strings, int64,
// float64, bool, []any and map[string]any.
//
// # Fx
//
// FXModule provides *QdrantClient, *Adapter and vectordb.Service and closes the
// connection on shutdown. It needs a *Config and a logger.Logger.
package qdrant
