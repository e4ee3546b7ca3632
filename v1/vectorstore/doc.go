// Package vectorstore selects and connects the Qdrant deployment holding the
// card collection.
//
// Two backends are supported:
//
//   - local: a self-hosted Qdrant addressed by QDRANT_HOST and QDRANT_PORT
//     (gRPC, no TLS).
//   - cloud: a Qdrant Cloud cluster addressed by QDRANT_CLOUD_URL and
//     QDRANT_CLOUD_API_KEY, always over TLS on gRPC port 6334 unless
//     QDRANT_CLOUD_PORT overrides it.
//
// Missing settings are reported before any connection attempt with an error
// wrapping [ErrMissingSetting] that names the variables.
package vectorstore
