package config

import "go.uber.org/fx"

// Module supplies every section of c to the Fx container: the logger,
// tracer, metrics, vectorstore, minio, ingest, search and server configs by
// value and the embedding config as *embedding.Config.
func Module(c *Config) fx.Option {
	return fx.Module("config",
		fx.Supply(
			c.Logger,
			c.Tracer,
			c.Metrics,
			&c.Embedding,
			c.VectorStore,
			c.Minio,
			c.Ingest,
			c.Search,
			c.Server,
		),
	)
}
