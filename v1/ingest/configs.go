package ingest

import "github.com/cardforge/mtgsearch/v1/cards"

// DefaultSource is the cards export read when no source is configured.
const DefaultSource = "data/all_mtg_cards.csv"

// Config controls how card exports are loaded.
type Config struct {
	// Source is a local CSV path or an "s3://bucket/key" location.
	Source string `yaml:"source" envconfig:"CARDS_CSV_PATH"`

	// ChunkSize is the number of CSV rows processed per step.
	ChunkSize int `yaml:"chunk_size" envconfig:"INGEST_CHUNK_SIZE"`

	// Concurrency bounds the embedding requests in flight for one chunk.
	Concurrency int `yaml:"concurrency" envconfig:"INGEST_CONCURRENCY"`
}

// DefaultConfig reads the local export in chunks of 200 rows.
func DefaultConfig() Config {
	return Config{
		Source:      DefaultSource,
		ChunkSize:   cards.DefaultChunkSize,
		Concurrency: 4,
	}
}

func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return cards.DefaultChunkSize
	}
	return c.ChunkSize
}

func (c Config) concurrency() int {
	if c.Concurrency <= 0 {
		return 1
	}
	return c.Concurrency
}
