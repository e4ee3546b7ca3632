package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/cardforge/mtgsearch/v1/cards"
	"github.com/cardforge/mtgsearch/v1/embedding"
	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/metrics"
	"github.com/cardforge/mtgsearch/v1/tracer"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

const skipReasonNoMultiverseID = "missing_multiverse_id"

// ObjectOpener opens "s3://bucket/key" locations.
type ObjectOpener interface {
	OpenURL(ctx context.Context, location string) (io.ReadCloser, error)
}

// Options tune a single Rebuild run.
type Options struct {
	// Source overrides Config.Source when set.
	Source string

	// Limit stops the run once this many cards were stored. Zero means no limit.
	Limit int

	// Recreate drops the collection before loading.
	Recreate bool
}

// Stats summarises a Rebuild run.
type Stats struct {
	RowsRead    int `json:"rows_read"`
	CardsStored int `json:"cards_stored"`
	RowsSkipped int `json:"rows_skipped"`
}

// LoaderParams are the Loader's dependencies.
type LoaderParams struct {
	fx.In

	Config     Config
	Collection string `name:"collection"`
	DB         vectordb.Service
	Embedder   embedding.Embedder
	Metrics    metrics.MetricsCollector
	Tracer     *tracer.Tracer
	Logger     logger.Logger
	Objects    ObjectOpener `optional:"true"`
}

// Loader rebuilds the card collection from a cards export.
type Loader struct {
	cfg        Config
	collection string
	db         vectordb.Service
	embedder   embedding.Embedder
	metrics    metrics.MetricsCollector
	tracer     *tracer.Tracer
	log        logger.Logger
	objects    ObjectOpener
}

// NewLoader builds a Loader.
func NewLoader(p LoaderParams) *Loader {
	return &Loader{
		cfg:        p.Config,
		collection: p.Collection,
		db:         p.DB,
		embedder:   p.Embedder,
		metrics:    p.Metrics,
		tracer:     p.Tracer,
		log:        p.Logger,
		objects:    p.Objects,
	}
}

// Rebuild loads the export into the collection. The collection is created
// with the embedder's vector size when missing, or dropped first when
// opts.Recreate is set. Rows are read in chunks; each chunk's cards are
// embedded concurrently and upserted before the next chunk is read.
func (l *Loader) Rebuild(ctx context.Context, opts Options) (Stats, error) {
	ctx, span := l.tracer.StartSpan(ctx, "ingest.Rebuild")
	defer span.End()

	source := opts.Source
	if source == "" {
		source = l.cfg.Source
	}
	if source == "" {
		source = DefaultSource
	}

	l.tracer.SetAttributes(span, map[string]interface{}{
		"ingest.source":     source,
		"ingest.collection": l.collection,
		"ingest.limit":      opts.Limit,
		"ingest.recreate":   opts.Recreate,
	})

	stats, err := l.rebuild(ctx, source, opts)
	if err != nil {
		l.tracer.RecordErrorOnSpan(span, err)
		l.log.ErrorWithContext(ctx, "Card ingestion failed", err, map[string]interface{}{
			"source":       source,
			"rows_read":    stats.RowsRead,
			"cards_stored": stats.CardsStored,
		})
		return stats, err
	}

	l.tracer.SetAttributes(span, map[string]interface{}{
		"ingest.rows_read":    stats.RowsRead,
		"ingest.cards_stored": stats.CardsStored,
		"ingest.rows_skipped": stats.RowsSkipped,
	})
	return stats, nil
}

func (l *Loader) rebuild(ctx context.Context, source string, opts Options) (Stats, error) {
	var stats Stats
	start := time.Now()

	if opts.Recreate {
		if err := l.db.DeleteCollection(ctx, l.collection); err != nil {
			return stats, fmt.Errorf("ingest: drop collection: %w", err)
		}
	}
	if err := l.db.EnsureCollection(ctx, l.collection, uint64(l.embedder.Dimensions())); err != nil {
		return stats, fmt.Errorf("ingest: ensure collection: %w", err)
	}

	rc, err := l.open(ctx, source)
	if err != nil {
		return stats, err
	}
	defer rc.Close()

	reader, err := cards.NewReader(rc)
	if err != nil {
		return stats, fmt.Errorf("ingest: %w", err)
	}

	l.log.InfoWithContext(ctx, "Loading cards", nil, map[string]interface{}{
		"source":     source,
		"collection": l.collection,
		"limit":      opts.Limit,
	})

	for chunk := 1; ; chunk++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rows, err := reader.ReadChunk(l.cfg.chunkSize())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("ingest: %w", err)
		}

		pending, read, skipped, done := selectCards(rows, opts.Limit-stats.CardsStored, opts.Limit > 0)
		stats.RowsRead += read
		stats.RowsSkipped += skipped
		l.metrics.AddRowsSkipped(skipReasonNoMultiverseID, skipped)

		if len(pending) > 0 {
			if err := l.storeChunk(ctx, chunk, pending); err != nil {
				return stats, err
			}
			stats.CardsStored += len(pending)
			l.metrics.AddCardsIngested(l.collection, len(pending))
		}

		l.log.Info("Processed chunk", nil, map[string]interface{}{
			"chunk":        chunk,
			"rows_read":    stats.RowsRead,
			"cards_stored": stats.CardsStored,
			"rows_skipped": stats.RowsSkipped,
		})

		if done {
			break
		}
	}

	l.log.InfoWithContext(ctx, "Card ingestion finished", nil, map[string]interface{}{
		"rows_read":    stats.RowsRead,
		"cards_stored": stats.CardsStored,
		"rows_skipped": stats.RowsSkipped,
		"duration":     time.Since(start).String(),
	})
	return stats, nil
}

// selectCards preprocesses rows until remaining cards were collected (when
// limited). It returns the cards, the rows examined, the rows skipped and
// whether the limit was reached.
func selectCards(rows []cards.Row, remaining int, limited bool) ([]*cards.Card, int, int, bool) {
	var (
		out     []*cards.Card
		read    int
		skipped int
	)
	for _, row := range rows {
		if limited && len(out) >= remaining {
			return out, read, skipped, true
		}
		read++
		card, ok := cards.Preprocess(row)
		if !ok {
			skipped++
			continue
		}
		out = append(out, card)
	}
	return out, read, skipped, limited && len(out) >= remaining
}

func (l *Loader) storeChunk(ctx context.Context, chunk int, batch []*cards.Card) error {
	ctx, span := l.tracer.StartSpan(ctx, "ingest.chunk")
	defer span.End()
	l.tracer.SetAttributes(span, map[string]interface{}{
		"ingest.chunk": chunk,
		"ingest.cards": len(batch),
	})

	vectors, err := l.embedConcurrently(ctx, batch)
	if err != nil {
		l.tracer.RecordErrorOnSpan(span, err)
		return fmt.Errorf("ingest: embed chunk %d: %w", chunk, err)
	}

	inputs := make([]vectordb.EmbeddingInput, len(batch))
	for i, c := range batch {
		inputs[i] = vectordb.EmbeddingInput{
			ID:      c.PointID(),
			Vector:  vectors[i],
			Payload: c.Payload(),
		}
	}

	if err := l.db.Insert(ctx, l.collection, inputs); err != nil {
		l.tracer.RecordErrorOnSpan(span, err)
		return fmt.Errorf("ingest: store chunk %d: %w", chunk, err)
	}
	return nil
}

// embedConcurrently splits batch into at most Concurrency sub-batches and
// embeds them in parallel, keeping input order.
func (l *Loader) embedConcurrently(ctx context.Context, batch []*cards.Card) ([][]float32, error) {
	texts := make([]string, len(batch))
	for i, c := range batch {
		texts[i] = c.EmbeddingText()
	}

	workers := l.cfg.concurrency()
	size := (len(texts) + workers - 1) / workers
	vectors := make([][]float32, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(texts); start += size {
		end := min(start+size, len(texts))
		g.Go(func() error {
			out, err := l.embedder.Embed(gctx, texts[start:end]...)
			if err != nil {
				return err
			}
			if len(out) != end-start {
				return fmt.Errorf("got %d embeddings for %d cards", len(out), end-start)
			}
			copy(vectors[start:end], out)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}
