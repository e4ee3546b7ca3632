package ingest

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cardforge/mtgsearch/v1/minio"
)

// open returns a reader for a local path or an object storage location.
func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if minio.IsObjectURL(source) {
		if l.objects == nil {
			return nil, fmt.Errorf("ingest: %s requires object storage settings (MINIO_ENDPOINT)", source)
		}
		rc, err := l.objects.OpenURL(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("ingest: open %s: %w", source, err)
		}
		return rc, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", source, err)
	}
	return f, nil
}
