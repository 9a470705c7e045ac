package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"log-merger/core/storage"

	"github.com/minio/minio-go/v7"
)

// Fetcher resolves input paths to raw file contents. Plain paths are read
// from the local filesystem; s3:// paths go through the storage client.
type Fetcher struct {
	// Storage serves s3:// paths. May be nil when every input is local.
	Storage storage.Client
}

// Read returns the full contents of one input.
func (f *Fetcher) Read(ctx context.Context, path string) ([]byte, error) {
	bucket, object, ok := storage.ParseURL(path)
	if !ok {
		return os.ReadFile(path)
	}
	if f.Storage == nil {
		return nil, errors.New("loader: object storage is not configured")
	}
	obj, err := f.Storage.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("loader: fetch %s: %w", path, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("loader: fetch %s: %w", path, err)
	}
	return data, nil
}
