package storage

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publish uploads every file under dir to the configured bucket, keyed by
// its path relative to dir. The bucket is created when missing. Returns the
// number of objects uploaded.
func Publish(ctx context.Context, client Client, bucket, dir string, log *zap.Logger) (int, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return 0, fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
	}

	uploaded := 0
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		object := filepath.ToSlash(rel)

		opts := minio.PutObjectOptions{ContentType: contentTypeFor(object)}
		if _, err := client.FPutObject(ctx, bucket, object, path, opts); err != nil {
			return fmt.Errorf("upload %q: %w", object, err)
		}

		log.Debug("uploaded object", zap.String("object", object))
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}
	return uploaded, nil
}

func contentTypeFor(object string) string {
	switch {
	case strings.HasSuffix(object, ".json"):
		return "application/json"
	case strings.HasSuffix(object, ".sqlite"):
		return "application/vnd.sqlite3"
	case strings.HasSuffix(object, ".parquet"):
		return "application/vnd.apache.parquet"
	default:
		return "application/octet-stream"
	}
}
