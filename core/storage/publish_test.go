package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockClient mirrors core/storage/mocks.Client; redeclared locally to avoid
// an import cycle between the package and its own mocks.
type mockClient struct{ mock.Mock }

func (m *mockClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	args := m.Called(ctx, bucket)
	return args.Bool(0), args.Error(1)
}

func (m *mockClient) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	args := m.Called(ctx, bucket, opts)
	return args.Error(0)
}

func (m *mockClient) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucket, object, reader, size, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockClient) FPutObject(ctx context.Context, bucket, object, path string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucket, object, path, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockClient) ListObjects(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func (m *mockClient) RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error {
	return nil
}

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AllPrintings.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sets", "LEA.json"), []byte("{}"), 0o644))

	client := new(mockClient)
	client.On("BucketExists", mock.Anything, "builds").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "builds", mock.Anything).Return(nil)
	client.On("FPutObject", mock.Anything, "builds", "AllPrintings.json", mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Return(minio.UploadInfo{}, nil)
	client.On("FPutObject", mock.Anything, "builds", "sets/LEA.json", mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	n, err := Publish(context.Background(), client, "builds", dir, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	client.AssertExpectations(t)
}
