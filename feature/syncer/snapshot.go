package syncer

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"time"

	"partflow-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archive keeps a copy of a table before an overwrite replaces it.
type Archive interface {
	Save(ctx context.Context, spreadsheetID, table string, grid [][]string) (string, error)
}

// MinioArchive writes snapshots as CSV objects.
type MinioArchive struct {
	client storage.Client
	bucket string
	now    func() time.Time
}

// NewMinioArchive returns an Archive writing to bucket.
func NewMinioArchive(client storage.Client, bucket string) *MinioArchive {
	return &MinioArchive{client: client, bucket: bucket, now: time.Now}
}

// Save uploads grid and returns the object key.
func (a *MinioArchive) Save(ctx context.Context, spreadsheetID, table string, grid [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(grid); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := SnapshotKey(spreadsheetID, table, a.now())
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}
	return key, nil
}

// SnapshotKey names the object for a snapshot taken at t.
func SnapshotKey(spreadsheetID, table string, t time.Time) string {
	return path.Join("snapshots", spreadsheetID, table, t.UTC().Format("20060102T150405.000Z")+".csv")
}
