// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client (AWS S3 or self-hosted MinIO). The sync feature uses
// it to archive a table's previous contents before an overwrite replaces them.
//
// # Client Interface
//
// The Client interface is narrowed to the operations the snapshot archive needs,
// which keeps it easy to mock in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
