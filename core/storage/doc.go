// Package storage provides object storage access for remote log files.
//
// It wraps the MinIO Go client so input paths of the form s3://bucket/object
// can be read the same way as local files. This abstraction supports both
// AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	obj, err := client.GetObject(ctx, "experiments", "run-1/log.yaml", minio.GetObjectOptions{})
package storage
