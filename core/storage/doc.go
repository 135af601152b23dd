// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small read-only interface so a bucket can be
// served in place of a local directory. This supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - StatObject: Reads object metadata (size, modification time).
//   - GetObject: Retrieves content as a seekable stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "site")
package storage
