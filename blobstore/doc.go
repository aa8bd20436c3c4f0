// Package blobstore abstracts where per-partition output files and vector
// snapshots are persisted.
//
// # Implementations
//
//   - [LocalStore]: a directory on the local filesystem; reads are memory mapped
//   - [MemoryStore]: in-process map, for tests
//   - minio.Store: MinIO and other S3-compatible services
//   - s3.Store: Amazon S3 with multipart streaming uploads
//
// All implementations are safe for concurrent use. Blob names are
// slash-separated and relative to the store root.
//
// A [WritableBlob] becomes visible under its name only after a successful
// Close; a failed or abandoned write never replaces an existing blob.
package blobstore
