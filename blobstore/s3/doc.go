// Package s3 implements blobstore.BlobStore on Amazon S3.
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("pagerank/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
// Reads use ranged GetObject calls. Streaming writes go through the SDK's
// multipart upload manager; whole-blob writes carry a CRC32C checksum that
// S3 validates on receipt.
package s3
