// Package minio implements blobstore.BlobStore on top of the MinIO client, for
// MinIO and other S3-compatible services.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := minioblob.NewStore(client, "results", "pagerank/")
//
// Streaming writes are piped into a single PutObject call, which the client
// turns into a multipart upload once the data exceeds one part.
package minio
