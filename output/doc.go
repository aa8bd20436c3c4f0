// Package output writes per-partition algorithm results and checks them.
//
// Each partition produces one text file with a line per inner vertex in
// ascending local-ordinal order:
//
//	<lid>\t<oid>\t<score>\n
//
// Files go to a Sink: the local filesystem by default, or any
// blobstore.BlobStore. A failed write leaves a partial or missing file;
// Verify detects both.
package output
