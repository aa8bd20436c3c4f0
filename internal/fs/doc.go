// Package fs abstracts the filesystem calls made by output sinks, snapshots
// and the local blob store, so tests can inject failures.
//
//   - [LocalFS] delegates to the os package and is the [Default].
//   - [FaultyFS] wraps another FileSystem and fails opens, writes, syncs or
//     closes for files whose name matches a rule.
//
// Calls take no context.Context: local filesystem syscalls cannot be
// interrupted. Remote storage goes through blobstore instead.
package fs
