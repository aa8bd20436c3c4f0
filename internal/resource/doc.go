// Package resource accounts for native memory and throttles output IO.
//
// A Controller governs three resources shared by every vector and writer
// that is configured with it:
//
//	┌─────────────────────────────────────────────────────────┐
//	│                       Controller                        │
//	├──────────────────┬──────────────────┬───────────────────┤
//	│  Native memory   │  Output workers  │  IO rate limiter  │
//	│  (fail-fast)     │  (semaphore)     │  (token bucket)   │
//	├──────────────────┼──────────────────┼───────────────────┤
//	│  AcquireMemory   │  AcquireWorker   │  AcquireIO        │
//	│  ReleaseMemory   │  ReleaseWorker   │  RateLimitedWriter│
//	│  MemoryUsage     │  MaxWorkers      │                   │
//	└──────────────────┴──────────────────┴───────────────────┘
//
// # Memory
//
// Arenas call AcquireMemory before mapping a new region and ReleaseMemory after
// unmapping the old one. With a limit configured, an acquisition that would
// exceed it fails immediately with ErrMemoryLimitExceeded; growth never blocks.
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 30})
//	if err := rc.AcquireMemory(ctx, 1<<20); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(1 << 20)
//
// # IO
//
// AcquireIO waits on a token bucket sized to IOLimitBytesPerSec. Requests larger
// than the bucket are split so WaitN never rejects them.
//
// A nil *Controller is valid and imposes no limits.
package resource
