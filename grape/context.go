package grape

import "context"

// DefaultContext is the lifecycle an algorithm context exposes to the engine.
//
// Init parses parameters and allocates per-vertex state; an error is fatal
// and the engine must not iterate. Output writes the results of the
// fragment. It reports nothing: write failures are logged and the run
// continues, so completeness has to be checked separately.
type DefaultContext interface {
	Init(ctx context.Context, frag Fragment, args Args) error
	Output(ctx context.Context, frag Fragment)
}
