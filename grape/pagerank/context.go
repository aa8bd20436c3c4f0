package pagerank

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/grapevec"
	"github.com/hupe1980/grapevec/array"
	"github.com/hupe1980/grapevec/grape"
	"github.com/hupe1980/grapevec/output"
)

// ErrNotInitialized is logged when Output runs before a successful Init.
var ErrNotInitialized = errors.New("pagerank: context not initialized")

type options struct {
	logger  *grapevec.Logger
	writer  *output.Writer
	prefix  string
	vecOpts []grapevec.Option
}

// Option configures a Context.
type Option func(*options)

// WithLogger sets the logger for parameters and output results.
// The default writes text to stderr at info level.
func WithLogger(l *grapevec.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOutput sets the writer used by Output.
func WithOutput(w *output.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithOutputPrefix changes the output path prefix (default output.DefaultPrefix).
func WithOutputPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithVectorOptions configures the vectors behind PageRank and Degree.
func WithVectorOptions(opts ...grapevec.Option) Option {
	return func(o *options) {
		o.vecOpts = append(o.vecOpts, opts...)
	}
}

// Context is the PageRank state of one fragment.
type Context struct {
	Alpha        float64
	MaxIteration int
	SuperStep    int
	DanglingSum  float64

	// PageRank has one score per vertex, inner and outer.
	PageRank *array.DoubleArray
	// Degree has the out-degree of every inner vertex.
	Degree *array.IntArray

	opts    options
	release func() error // frees the arrays of a previous Init
}

var _ grape.DefaultContext = (*Context)(nil)

// NewContext returns an uninitialized Context.
func NewContext(optFns ...Option) *Context {
	o := options{
		prefix: output.DefaultPrefix,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = grapevec.NewLogger(nil)
	}
	if o.writer == nil {
		o.writer = output.NewWriter()
	}
	c := &Context{opts: o}
	c.release = c.Close
	return c
}

// Init parses alpha from args[0] and the iteration bound from args[1], then
// allocates zeroed PageRank and Degree arrays. Arguments are parsed before
// anything is allocated, so a malformed argument leaves the context untouched.
func (c *Context) Init(ctx context.Context, frag grape.Fragment, args grape.Args) error {
	alpha, err := args.Float64(0)
	if err != nil {
		return fmt.Errorf("pagerank: alpha: %w", err)
	}
	maxIteration, err := args.Int(1)
	if err != nil {
		return fmt.Errorf("pagerank: max iteration: %w", err)
	}

	logger := c.opts.logger.WithPartition(frag.Fid())
	logger.LogInit(ctx, "pagerank",
		"alpha", alpha,
		"max_iteration", maxIteration,
	)

	pr, err := array.NewDoubleArray(frag.VerticesNum(), 0, c.opts.vecOpts...)
	if err != nil {
		return fmt.Errorf("pagerank: %w", err)
	}
	deg, err := array.NewIntArray(frag.InnerVerticesNum(), 0, c.opts.vecOpts...)
	if err != nil {
		_ = pr.Close()
		return fmt.Errorf("pagerank: %w", err)
	}

	if err := c.release(); err != nil {
		logger.ErrorContext(ctx, "releasing previous state failed", "error", err)
	}
	c.Alpha = alpha
	c.MaxIteration = maxIteration
	c.SuperStep = 0
	c.DanglingSum = 0
	c.PageRank = pr
	c.Degree = deg
	return nil
}

// Output writes one line per inner vertex of frag to the partition file.
// Failures are logged, never returned: the file may be partial or missing.
func (c *Context) Output(ctx context.Context, frag grape.Fragment) {
	logger := c.opts.logger.WithPartition(frag.Fid())
	path := output.PathFor(c.opts.prefix, frag.Fid())

	if c.PageRank == nil {
		logger.LogOutput(ctx, path, 0, ErrNotInitialized)
		return
	}

	n := min(frag.InnerVerticesNum(), c.PageRank.Len())
	scores := c.PageRank.Slice()
	lines, err := c.opts.writer.WritePartition(ctx, path, n, func(i int) (int64, float64) {
		return frag.OriginalID(i), scores[i]
	})
	logger.LogOutput(ctx, path, lines, err)
}

// Close releases the arrays. The context can be initialized again.
func (c *Context) Close() error {
	var errs []error
	if c.PageRank != nil {
		errs = append(errs, c.PageRank.Close())
		c.PageRank = nil
	}
	if c.Degree != nil {
		errs = append(errs, c.Degree.Close())
		c.Degree = nil
	}
	return errors.Join(errs...)
}
