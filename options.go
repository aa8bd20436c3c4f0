package grapevec

import (
	"log/slog"

	"github.com/hupe1980/grapevec/internal/arena"
	"github.com/hupe1980/grapevec/internal/mmap"
	"github.com/hupe1980/grapevec/internal/resource"
)

// Backend selects where vector storage is allocated.
type Backend = arena.Backend

const (
	// BackendMmap stores elements in anonymous memory mappings (default).
	BackendMmap = arena.BackendMmap
	// BackendHeap stores elements in aligned Go slices.
	BackendHeap = arena.BackendHeap
)

// AccessPattern is a kernel hint passed by Vector.Advise.
type AccessPattern = mmap.AccessPattern

const (
	AccessDefault    = mmap.AccessDefault
	AccessSequential = mmap.AccessSequential
	AccessRandom     = mmap.AccessRandom
	AccessWillNeed   = mmap.AccessWillNeed
	AccessDontNeed   = mmap.AccessDontNeed
)

// ResourceController accounts native memory across vectors and throttles output IO.
type ResourceController = resource.Controller

// ResourceConfig holds the limits of a ResourceController.
type ResourceConfig = resource.Config

// NewResourceController creates a controller for cfg.
func NewResourceController(cfg ResourceConfig) *ResourceController {
	return resource.NewController(cfg)
}

// DefaultMinCapacity is the capacity an empty vector grows to on its first Add or Append.
const DefaultMinCapacity = 1

type options struct {
	backend          Backend
	minCapacity      int
	controller       *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Factory (and every vector it creates).
type Option func(*options)

// WithBackend selects the storage backend. The default is BackendMmap.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithMinCapacity sets the capacity an empty vector reserves on its first
// amortized append. Values below 1 are ignored.
func WithMinCapacity(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.minCapacity = n
		}
	}
}

// WithResourceController charges every vector's native storage against rc.
// Growth that would exceed the controller's memory limit fails with
// resource.ErrMemoryLimitExceeded instead of allocating.
func WithResourceController(rc *ResourceController) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithMetricsCollector records growth and release events.
// Pass nil to disable metrics collection.
//
//	metrics := &grapevec.BasicMetricsCollector{}
//	v := grapevec.New[float64](grapevec.WithMetricsCollector(metrics))
//	// ... use v ...
//	fmt.Println(metrics.GetStats().Reallocations)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging of growth events.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel is shorthand for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		backend:          BackendMmap,
		minCapacity:      DefaultMinCapacity,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) arenaOptions() []arena.Option {
	opts := []arena.Option{arena.WithBackend(o.backend)}
	if o.controller != nil {
		opts = append(opts, arena.WithMemoryAcquirer(o.controller))
	}
	return opts
}
