package output

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/hupe1980/grapevec/internal/resource"
	"golang.org/x/sync/errgroup"
)

// DefaultBufferSize is the write buffer per partition.
const DefaultBufferSize = 64 * 1024

// RowFunc returns the original id and score of local ordinal i.
type RowFunc func(i int) (oid int64, score float64)

// Partition is one file for WriteAll.
type Partition struct {
	Path string
	N    int
	Row  RowFunc
}

// Stats counts what a Writer has produced.
type Stats struct {
	Partitions int64
	Failures   int64
	Lines      int64
	Bytes      int64
}

type options struct {
	sink        Sink
	controller  *resource.Controller
	bufferSize  int
	concurrency int
}

// Option configures a Writer.
type Option func(*options)

// WithSink sets the destination. The default is the local filesystem.
func WithSink(s Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithResourceController throttles output bytes and bounds WriteAll workers
// with rc's limits.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithBufferSize sets the per-partition write buffer.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithConcurrency bounds the partitions WriteAll writes at once. A resource
// controller with fewer worker slots lowers the bound further.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// Writer streams partition results to a Sink.
type Writer struct {
	opts options

	partitions atomic.Int64
	failures   atomic.Int64
	lines      atomic.Int64
	bytes      atomic.Int64
}

// NewWriter creates a Writer.
func NewWriter(optFns ...Option) *Writer {
	o := options{
		sink:        NewFileSink(nil),
		bufferSize:  DefaultBufferSize,
		concurrency: 4,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return &Writer{opts: o}
}

// WritePartition writes n lines to path. It returns the number of lines
// handed to the sink and the first error; on error the destination may
// hold a prefix of the output or nothing.
func (w *Writer) WritePartition(ctx context.Context, path string, n int, row RowFunc) (lines int, err error) {
	w.partitions.Add(1)
	defer func() {
		if err != nil {
			w.failures.Add(1)
		}
	}()

	dst, err := w.opts.sink.Create(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("output: create %s: %w", path, err)
	}

	cw := &countingWriter{w: resource.NewRateLimitedWriter(ctx, dst, w.opts.controller)}
	bw := bufio.NewWriterSize(cw, w.opts.bufferSize)
	defer func() {
		w.bytes.Add(cw.n)
	}()

	var line []byte
	for i := range n {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				_ = dst.Close()
				return lines, err
			}
		}
		oid, score := row(i)
		line = FormatLine(line[:0], i, oid, score)
		if _, err := bw.Write(line); err != nil {
			_ = dst.Close()
			return lines, fmt.Errorf("output: write %s: %w", path, err)
		}
		lines++
		w.lines.Add(1)
	}

	if err := bw.Flush(); err != nil {
		_ = dst.Close()
		return lines, fmt.Errorf("output: flush %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		return lines, fmt.Errorf("output: close %s: %w", path, err)
	}
	return lines, nil
}

// WriteAll writes every partition, up to the configured concurrency at a
// time. A failing partition does not stop the others; the failures are
// joined into the returned error.
func (w *Writer) WriteAll(ctx context.Context, parts []Partition) error {
	var g errgroup.Group
	g.SetLimit(w.concurrency())

	errs := make([]error, len(parts))
	for i, p := range parts {
		g.Go(func() error {
			if err := w.opts.controller.AcquireWorker(ctx); err != nil {
				errs[i] = err
				return nil
			}
			defer w.opts.controller.ReleaseWorker()

			_, errs[i] = w.WritePartition(ctx, p.Path, p.N, p.Row)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// concurrency is the WriteAll goroutine limit: the configured concurrency,
// capped by the controller's worker slots.
func (w *Writer) concurrency() int {
	if w.opts.controller == nil {
		return w.opts.concurrency
	}
	return min(w.opts.concurrency, w.opts.controller.MaxWorkers())
}

// Stats returns the totals across all partitions written so far.
func (w *Writer) Stats() Stats {
	return Stats{
		Partitions: w.partitions.Load(),
		Failures:   w.failures.Load(),
		Lines:      w.lines.Load(),
		Bytes:      w.bytes.Load(),
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
