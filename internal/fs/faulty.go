package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrInjected is the error returned by a Fault without its own Err.
var ErrInjected = errors.New("fs: injected fault")

// Fault describes how files matching a rule fail.
type Fault struct {
	FailOnOpen     bool
	FailAfterBytes int64 // Writes beyond this many bytes to one file fail. -1 disables.
	FailOnSync     bool
	FailOnClose    bool
	Err            error
}

func (f Fault) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}

// NoFault never fails.
var NoFault = Fault{FailAfterBytes: -1}

// FaultyFS wraps a FileSystem and injects errors for matching file names.
type FaultyFS struct {
	fs FileSystem

	mu      sync.Mutex
	rules   map[string]Fault // substring of the file name -> fault
	written int64
	opened  int
}

// NewFaultyFS wraps fsys, or Default if fsys is nil.
func NewFaultyFS(fsys FileSystem) *FaultyFS {
	if fsys == nil {
		fsys = Default
	}
	return &FaultyFS{
		fs:    fsys,
		rules: make(map[string]Fault),
	}
}

// AddRule fails files whose name contains pattern. When several patterns
// match, the longest wins.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// Written returns the bytes successfully written through f.
func (f *FaultyFS) Written() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.written
}

// Opened returns the number of files opened through f.
func (f *FaultyFS) Opened() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened
}

func (f *FaultyFS) match(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()

	fault, best := NoFault, -1
	for pattern, rule := range f.rules {
		if len(pattern) > best && strings.Contains(name, pattern) {
			fault, best = rule, len(pattern)
		}
	}
	return fault
}

func (f *FaultyFS) wrap(file File, fault Fault) File {
	f.mu.Lock()
	f.opened++
	f.mu.Unlock()
	return &faultyFile{File: file, fs: f, fault: fault}
}

func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	fault := f.match(name)
	if fault.FailOnOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fault.err()}
	}
	file, err := f.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f.wrap(file, fault), nil
}

func (f *FaultyFS) CreateTemp(dir, pattern string) (File, error) {
	fault := f.match(pattern)
	if fault.FailOnOpen {
		return nil, &os.PathError{Op: "createtemp", Path: dir, Err: fault.err()}
	}
	file, err := f.fs.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return f.wrap(file, fault), nil
}

func (f *FaultyFS) Remove(name string) error             { return f.fs.Remove(name) }
func (f *FaultyFS) Rename(oldpath, newpath string) error { return f.fs.Rename(oldpath, newpath) }
func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	return f.fs.Stat(name)
}
func (f *FaultyFS) MkdirAll(path string, perm os.FileMode) error { return f.fs.MkdirAll(path, perm) }
func (f *FaultyFS) ReadDir(name string) ([]os.DirEntry, error)   { return f.fs.ReadDir(name) }

type faultyFile struct {
	File
	fs      *FaultyFS
	fault   Fault
	written int64
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	if ff.fault.FailAfterBytes >= 0 && ff.written+int64(len(p)) > ff.fault.FailAfterBytes {
		// Write what fits so callers see a short write, as a full disk would.
		room := max(ff.fault.FailAfterBytes-ff.written, 0)
		n, err := ff.File.Write(p[:room])
		ff.account(n)
		if err != nil {
			return n, err
		}
		return n, ff.fault.err()
	}

	n, err := ff.File.Write(p)
	ff.account(n)
	return n, err
}

func (ff *faultyFile) account(n int) {
	if n <= 0 {
		return
	}
	ff.written += int64(n)
	ff.fs.mu.Lock()
	ff.fs.written += int64(n)
	ff.fs.mu.Unlock()
}

func (ff *faultyFile) Sync() error {
	if ff.fault.FailOnSync {
		return ff.fault.err()
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	if ff.fault.FailOnClose {
		_ = ff.File.Close()
		return ff.fault.err()
	}
	return ff.File.Close()
}
