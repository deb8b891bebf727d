// Package ffi resolves the OpenAL entry points the audio backend needs at
// runtime and exposes forwarders for them. When no usable OpenAL library is
// present every forwarder becomes a no-op returning a zero value, so callers
// link and run without OpenAL installed.
//
// Dynamic loading uses purego on Unix-like systems and x/sys/windows on
// Windows. Building with the openal_static tag links OpenAL through cgo and
// skips the loader entirely.
package ffi

import (
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Library is an opened native library.
type Library interface {
	// Symbol returns the address of the exported name, or an error if the
	// library does not export it.
	Symbol(name string) (uintptr, error)
	Close() error
}

// Opener opens a library by file name or path.
type Opener func(path string) (Library, error)

// Loader owns one resolved OpenAL symbol table. The zero value is not
// usable; construct with NewLoader.
//
// The table moves from unresolved to resolved on the first successful load.
// A failed load leaves it unresolved and the next call tries again. Calls
// are safe for concurrent use.
type Loader struct {
	mu sync.Mutex

	fns     atomic.Pointer[table]
	lib     Library
	path    string
	lastErr error
	opens   atomic.Int64
	static  bool

	libraryPath string
	candidates  []string
	open        Opener
	bind        Binder
	logger      log.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLibraryPath sets a library path tried before the candidates.
func WithLibraryPath(path string) Option {
	return func(l *Loader) {
		l.libraryPath = path
	}
}

// WithCandidates replaces the platform default candidate names.
func WithCandidates(names ...string) Option {
	return func(l *Loader) {
		l.candidates = append([]string(nil), names...)
	}
}

// WithOpener replaces the platform library opener.
func WithOpener(open Opener) Option {
	return func(l *Loader) {
		l.open = open
	}
}

// WithBinder replaces the function used to turn symbol addresses into
// callable Go functions. The default is purego.RegisterFunc.
func WithBinder(bind Binder) Option {
	return func(l *Loader) {
		l.bind = bind
	}
}

// WithLogger sets the logger. Loading is silent by default.
func WithLogger(logger log.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader returns an unresolved loader. Nothing is opened until the first
// probe or forwarder call.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		candidates: DefaultCandidates(),
		open:       openLibrary,
		bind:       bindFunc,
		logger:     log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = log.With(l.logger, "component", "openal")

	if t := linkedTable(); t != nil {
		l.static = true
		l.fns.Store(t)
	}
	return l
}

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the process-wide loader with platform defaults.
func Default() *Loader {
	defaultOnce.Do(func() {
		defaultLoader = NewLoader()
	})
	return defaultLoader
}

// Found reports whether OpenAL is available, loading it if needed.
func (l *Loader) Found() bool {
	return l.ensure() != nil
}

// Static reports whether OpenAL was linked at build time.
func (l *Loader) Static() bool {
	return l.static
}

// Path returns the library in use, or "" while unresolved.
func (l *Loader) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// LastError returns the reason the most recent load attempt failed, or nil
// if it succeeded or none has been made.
func (l *Loader) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Opens returns how many times the loader asked the platform to open a
// library.
func (l *Loader) Opens() int64 {
	return l.opens.Load()
}

// Close releases the library and returns the loader to the unresolved
// state, the one transition back that the load-once lifecycle otherwise
// never makes. The next call searches again. Close must not race forwarder
// calls: the caller must ensure none is in flight, since a forwarder may
// still hold the old table. Close is a no-op for statically linked builds.
func (l *Loader) Close() error {
	if l.static {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fns.Store(nil)
	l.path = ""
	if l.lib == nil {
		return nil
	}
	err := l.lib.Close()
	l.lib = nil
	if err != nil {
		return errors.Wrap(err, "close openal library")
	}
	return nil
}

// ensure returns the resolved table, loading it on first use. It returns nil
// while OpenAL is unavailable.
func (l *Loader) ensure() *table {
	if t := l.fns.Load(); t != nil {
		return t
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if t := l.fns.Load(); t != nil {
		return t
	}

	t, err := l.load()
	l.lastErr = err
	if err != nil {
		level.Debug(l.logger).Log("msg", "openal unavailable", "err", err)
		return nil
	}
	level.Info(l.logger).Log("msg", "openal loaded", "path", l.path)
	l.fns.Store(t)
	return t
}

// load opens the first candidate that loads and binds every symbol from it.
// A library missing any symbol is closed and the whole attempt fails.
func (l *Loader) load() (*table, error) {
	paths := searchPaths(l.libraryPath, l.candidates)

	lib, path, err := l.openFirst(paths)
	if err != nil {
		return nil, err
	}

	t, err := bindTable(lib, path, l.bind)
	if err != nil {
		if cerr := lib.Close(); cerr != nil {
			level.Debug(l.logger).Log("msg", "closing rejected library", "path", path, "err", cerr)
		}
		return nil, err
	}

	l.lib = lib
	l.path = path
	return t, nil
}

func (l *Loader) openFirst(paths []string) (Library, string, error) {
	if len(paths) == 0 {
		return nil, "", errors.Wrap(ErrLibraryNotFound, "no candidates")
	}
	for _, path := range paths {
		l.opens.Inc()
		lib, err := l.open(path)
		if err != nil {
			level.Debug(l.logger).Log("msg", "candidate failed", "path", path, "err", err)
			continue
		}
		return lib, path, nil
	}
	return nil, "", errors.Wrapf(ErrLibraryNotFound, "tried %s", strings.Join(paths, ", "))
}
