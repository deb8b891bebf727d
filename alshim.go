// Package alshim gives an audio backend OpenAL without a link-time
// dependency on it. The library is located and bound on first use; when it
// cannot be found every call is a no-op returning a zero value.
//
//	al := alshim.New(alshim.WithLogger(logger))
//	if !al.Found() {
//		// fall back to another backend
//	}
//	dev := al.OpenDevice("")
//	ctx := al.CreateContext(dev, nil)
//	al.MakeContextCurrent(ctx)
//
// Build with -tags openal_static to link OpenAL through cgo instead.
package alshim

import "github.com/agiangrant/alshim/internal/ffi"

// Loader owns a resolved OpenAL symbol table.
// This is a re-export of ffi.Loader for consumer convenience.
type Loader = ffi.Loader

// Option configures a Loader.
type Option = ffi.Option

// Library and Opener let callers supply their own loading mechanism.
type (
	Library = ffi.Library
	Opener  = ffi.Opener
)

// Handle and enum types passed to the forwarders.
type (
	Device  = ffi.Device
	Context = ffi.Context
	Buffer  = ffi.Buffer
	Source  = ffi.Source
	Enum    = ffi.Enum
)

// Report is the result of Loader.Inspect.
type Report = ffi.Report

// MissingSymbolsError is returned by Loader.LastError when the library
// lacks required entry points.
type MissingSymbolsError = ffi.MissingSymbolsError

// ErrLibraryNotFound is the cause when no candidate library opened.
var ErrLibraryNotFound = ffi.ErrLibraryNotFound

// LibraryPathEnv names an environment variable holding a library path to
// try first.
const LibraryPathEnv = ffi.LibraryPathEnv

// Sample formats, source parameters, source states and context attributes,
// with the values of the OpenAL headers.
const (
	FormatMono8    = ffi.FormatMono8
	FormatMono16   = ffi.FormatMono16
	FormatStereo8  = ffi.FormatStereo8
	FormatStereo16 = ffi.FormatStereo16

	Looping          = ffi.Looping
	BufferParam      = ffi.BufferParam
	SourceState      = ffi.SourceState
	BuffersQueued    = ffi.BuffersQueued
	BuffersProcessed = ffi.BuffersProcessed
	SourceType       = ffi.SourceType

	Initial = ffi.Initial
	Playing = ffi.Playing
	Paused  = ffi.Paused
	Stopped = ffi.Stopped

	AttrFrequency = ffi.AttrFrequency
	AttrRefresh   = ffi.AttrRefresh
	AttrSync      = ffi.AttrSync
)

// Loader options, passed to New.
var (
	WithLibraryPath = ffi.WithLibraryPath
	WithCandidates  = ffi.WithCandidates
	WithOpener      = ffi.WithOpener
	WithLogger      = ffi.WithLogger
)

// New returns an unresolved loader. Nothing is opened until the first call.
func New(opts ...Option) *Loader {
	return ffi.NewLoader(opts...)
}

// Default returns the process-wide loader.
func Default() *Loader {
	return ffi.Default()
}

// Symbols lists the OpenAL entry points that must all resolve.
func Symbols() []string {
	return ffi.Symbols()
}

// DefaultCandidates lists the library names tried on this platform.
func DefaultCandidates() []string {
	return ffi.DefaultCandidates()
}
