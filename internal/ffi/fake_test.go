package ffi

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// fakeNative is a Go stand-in for an OpenAL library. Each function in
// symbols has the exact signature of the matching table slot.
type fakeNative struct {
	deviceName  string
	attrs       []int32
	current     uintptr
	closed      []uintptr
	destroyed   []uintptr
	queued      []uint32
	uploaded    []byte
	format      int32
	freq        int32
	played      []uint32
	stopped     []uint32
	deleted     []uint32
	nextName    uint32
	sourceValue int32
}

func (f *fakeNative) symbols() map[string]any {
	return map[string]any{
		"alcOpenDevice": func(devicename *byte) uintptr {
			f.deviceName = cString(devicename)
			return 0xD0
		},
		"alcCloseDevice": func(device uintptr) { f.closed = append(f.closed, device) },
		"alcCreateContext": func(device uintptr, attrlist *int32) uintptr {
			f.attrs = readAttrs(attrlist)
			return device + 1
		},
		"alcDestroyContext": func(context uintptr) { f.destroyed = append(f.destroyed, context) },
		"alcMakeContextCurrent": func(context uintptr) uint8 {
			f.current = context
			if context == 0 {
				return 0
			}
			return 1
		},
		"alGetSourcei": func(source uint32, param int32, value *int32) {
			*value = f.sourceValue + int32(source) + param
		},
		"alSourceQueueBuffers": func(source uint32, nb int32, buffers *uint32) {
			f.queued = append(f.queued, readNames(buffers, nb)...)
		},
		"alSourceUnqueueBuffers": func(source uint32, nb int32, buffers *uint32) {
			copy(unsafe.Slice(buffers, nb), f.queued)
			f.queued = f.queued[nb:]
		},
		"alBufferData": func(buffer uint32, format int32, data unsafe.Pointer, size int32, freq int32) {
			f.uploaded = append([]byte(nil), unsafe.Slice((*byte)(data), size)...)
			f.format = format
			f.freq = freq
		},
		"alSourcePlay": func(source uint32) { f.played = append(f.played, source) },
		"alSourceStop": func(source uint32) { f.stopped = append(f.stopped, source) },
		"alGenBuffers": func(n int32, buffers *uint32) { f.gen(n, buffers) },
		"alDeleteBuffers": func(n int32, buffers *uint32) {
			f.deleted = append(f.deleted, readNames(buffers, n)...)
		},
		"alGenSources": func(n int32, sources *uint32) { f.gen(n, sources) },
		"alDeleteSources": func(n int32, sources *uint32) {
			f.deleted = append(f.deleted, readNames(sources, n)...)
		},
	}
}

func (f *fakeNative) gen(n int32, out *uint32) {
	names := unsafe.Slice(out, n)
	for i := range names {
		f.nextName++
		names[i] = f.nextName
	}
}

func cString(p *byte) string {
	if p == nil {
		return ""
	}
	var b []byte
	for ; *p != 0; p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1)) {
		b = append(b, *p)
	}
	return string(b)
}

func readAttrs(p *int32) []int32 {
	if p == nil {
		return nil
	}
	var attrs []int32
	for {
		attrs = append(attrs, *p)
		if *p == 0 {
			return attrs
		}
		p = (*int32)(unsafe.Add(unsafe.Pointer(p), 4))
	}
}

func readNames(p *uint32, n int32) []uint32 {
	if n == 0 {
		return nil
	}
	return append([]uint32(nil), unsafe.Slice(p, n)...)
}

// fakeLibrary hands out addresses for the functions it exports.
type fakeLibrary struct {
	path   string
	funcs  map[string]any
	addrs  map[string]uintptr
	closed atomic.Int64
}

func (l *fakeLibrary) Symbol(name string) (uintptr, error) {
	addr, ok := l.addrs[name]
	if !ok {
		return 0, errors.Errorf("%s: undefined symbol %s", l.path, name)
	}
	return addr, nil
}

func (l *fakeLibrary) Close() error {
	l.closed.Inc()
	return nil
}

// fakeHost serves fake libraries by path and counts open calls.
type fakeHost struct {
	libs     map[string]*fakeLibrary
	byAddr   map[uintptr]any
	nextAddr uintptr
	opens    atomic.Int64
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		libs:     make(map[string]*fakeLibrary),
		byAddr:   make(map[uintptr]any),
		nextAddr: 0x1000,
	}
}

// install registers a library at path exporting funcs minus the omitted names.
func (h *fakeHost) install(path string, funcs map[string]any, omit ...string) *fakeLibrary {
	lib := &fakeLibrary{path: path, funcs: funcs, addrs: make(map[string]uintptr)}
	skip := make(map[string]bool)
	for _, name := range omit {
		skip[name] = true
	}
	for name, fn := range funcs {
		if skip[name] {
			continue
		}
		h.nextAddr += 0x10
		lib.addrs[name] = h.nextAddr
		h.byAddr[h.nextAddr] = fn
	}
	h.libs[path] = lib
	return lib
}

func (h *fakeHost) open(path string) (Library, error) {
	h.opens.Inc()
	lib, ok := h.libs[path]
	if !ok {
		return nil, errors.Errorf("%s: cannot open shared object file", path)
	}
	return lib, nil
}

func (h *fakeHost) bind(fptr any, addr uintptr) {
	fn, ok := h.byAddr[addr]
	if !ok {
		panic("no function at address")
	}
	reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(fn))
}

func (h *fakeHost) loader(t *testing.T, opts ...Option) *Loader {
	t.Helper()
	t.Setenv(LibraryPathEnv, "")
	base := []Option{WithOpener(h.open), WithBinder(h.bind)}
	return NewLoader(append(base, opts...)...)
}
