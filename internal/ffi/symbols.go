package ffi

import (
	"unsafe"

	"github.com/pkg/errors"
)

// table holds one function slot per required OpenAL entry point. Device and
// context handles are owned by the library and travel as uintptr; memory the
// caller owns travels as a Go pointer so it stays reachable and pinned for
// the duration of the call.
type table struct {
	alcOpenDevice          func(devicename *byte) uintptr
	alcCloseDevice         func(device uintptr)
	alcCreateContext       func(device uintptr, attrlist *int32) uintptr
	alcDestroyContext      func(context uintptr)
	alcMakeContextCurrent  func(context uintptr) uint8
	alGetSourcei           func(source uint32, param int32, value *int32)
	alSourceQueueBuffers   func(source uint32, nb int32, buffers *uint32)
	alSourceUnqueueBuffers func(source uint32, nb int32, buffers *uint32)
	alBufferData           func(buffer uint32, format int32, data unsafe.Pointer, size int32, freq int32)
	alSourcePlay           func(source uint32)
	alSourceStop           func(source uint32)
	alGenBuffers           func(n int32, buffers *uint32)
	alDeleteBuffers        func(n int32, buffers *uint32)
	alGenSources           func(n int32, sources *uint32)
	alDeleteSources        func(n int32, sources *uint32)
}

type slot struct {
	name string
	fn   any
}

// slots lists every entry point in resolution order.
func (t *table) slots() []slot {
	return []slot{
		{"alcOpenDevice", &t.alcOpenDevice},
		{"alcCloseDevice", &t.alcCloseDevice},
		{"alcCreateContext", &t.alcCreateContext},
		{"alcDestroyContext", &t.alcDestroyContext},
		{"alcMakeContextCurrent", &t.alcMakeContextCurrent},
		{"alGetSourcei", &t.alGetSourcei},
		{"alSourceQueueBuffers", &t.alSourceQueueBuffers},
		{"alSourceUnqueueBuffers", &t.alSourceUnqueueBuffers},
		{"alBufferData", &t.alBufferData},
		{"alSourcePlay", &t.alSourcePlay},
		{"alSourceStop", &t.alSourceStop},
		{"alGenBuffers", &t.alGenBuffers},
		{"alDeleteBuffers", &t.alDeleteBuffers},
		{"alGenSources", &t.alGenSources},
		{"alDeleteSources", &t.alDeleteSources},
	}
}

// Symbols returns the names of the entry points the loader requires.
func Symbols() []string {
	var t table
	s := t.slots()
	names := make([]string, len(s))
	for i := range s {
		names[i] = s[i].name
	}
	return names
}

// Binder assigns a Go function implementation for the native function at addr
// to the function pointer fptr.
type Binder func(fptr any, addr uintptr)

// bindTable resolves every entry point from lib. Nothing is bound unless all
// of them resolve.
func bindTable(lib Library, path string, bind Binder) (*table, error) {
	t := &table{}
	slots := t.slots()
	addrs := make([]uintptr, len(slots))

	var missing []string
	for i, s := range slots {
		addr, err := lib.Symbol(s.name)
		if err != nil || addr == 0 {
			missing = append(missing, s.name)
			continue
		}
		addrs[i] = addr
	}
	if len(missing) > 0 {
		return nil, &MissingSymbolsError{Path: path, Missing: missing}
	}

	for i, s := range slots {
		if err := safeBind(bind, s, addrs[i]); err != nil {
			return nil, errors.Wrap(err, path)
		}
	}
	return t, nil
}

// safeBind converts a binder panic into an error
func safeBind(bind Binder, s slot, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("bind %s: %v", s.name, r)
		}
	}()
	bind(s.fn, addr)
	return nil
}
