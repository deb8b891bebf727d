package ffi

import "unsafe"

// Each forwarder loads OpenAL on first use. While OpenAL is unavailable it
// does nothing and returns the zero value, which callers cannot tell apart
// from a native call that returned zero.

// OpenDevice opens the named output device. An empty name selects the
// default device.
func (l *Loader) OpenDevice(name string) Device {
	t := l.ensure()
	if t == nil {
		return 0
	}
	if name == "" {
		return Device(t.alcOpenDevice(nil))
	}
	nameBytes := append([]byte(name), 0)
	return Device(t.alcOpenDevice(&nameBytes[0]))
}

// CloseDevice closes device.
func (l *Loader) CloseDevice(device Device) {
	if t := l.ensure(); t != nil {
		t.alcCloseDevice(uintptr(device))
	}
}

// CreateContext creates a context on device. attrs holds key/value pairs
// such as AttrFrequency; the list terminator is appended here. A nil attrs
// passes NULL.
func (l *Loader) CreateContext(device Device, attrs []int32) Context {
	t := l.ensure()
	if t == nil {
		return 0
	}
	if attrs == nil {
		return Context(t.alcCreateContext(uintptr(device), nil))
	}
	list := make([]int32, len(attrs), len(attrs)+1)
	copy(list, attrs)
	list = append(list, 0)
	return Context(t.alcCreateContext(uintptr(device), &list[0]))
}

// DestroyContext destroys context.
func (l *Loader) DestroyContext(context Context) {
	if t := l.ensure(); t != nil {
		t.alcDestroyContext(uintptr(context))
	}
}

// MakeContextCurrent makes context current and reports whether OpenAL
// accepted it. It returns false while OpenAL is unavailable.
func (l *Loader) MakeContextCurrent(context Context) bool {
	t := l.ensure()
	if t == nil {
		return false
	}
	return t.alcMakeContextCurrent(uintptr(context)) != 0
}

// GetSourcei returns the integer source parameter param.
func (l *Loader) GetSourcei(source Source, param Enum) int32 {
	t := l.ensure()
	if t == nil {
		return 0
	}
	var value int32
	t.alGetSourcei(uint32(source), int32(param), &value)
	return value
}

// SourceQueueBuffers appends buffers to the queue of source.
func (l *Loader) SourceQueueBuffers(source Source, buffers []Buffer) {
	if t := l.ensure(); t != nil {
		t.alSourceQueueBuffers(uint32(source), int32(len(buffers)), bufferPtr(buffers))
	}
}

// SourceUnqueueBuffers removes len(buffers) processed buffers from source and
// writes their names into buffers.
func (l *Loader) SourceUnqueueBuffers(source Source, buffers []Buffer) {
	if t := l.ensure(); t != nil {
		t.alSourceUnqueueBuffers(uint32(source), int32(len(buffers)), bufferPtr(buffers))
	}
}

// BufferData uploads data in the given format and sample rate to buffer.
func (l *Loader) BufferData(buffer Buffer, format Enum, data []byte, freq int32) {
	t := l.ensure()
	if t == nil {
		return
	}
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	t.alBufferData(uint32(buffer), int32(format), ptr, int32(len(data)), freq)
}

// SourcePlay starts source.
func (l *Loader) SourcePlay(source Source) {
	if t := l.ensure(); t != nil {
		t.alSourcePlay(uint32(source))
	}
}

// SourceStop stops source.
func (l *Loader) SourceStop(source Source) {
	if t := l.ensure(); t != nil {
		t.alSourceStop(uint32(source))
	}
}

// GenBuffers generates len(buffers) buffer names into buffers.
func (l *Loader) GenBuffers(buffers []Buffer) {
	if t := l.ensure(); t != nil {
		t.alGenBuffers(int32(len(buffers)), bufferPtr(buffers))
	}
}

// DeleteBuffers releases the named buffers.
func (l *Loader) DeleteBuffers(buffers []Buffer) {
	if t := l.ensure(); t != nil {
		t.alDeleteBuffers(int32(len(buffers)), bufferPtr(buffers))
	}
}

// GenSources generates len(sources) source names into sources.
func (l *Loader) GenSources(sources []Source) {
	if t := l.ensure(); t != nil {
		t.alGenSources(int32(len(sources)), sourcePtr(sources))
	}
}

// DeleteSources releases the named sources.
func (l *Loader) DeleteSources(sources []Source) {
	if t := l.ensure(); t != nil {
		t.alDeleteSources(int32(len(sources)), sourcePtr(sources))
	}
}

// bufferPtr and sourcePtr return the first element viewed as an ALuint, or
// nil for an empty slice.
func bufferPtr(b []Buffer) *uint32 {
	if len(b) == 0 {
		return nil
	}
	return (*uint32)(unsafe.Pointer(&b[0]))
}

func sourcePtr(s []Source) *uint32 {
	if len(s) == 0 {
		return nil
	}
	return (*uint32)(unsafe.Pointer(&s[0]))
}
