package alshim

// Package-level forwarders operate on Default().

// Found reports whether OpenAL loaded.
func Found() bool { return Default().Found() }

// OpenDevice opens the named output device; "" selects the default device.
func OpenDevice(name string) Device { return Default().OpenDevice(name) }

// CloseDevice closes device.
func CloseDevice(device Device) { Default().CloseDevice(device) }

// CreateContext creates a context on device with the given key/value attrs.
func CreateContext(device Device, attrs []int32) Context {
	return Default().CreateContext(device, attrs)
}

// DestroyContext destroys context.
func DestroyContext(context Context) { Default().DestroyContext(context) }

// MakeContextCurrent makes context current and reports whether it was accepted.
func MakeContextCurrent(context Context) bool { return Default().MakeContextCurrent(context) }

// GetSourcei returns the integer source parameter param.
func GetSourcei(source Source, param Enum) int32 { return Default().GetSourcei(source, param) }

// SourceQueueBuffers appends buffers to the queue of source.
func SourceQueueBuffers(source Source, buffers []Buffer) {
	Default().SourceQueueBuffers(source, buffers)
}

// SourceUnqueueBuffers removes processed buffers from source into buffers.
func SourceUnqueueBuffers(source Source, buffers []Buffer) {
	Default().SourceUnqueueBuffers(source, buffers)
}

// BufferData uploads data in format at sample rate freq to buffer.
func BufferData(buffer Buffer, format Enum, data []byte, freq int32) {
	Default().BufferData(buffer, format, data, freq)
}

// SourcePlay starts source.
func SourcePlay(source Source) { Default().SourcePlay(source) }

// SourceStop stops source.
func SourceStop(source Source) { Default().SourceStop(source) }

// GenBuffers generates len(buffers) buffer names into buffers.
func GenBuffers(buffers []Buffer) { Default().GenBuffers(buffers) }

// DeleteBuffers releases the named buffers.
func DeleteBuffers(buffers []Buffer) { Default().DeleteBuffers(buffers) }

// GenSources generates len(sources) source names into sources.
func GenSources(sources []Source) { Default().GenSources(sources) }

// DeleteSources releases the named sources.
func DeleteSources(sources []Source) { Default().DeleteSources(sources) }
