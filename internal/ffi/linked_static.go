//go:build openal_static

package ffi

/*
#cgo linux freebsd LDFLAGS: -lopenal
#cgo windows LDFLAGS: -lOpenAL32
#cgo darwin LDFLAGS: -framework OpenAL

#ifdef __APPLE__
#include <OpenAL/al.h>
#include <OpenAL/alc.h>
#else
#include <AL/al.h>
#include <AL/alc.h>
#endif
*/
import "C"

import "unsafe"

// linkedTable binds every slot to the OpenAL linked into the binary.
func linkedTable() *table {
	return &table{
		alcOpenDevice: func(devicename *byte) uintptr {
			return uintptr(unsafe.Pointer(C.alcOpenDevice((*C.ALCchar)(unsafe.Pointer(devicename)))))
		},
		alcCloseDevice: func(device uintptr) {
			C.alcCloseDevice((*C.ALCdevice)(unsafe.Pointer(device)))
		},
		alcCreateContext: func(device uintptr, attrlist *int32) uintptr {
			ctx := C.alcCreateContext((*C.ALCdevice)(unsafe.Pointer(device)), (*C.ALCint)(unsafe.Pointer(attrlist)))
			return uintptr(unsafe.Pointer(ctx))
		},
		alcDestroyContext: func(context uintptr) {
			C.alcDestroyContext((*C.ALCcontext)(unsafe.Pointer(context)))
		},
		alcMakeContextCurrent: func(context uintptr) uint8 {
			return uint8(C.alcMakeContextCurrent((*C.ALCcontext)(unsafe.Pointer(context))))
		},
		alGetSourcei: func(source uint32, param int32, value *int32) {
			C.alGetSourcei(C.ALuint(source), C.ALenum(param), (*C.ALint)(unsafe.Pointer(value)))
		},
		alSourceQueueBuffers: func(source uint32, nb int32, buffers *uint32) {
			C.alSourceQueueBuffers(C.ALuint(source), C.ALsizei(nb), (*C.ALuint)(unsafe.Pointer(buffers)))
		},
		alSourceUnqueueBuffers: func(source uint32, nb int32, buffers *uint32) {
			C.alSourceUnqueueBuffers(C.ALuint(source), C.ALsizei(nb), (*C.ALuint)(unsafe.Pointer(buffers)))
		},
		alBufferData: func(buffer uint32, format int32, data unsafe.Pointer, size int32, freq int32) {
			C.alBufferData(C.ALuint(buffer), C.ALenum(format), data, C.ALsizei(size), C.ALsizei(freq))
		},
		alSourcePlay: func(source uint32) {
			C.alSourcePlay(C.ALuint(source))
		},
		alSourceStop: func(source uint32) {
			C.alSourceStop(C.ALuint(source))
		},
		alGenBuffers: func(n int32, buffers *uint32) {
			C.alGenBuffers(C.ALsizei(n), (*C.ALuint)(unsafe.Pointer(buffers)))
		},
		alDeleteBuffers: func(n int32, buffers *uint32) {
			C.alDeleteBuffers(C.ALsizei(n), (*C.ALuint)(unsafe.Pointer(buffers)))
		},
		alGenSources: func(n int32, sources *uint32) {
			C.alGenSources(C.ALsizei(n), (*C.ALuint)(unsafe.Pointer(sources)))
		},
		alDeleteSources: func(n int32, sources *uint32) {
			C.alDeleteSources(C.ALsizei(n), (*C.ALuint)(unsafe.Pointer(sources)))
		},
	}
}
