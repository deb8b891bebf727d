//go:build !openal_static

package commands

import (
	"bytes"
	"context"
	"encoding/binary"
	"reflect"
	"strings"
	"testing"
	"time"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/alshim/internal/ffi"
)

// fakeOpenAL records the calls a command makes. Sources report Stopped after
// stopAfter state queries.
type fakeOpenAL struct {
	calls     []string
	samples   int
	rate      int32
	polls     int
	stopAfter int
}

func (f *fakeOpenAL) funcs() map[string]any {
	rec := func(name string) { f.calls = append(f.calls, name) }
	fill := func(n int32, out *uint32) {
		names := unsafe.Slice(out, n)
		for i := range names {
			names[i] = uint32(i + 1)
		}
	}
	return map[string]any{
		"alcOpenDevice":         func(*byte) uintptr { rec("alcOpenDevice"); return 0x10 },
		"alcCloseDevice":        func(uintptr) { rec("alcCloseDevice") },
		"alcCreateContext":      func(uintptr, *int32) uintptr { rec("alcCreateContext"); return 0x20 },
		"alcDestroyContext":     func(uintptr) { rec("alcDestroyContext") },
		"alcMakeContextCurrent": func(uintptr) uint8 { rec("alcMakeContextCurrent"); return 1 },
		"alGetSourcei": func(source uint32, param int32, value *int32) {
			state := int32(ffi.Playing)
			if f.polls >= f.stopAfter {
				state = int32(ffi.Stopped)
			}
			f.polls++
			*value = state
		},
		"alSourceQueueBuffers":   func(uint32, int32, *uint32) { rec("alSourceQueueBuffers") },
		"alSourceUnqueueBuffers": func(uint32, int32, *uint32) { rec("alSourceUnqueueBuffers") },
		"alBufferData": func(buffer uint32, format int32, data unsafe.Pointer, size int32, freq int32) {
			rec("alBufferData")
			f.samples = int(size) / 2
			f.rate = freq
		},
		"alSourcePlay":    func(uint32) { rec("alSourcePlay") },
		"alSourceStop":    func(uint32) { rec("alSourceStop") },
		"alGenBuffers":    func(n int32, out *uint32) { rec("alGenBuffers"); fill(n, out) },
		"alDeleteBuffers": func(int32, *uint32) { rec("alDeleteBuffers") },
		"alGenSources":    func(n int32, out *uint32) { rec("alGenSources"); fill(n, out) },
		"alDeleteSources": func(int32, *uint32) { rec("alDeleteSources") },
	}
}

type fakeLib map[string]uintptr

func (l fakeLib) Symbol(name string) (uintptr, error) {
	if addr, ok := l[name]; ok {
		return addr, nil
	}
	return 0, errors.Errorf("undefined symbol %s", name)
}

func (l fakeLib) Close() error { return nil }

// newFakeLoader serves funcs as libopenal.so, minus the omitted names.
func newFakeLoader(t *testing.T, funcs map[string]any, omit ...string) *ffi.Loader {
	t.Helper()
	t.Setenv(ffi.LibraryPathEnv, "")

	lib := fakeLib{}
	byAddr := map[uintptr]any{}
	addr := uintptr(0x100)
	for name, fn := range funcs {
		skip := false
		for _, o := range omit {
			skip = skip || o == name
		}
		if skip {
			continue
		}
		addr += 8
		lib[name] = addr
		byAddr[addr] = fn
	}

	return ffi.NewLoader(
		ffi.WithCandidates("libopenal.so"),
		ffi.WithOpener(func(path string) (ffi.Library, error) {
			if funcs == nil {
				return nil, errors.Errorf("%s: not found", path)
			}
			return lib, nil
		}),
		ffi.WithBinder(func(fptr any, addr uintptr) {
			reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(byAddr[addr]))
		}),
	)
}

func TestProbe(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Probe(&out, newFakeLoader(t, (&fakeOpenAL{}).funcs())))
	assert.Equal(t, "openal: available (libopenal.so)\n", out.String())

	out.Reset()
	err := Probe(&out, newFakeLoader(t, nil))
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, out.String(), "openal: unavailable")
}

func TestSymbols(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Symbols(&out, newFakeLoader(t, (&fakeOpenAL{}).funcs())))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2+len(ffi.Symbols()))
	assert.Equal(t, "library: libopenal.so", lines[0])
	assert.Regexp(t, `^alcOpenDevice\s+ok$`, lines[2])

	out.Reset()
	err := Symbols(&out, newFakeLoader(t, (&fakeOpenAL{}).funcs(), "alSourceStop"))
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Regexp(t, `alSourceStop\s+missing`, out.String())
}

func TestTone(t *testing.T) {
	fake := &fakeOpenAL{stopAfter: 2}
	al := newFakeLoader(t, fake.funcs())
	cfg := ToneConfig{Frequency: 440, Duration: Duration{50 * time.Millisecond}, SampleRate: 8000}

	require.NoError(t, Tone(context.Background(), log.NewNopLogger(), al, cfg))
	assert.Equal(t, 400, fake.samples)
	assert.Equal(t, int32(8000), fake.rate)
	assert.Equal(t, []string{
		"alcOpenDevice",
		"alcCreateContext",
		"alcMakeContextCurrent",
		"alGenBuffers",
		"alGenSources",
		"alBufferData",
		"alSourceQueueBuffers",
		"alSourcePlay",
		"alSourceUnqueueBuffers",
		"alDeleteSources",
		"alDeleteBuffers",
		"alcMakeContextCurrent",
		"alcDestroyContext",
		"alcCloseDevice",
	}, fake.calls)
}

func TestToneCancelled(t *testing.T) {
	fake := &fakeOpenAL{stopAfter: 1 << 30}
	al := newFakeLoader(t, fake.funcs())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := ToneConfig{Frequency: 440, Duration: Duration{10 * time.Millisecond}, SampleRate: 8000}

	err := Tone(ctx, log.NewNopLogger(), al, cfg)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, fake.calls, "alSourceStop")
}

func TestToneUnavailable(t *testing.T) {
	cfg := DefaultConfig().Tone
	err := Tone(context.Background(), log.NewNopLogger(), newFakeLoader(t, nil), cfg)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSinePCM16(t *testing.T) {
	pcm := SinePCM16(1000, 8000, 10*time.Millisecond)
	require.Len(t, pcm, 2*80)
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(pcm[0:])))

	// A quarter period in, the wave is at its half-amplitude peak.
	peak := int16(binary.LittleEndian.Uint16(pcm[2*2:]))
	assert.InDelta(t, 0.5*32767, float64(peak), 1)

	assert.Nil(t, SinePCM16(440, 8000, 0))
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewLogger(&out, LogConfig{Level: "warn", Format: "logfmt"})
	require.NoError(t, err)
	require.NoError(t, level.Info(logger).Log("msg", "hidden"))
	assert.Empty(t, out.String())

	logger, err = NewLogger(&out, LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NoError(t, logger.Log("msg", "shown"))
	assert.Contains(t, out.String(), `"msg":"shown"`)

	_, err = NewLogger(&out, LogConfig{Format: "xml"})
	require.Error(t, err)
	_, err = NewLogger(&out, LogConfig{Level: "loud"})
	require.Error(t, err)
}
