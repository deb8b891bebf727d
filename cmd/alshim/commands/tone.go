package commands

import (
	"context"
	"encoding/binary"
	"math"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/agiangrant/alshim/internal/ffi"
)

const tonePollInterval = 10 * time.Millisecond

// Tone implements the 'alshim tone' command. It plays a sine wave through
// the default device and returns once the source stops.
func Tone(ctx context.Context, logger log.Logger, al *ffi.Loader, cfg ToneConfig) error {
	if !al.Found() {
		return errors.Wrap(ErrUnavailable, errString(al.LastError()))
	}

	dev := al.OpenDevice("")
	if dev == 0 {
		return errors.New("cannot open the default audio device")
	}
	defer al.CloseDevice(dev)

	alctx := al.CreateContext(dev, []int32{int32(ffi.AttrFrequency), int32(cfg.SampleRate)})
	if alctx == 0 {
		return errors.New("cannot create a new context")
	}
	defer al.DestroyContext(alctx)
	if !al.MakeContextCurrent(alctx) {
		return errors.New("cannot make context current")
	}
	defer al.MakeContextCurrent(0)

	buffers := make([]ffi.Buffer, 1)
	al.GenBuffers(buffers)
	defer al.DeleteBuffers(buffers)
	sources := make([]ffi.Source, 1)
	al.GenSources(sources)
	defer al.DeleteSources(sources)
	src := sources[0]

	pcm := SinePCM16(cfg.Frequency, cfg.SampleRate, cfg.Duration.Duration)
	al.BufferData(buffers[0], ffi.FormatMono16, pcm, int32(cfg.SampleRate))
	al.SourceQueueBuffers(src, buffers)
	al.SourcePlay(src)
	level.Info(logger).Log("msg", "playing tone", "frequency", cfg.Frequency, "duration", cfg.Duration)

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration.Duration+2*time.Second)
	defer cancel()

	ticker := time.NewTicker(tonePollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			al.SourceStop(src)
			al.SourceUnqueueBuffers(src, buffers)
			return ctx.Err()
		case <-ticker.C:
		}
		if state := ffi.Enum(al.GetSourcei(src, ffi.SourceState)); state != ffi.Playing {
			level.Debug(logger).Log("msg", "source stopped", "state", int32(state))
			break
		}
	}
	al.SourceUnqueueBuffers(src, buffers)
	return nil
}

// SinePCM16 renders a mono signed 16-bit little-endian sine wave at half
// amplitude.
func SinePCM16(frequency float64, sampleRate int, d time.Duration) []byte {
	n := int(d.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	pcm := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		v := 0.5 * math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate))
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(v*math.MaxInt16)))
	}
	return pcm
}

func errString(err error) string {
	if err == nil {
		return "unknown reason"
	}
	return err.Error()
}
