package game

import (
	"bytes"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// audioContext returns the process-wide audio context. Ebitengine allows
// only one per process.
func audioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// AudioManager plays short cues. A nil manager, or one built with audio
// disabled, is silent.
type AudioManager struct {
	ctx     *audio.Context
	dot     []byte
	restart []byte
}

func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		dot:     synthBeepWAV(sampleRate, 60, 880),
		restart: synthBeepWAV(sampleRate, 400, 220),
	}
	if enabled {
		am.ctx = audioContext()
	}
	return am
}

func (am *AudioManager) play(raw []byte) error {
	if am == nil || am.ctx == nil || len(raw) == 0 {
		return nil
	}
	// Decode from bytes each time to allow overlapping plays.
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return err
	}
	p.Play()
	return nil
}

func (am *AudioManager) PlayDot() error     { return am.play(am.dot) }
func (am *AudioManager) PlayRestart() error { return am.play(am.restart) }

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	numSamples := sampleRate * durationMs / 1000
	dataSize := numSamples * 2
	buf := make([]byte, 44+dataSize)
	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(len(buf)-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(sampleRate*2))
	putLE16(buf[32:34], 2)  // block align
	putLE16(buf[34:36], 16) // bits per sample
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))

	const amp = 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767.0 * amp)
		putLE16(buf[44+i*2:], uint16(v))
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
