package game

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A disabled manager, and a nil one, must be callable without panicking.
func TestAudioManagerDisabled(t *testing.T) {
	am := NewAudioManager(false)
	assert.NoError(t, am.PlayDot())
	assert.NoError(t, am.PlayRestart())

	var none *AudioManager
	assert.NoError(t, none.PlayDot())
}

func TestSynthBeepWAVHeader(t *testing.T) {
	raw := synthBeepWAV(sampleRate, 100, 440)
	samples := sampleRate / 10
	require.Len(t, raw, 44+samples*2)
	assert.Equal(t, "RIFF", string(raw[0:4]))
	assert.Equal(t, "WAVE", string(raw[8:12]))
	assert.Equal(t, "data", string(raw[36:40]))
	assert.Equal(t, uint32(len(raw)-8), binary.LittleEndian.Uint32(raw[4:8]))
	assert.Equal(t, uint32(sampleRate), binary.LittleEndian.Uint32(raw[24:28]))
	assert.Equal(t, uint32(samples*2), binary.LittleEndian.Uint32(raw[40:44]))
}
