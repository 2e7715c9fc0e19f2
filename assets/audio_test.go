package assets

import (
	"encoding/binary"
	"testing"
	"time"

	cfg "github.com/automoto/snakeframe/config"
)

func TestRenderTone(t *testing.T) {
	tone := cfg.Tone{Freq: 440, Duration: 100 * time.Millisecond, Volume: 0.5}
	pcm := RenderTone(tone, 8000)

	if len(pcm) != 800*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 800*4)
	}

	peak := 0
	for i := 0; i < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("sample %d: channels differ (%d, %d)", i/4, l, r)
		}
		peak = max(peak, abs(int(l)))
	}
	// Volume 0.5 keeps the peak at or below half scale
	if peak == 0 || peak > 32767/2+1 {
		t.Errorf("peak = %d", peak)
	}
}

func TestRenderToneDecays(t *testing.T) {
	pcm := RenderTone(cfg.Tone{Freq: 1000, Duration: 50 * time.Millisecond, Volume: 1}, 8000)
	n := len(pcm) / 4
	head, tail := 0, 0
	for i := 0; i < n/4; i++ {
		head = max(head, abs(int(int16(binary.LittleEndian.Uint16(pcm[i*4:])))))
		j := n - 1 - i
		tail = max(tail, abs(int(int16(binary.LittleEndian.Uint16(pcm[j*4:])))))
	}
	if tail >= head {
		t.Errorf("tail peak %d not below head peak %d", tail, head)
	}
}

func TestRenderToneEmpty(t *testing.T) {
	if pcm := RenderTone(cfg.Tone{Freq: 440}, 44100); pcm != nil {
		t.Errorf("zero duration rendered %d bytes", len(pcm))
	}
	if pcm := RenderTone(cfg.Tone{Freq: 440, Duration: time.Second}, 0); pcm != nil {
		t.Errorf("zero sample rate rendered %d bytes", len(pcm))
	}
}

func TestEveryConfiguredSoundRenders(t *testing.T) {
	for id, tone := range cfg.Sound.Tones {
		if len(RenderTone(tone, cfg.Audio.SampleRate)) == 0 {
			t.Errorf("sound %d rendered nothing", id)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
