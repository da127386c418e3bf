package assets

import (
	"encoding/binary"
	"math"
	"os"
)

const sfxSampleRate = 22050

// WriteTone writes a mono 16-bit PCM WAV containing a sine tone. The
// ambience (hum, rumble, locked-door thunk) is all plain tones.
func WriteTone(path string, freq, duration, volume float64) error {
	frames := int(sfxSampleRate * duration)
	data := make([]byte, 0, 44+frames*2)

	var scratch [4]byte
	u32 := func(v uint32) []byte {
		binary.LittleEndian.PutUint32(scratch[:], v)
		return scratch[:4]
	}
	u16 := func(v uint16) []byte {
		binary.LittleEndian.PutUint16(scratch[:2], v)
		return scratch[:2]
	}

	data = append(data, "RIFF"...)
	data = append(data, u32(uint32(36+frames*2))...)
	data = append(data, "WAVEfmt "...)
	data = append(data, u32(16)...)
	data = append(data, u16(1)...) // PCM
	data = append(data, u16(1)...) // mono
	data = append(data, u32(sfxSampleRate)...)
	data = append(data, u32(sfxSampleRate*2)...)
	data = append(data, u16(2)...)  // block align
	data = append(data, u16(16)...) // bits per sample
	data = append(data, "data"...)
	data = append(data, u32(uint32(frames*2))...)

	for i := 0; i < frames; i++ {
		sample := volume * math.Sin(2*math.Pi*freq*(float64(i)/sfxSampleRate))
		data = append(data, u16(uint16(int16(sample*32767)))...)
	}
	return os.WriteFile(path, data, 0o644)
}
