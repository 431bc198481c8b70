package tts

import (
	"encoding/binary"
	"errors"
)

var ErrBadWAV = errors.New("malformed wav data")

// EncodeWAV wraps the PCM samples in a canonical 44-byte RIFF header.
func EncodeWAV(a *Audio) []byte {
	ch := a.Channels
	if ch <= 0 {
		ch = 1
	}
	const bits = 16
	blockAlign := ch * bits / 8
	out := make([]byte, 44+len(a.PCM))

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(a.PCM)))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], uint16(ch))
	binary.LittleEndian.PutUint32(out[24:28], uint32(a.SampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(a.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], bits)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(a.PCM)))
	copy(out[44:], a.PCM)
	return out
}

// DecodeWAV reads a PCM WAV file, walking chunks until "fmt " and "data"
// have both been seen.
func DecodeWAV(data []byte) (*Audio, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, ErrBadWAV
	}
	var (
		a       Audio
		gotFmt  bool
		gotData bool
	)
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		switch id {
		case "fmt ":
			if size < 16 || body+16 > len(data) {
				return nil, ErrBadWAV
			}
			a.Channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			a.SampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			gotFmt = true
		case "data":
			end := body + size
			if end > len(data) {
				end = len(data)
			}
			a.PCM = data[body:end]
			gotData = true
		}
		pos = body + size
		if pos%2 != 0 {
			pos++
		}
	}
	if !gotFmt || !gotData || a.SampleRate == 0 {
		return nil, ErrBadWAV
	}
	return &a, nil
}
