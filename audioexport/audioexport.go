/*
NAME
  audioexport.go

DESCRIPTION
  audioexport.go renders a modulated sample sequence as a 16-bit PCM WAV
  file, standing in for the GUI waveform plot of the source
  implementation (out of scope here; see SPEC_FULL.md).

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package audioexport renders a []float64 sample sequence, as produced by
// codec/line or codec/carrier, to a mono 16-bit PCM WAV file. It exists so
// a simulated transmission can be listened to or inspected in an external
// tool, in place of the source program's live waveform plot.
package audioexport

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
)

const (
	bitDepth = 16
	channels = 1
	maxInt16 = 32767
)

var (
	errInvalidRate   = fmt.Errorf("audioexport: invalid or no sample rate defined")
	errNoSamples     = fmt.Errorf("audioexport: no samples to write")
	errClipped       = fmt.Errorf("audioexport: sample outside [-1, 1], clipped")
)

// ToIntBuffer quantizes samples, assumed to lie in [-1, 1], to a mono
// 16-bit PCM audio.IntBuffer at the given sample rate. Samples outside the
// range are clipped to the nearest extreme rather than wrapped.
func ToIntBuffer(samples []float64, sampleRate int) (*audio.IntBuffer, error) {
	if sampleRate <= 0 {
		return nil, errInvalidRate
	}
	data := make([]int, len(samples))
	clipped := false
	for i, s := range samples {
		if s > 1 {
			s = 1
			clipped = true
		} else if s < -1 {
			s = -1
			clipped = true
		}
		data[i] = int(math.Round(s * maxInt16))
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   data,
		SourceBitDepth: bitDepth,
	}
	if clipped {
		return buf, errClipped
	}
	return buf, nil
}

// Write encodes buf as a canonical 44-byte-header PCM WAV file to w.
func Write(w io.Writer, buf *audio.IntBuffer) error {
	if buf == nil || len(buf.Data) == 0 {
		return errNoSamples
	}
	dataLen := len(buf.Data) * (bitDepth / 8)

	header := make([]byte, 44)
	copy(header[0:4], []byte("RIFF"))
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataLen))
	copy(header[8:12], []byte("WAVE"))
	copy(header[12:16], []byte("fmt "))
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM.
	binary.LittleEndian.PutUint16(header[22:24], uint16(buf.Format.NumChannels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.Format.SampleRate))
	byteRate := buf.Format.SampleRate * buf.Format.NumChannels * bitDepth / 8
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	blockAlign := buf.Format.NumChannels * bitDepth / 8
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitDepth)
	copy(header[36:40], []byte("data"))
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataLen))

	if _, err := w.Write(header); err != nil {
		return err
	}

	payload := make([]byte, dataLen)
	for i, v := range buf.Data {
		binary.LittleEndian.PutUint16(payload[i*2:i*2+2], uint16(int16(v)))
	}
	_, err := w.Write(payload)
	return err
}

// WriteSamples is a convenience wrapper combining ToIntBuffer and Write. A
// non-nil clip error from ToIntBuffer does not prevent the write; it is
// returned alongside a successful write so the caller can log it.
func WriteSamples(w io.Writer, samples []float64, sampleRate int) error {
	buf, convErr := ToIntBuffer(samples, sampleRate)
	if buf == nil {
		return convErr
	}
	if err := Write(w, buf); err != nil {
		return err
	}
	return convErr
}
