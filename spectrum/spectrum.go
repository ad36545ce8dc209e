/*
NAME
  spectrum.go

DESCRIPTION
  spectrum.go provides a frequency-domain diagnostic over a real sample
  sequence, used to verify that a carrier-modulated waveform actually
  places its energy where the carrier codec says it should.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package spectrum offers a frequency-domain view of a sample sequence,
// built on the same FFT dependency codec/pcm's filters use for fast
// convolution, repurposed here for spectral inspection rather than
// filtering. It exists for tests and diagnostics, not the encode/decode
// data path: the carrier codec's correlator decisions are entirely
// time-domain.
package spectrum

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DominantFreq returns the frequency, in Hz, of the largest-magnitude
// non-DC bin in samples' discrete Fourier transform, given sampleRate.
// It reports nothing about phase or amplitude, only which frequency
// carries the most energy, which is enough to check that (for example) an
// ASK-modulated mark slot carries energy at the carrier frequency rather
// than at DC or some other bin.
func DominantFreq(samples []float64, sampleRate float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	spectrum := fft.FFTReal(samples)
	n := len(spectrum)
	bestBin := 1
	bestMag := 0.0
	// Only the first half is meaningful for a real input; bin 0 is DC and
	// is skipped since every line/carrier code here is already
	// zero-mean-ish or the DC component is not the property under test.
	for i := 1; i < n/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		if mag > bestMag {
			bestMag = mag
			bestBin = i
		}
	}
	return float64(bestBin) * sampleRate / float64(n)
}
