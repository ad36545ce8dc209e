/*
NAME
  physparams.go

DESCRIPTION
  physparams.go fixes the physical-layer constants shared by the line and
  carrier codecs, so that two independently built encoders/decoders
  interoperate bit-for-bit, per the source spec's data model (§3).

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package physparams fixes the process-wide physical-layer constants:
// bit rate, carrier frequency, sample rate and the derived samples-per-bit
// count that both the line codec and the carrier codec depend on.
package physparams

import "math"

const (
	// BitRate is the link bit rate in bits per second.
	BitRate = 1000

	// CarrierFreq is the passband carrier frequency in Hz.
	CarrierFreq = 5000

	// SampleRate is the physical-layer sample rate in Hz, well above the
	// Nyquist rate of the highest spectral component used (carrier plus
	// frequency deviation).
	SampleRate = 50000

	// SamplesPerBit is SampleRate / BitRate, fixed as an integer so that a
	// bit slot always occupies a whole number of samples.
	SamplesPerBit = SampleRate / BitRate

	// FreqDeviation is the FSK frequency deviation in Hz.
	FreqDeviation = 2000
)

// QAMNorm is the 16-QAM transmit normalization factor, chosen so the
// average 16-QAM symbol energy equals that of a unit-amplitude QPSK
// symbol (levels {-3,-1,1,3} have mean-square 5 per axis, 10 total; QPSK
// has total energy 1, so the scale factor is sqrt(10)).
var QAMNorm = math.Sqrt(10)
