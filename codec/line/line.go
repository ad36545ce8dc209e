/*
NAME
  line.go

DESCRIPTION
  line.go implements the three baseband line codes: NRZ-Polar, Manchester
  and Bipolar (AMI), each mapping one codeword bit onto
  physparams.SamplesPerBit real-valued samples, and their correlator-based
  decision rules.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package line implements baseband line coding: NRZ-Polar, Manchester and
// Bipolar (AMI).
package line

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ausocean/commsim/bitstream"
	"github.com/ausocean/commsim/physparams"
)

// Code identifies a baseband line code.
type Code int

const (
	NRZPolar Code = iota
	Manchester
	Bipolar
)

func (c Code) String() string {
	switch c {
	case NRZPolar:
		return "nrz-polar"
	case Manchester:
		return "manchester"
	case Bipolar:
		return "bipolar"
	default:
		return "unknown"
	}
}

// V is the line-code mark amplitude. The transmitter may choose any V; 1
// is used throughout, matching the source spec.
const V = 1.0

// bipolarEnergyThreshold is the per-slot energy threshold used by the
// Bipolar decision: a quarter of the energy of a full mark slot (V^2 per
// sample over SamplesPerBit samples).
var bipolarEnergyThreshold = float64(physparams.SamplesPerBit) * V * V / 4

// Encode maps bits to a sample sequence using code.
func Encode(bits bitstream.Bits, code Code) []float64 {
	switch code {
	case NRZPolar:
		return encodeNRZPolar(bits)
	case Manchester:
		return encodeManchester(bits)
	case Bipolar:
		return encodeBipolar(bits)
	default:
		panic("line: unknown code")
	}
}

// Decode recovers hard-decision bits from a sample sequence produced by
// code. Samples must be a multiple of physparams.SamplesPerBit; any
// trailing partial slot is dropped.
func Decode(samples []float64, code Code) bitstream.Bits {
	switch code {
	case NRZPolar:
		return decodeNRZPolar(samples)
	case Manchester:
		return decodeManchester(samples)
	case Bipolar:
		return decodeBipolar(samples)
	default:
		panic("line: unknown code")
	}
}

func encodeNRZPolar(bits bitstream.Bits) []float64 {
	out := make([]float64, 0, len(bits)*physparams.SamplesPerBit)
	for _, b := range bits {
		level := -V
		if b == 1 {
			level = V
		}
		out = appendConst(out, level, physparams.SamplesPerBit)
	}
	return out
}

func decodeNRZPolar(samples []float64) bitstream.Bits {
	n := physparams.SamplesPerBit
	out := make(bitstream.Bits, 0, len(samples)/n)
	for i := 0; i+n <= len(samples); i += n {
		if floats.Sum(samples[i:i+n]) > 0 {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

func encodeManchester(bits bitstream.Bits) []float64 {
	half := physparams.SamplesPerBit / 2
	out := make([]float64, 0, len(bits)*physparams.SamplesPerBit)
	for _, b := range bits {
		first, second := V, -V
		if b == 1 {
			first, second = -V, V
		}
		out = appendConst(out, first, half)
		out = appendConst(out, second, physparams.SamplesPerBit-half)
	}
	return out
}

func decodeManchester(samples []float64) bitstream.Bits {
	n := physparams.SamplesPerBit
	half := n / 2
	out := make(bitstream.Bits, 0, len(samples)/n)
	for i := 0; i+n <= len(samples); i += n {
		chunk := samples[i : i+n]
		decision := floats.Sum(chunk[half:]) - floats.Sum(chunk[:half])
		if decision > 0 {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

func encodeBipolar(bits bitstream.Bits) []float64 {
	out := make([]float64, 0, len(bits)*physparams.SamplesPerBit)
	mark := V
	for _, b := range bits {
		if b == 0 {
			out = appendConst(out, 0, physparams.SamplesPerBit)
			continue
		}
		out = appendConst(out, mark, physparams.SamplesPerBit)
		mark = -mark
	}
	return out
}

func decodeBipolar(samples []float64) bitstream.Bits {
	n := physparams.SamplesPerBit
	out := make(bitstream.Bits, 0, len(samples)/n)
	for i := 0; i+n <= len(samples); i += n {
		chunk := samples[i : i+n]
		energy := floats.Dot(chunk, chunk)
		if energy > bipolarEnergyThreshold {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// appendConst appends n copies of v to dst and returns the result.
func appendConst(dst []float64, v float64, n int) []float64 {
	for i := 0; i < n; i++ {
		dst = append(dst, v)
	}
	return dst
}
