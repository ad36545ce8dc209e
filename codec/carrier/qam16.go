/*
NAME
  qam16.go

DESCRIPTION
  qam16.go implements the 16-QAM constellation mapping and its exact
  transmitter-side inverse. The source Python only ever implemented the
  demapper; per the source spec's open question on this point, the
  modulator here is the literal inverse of the demapper's table.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package carrier

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ausocean/commsim/bitstream"
	"github.com/ausocean/commsim/physparams"
)

// qamPoint is one constellation point.
type qamPoint struct{ i, q float64 }

// qamLevels are the four integer amplitude levels used on each axis.
var qamLevels = []float64{-3, -1, 1, 3}

// qam16Map is the forward bit-group -> (I,Q) table from the source spec.
var qam16Map = map[string]qamPoint{
	"0000": {-3, -3}, "0001": {-3, -1}, "0010": {-3, 3}, "0011": {-3, 1},
	"0100": {-1, -3}, "0101": {-1, -1}, "0110": {-1, 3}, "0111": {-1, 1},
	"1000": {3, -3}, "1001": {3, -1}, "1010": {3, 3}, "1011": {3, 1},
	"1100": {1, -3}, "1101": {1, -1}, "1110": {1, 3}, "1111": {1, 1},
}

// qam16Reverse is the decoder's (I,Q) -> bit-group lookup, built once from
// qam16Map.
var qam16Reverse = func() map[qamPoint]string {
	m := make(map[qamPoint]string, len(qam16Map))
	for bits, p := range qam16Map {
		m[p] = bits
	}
	return m
}()

func bitsToKey(b0, b1, b2, b3 byte) string {
	buf := [4]byte{'0' + b0, '0' + b1, '0' + b2, '0' + b3}
	return string(buf[:])
}

func encodeQAM16(bits bitstream.Bits) []float64 {
	t := timeBase(4)
	cosW := cosAt(physparams.CarrierFreq, t)
	sinW := sinAt(physparams.CarrierFreq, t)
	out := make([]float64, 0, len(bits)/4*len(t))
	for i := 0; i+4 <= len(bits); i += 4 {
		key := bitsToKey(bits[i], bits[i+1], bits[i+2], bits[i+3])
		p := qam16Map[key]
		symbol := make([]float64, len(t))
		for j := range t {
			symbol[j] = (p.i*cosW[j] - p.q*sinW[j]) / physparams.QAMNorm
		}
		out = append(out, symbol...)
	}
	return out
}

func decodeQAM16(samples []float64) bitstream.Bits {
	t := timeBase(4)
	templateI := cosAt(physparams.CarrierFreq, t)
	templateQ := negate(sinAt(physparams.CarrierFreq, t))
	energyRef := floats.Dot(templateI, templateI)
	n := len(t)
	out := make(bitstream.Bits, 0, len(samples)/n*4)
	for i := 0; i+n <= len(samples); i += n {
		chunk := samples[i : i+n]
		rawI := floats.Dot(chunk, templateI)
		rawQ := floats.Dot(chunk, templateQ)
		scaledI := (rawI / energyRef) * physparams.QAMNorm
		scaledQ := (rawQ / energyRef) * physparams.QAMNorm
		point := qamPoint{nearestLevel(scaledI), nearestLevel(scaledQ)}
		key, ok := qam16Reverse[point]
		if !ok {
			key = "0000"
		}
		out = append(out, key[0]-'0', key[1]-'0', key[2]-'0', key[3]-'0')
	}
	return out
}

// nearestLevel snaps v to the closest of qamLevels.
func nearestLevel(v float64) float64 {
	best := qamLevels[0]
	bestDiff := math.Abs(v - best)
	for _, l := range qamLevels[1:] {
		if d := math.Abs(v - l); d < bestDiff {
			best, bestDiff = l, d
		}
	}
	return best
}
