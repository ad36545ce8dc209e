/*
NAME
  carrier.go

DESCRIPTION
  carrier.go implements the four passband carrier codes: ASK, FSK, QPSK and
  16-QAM, each built from a correlator/matched-filter decision against
  reference waveforms at the fixed carrier frequency and sample rate.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package carrier implements passband modulation: ASK, FSK, QPSK and
// 16-QAM, on top of the fixed carrier frequency and sample rate in
// physparams.
package carrier

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ausocean/commsim/bitstream"
	"github.com/ausocean/commsim/physparams"
)

// Code identifies a carrier (passband) modulation.
type Code int

const (
	None Code = iota
	ASK
	FSK
	QPSK
	QAM16
)

func (c Code) String() string {
	switch c {
	case None:
		return "none"
	case ASK:
		return "ask"
	case FSK:
		return "fsk"
	case QPSK:
		return "qpsk"
	case QAM16:
		return "qam16"
	default:
		return "unknown"
	}
}

// BitsPerSymbol reports how many codeword bits one symbol of c carries.
// None and ASK and FSK are 1 bit per symbol (one bit slot); QPSK is 2;
// QAM16 is 4.
func (c Code) BitsPerSymbol() int {
	switch c {
	case QPSK:
		return 2
	case QAM16:
		return 4
	default:
		return 1
	}
}

// timeBase returns the n sample instants of a symbol spanning nSlots bit
// slots, sampled at physparams.SampleRate.
func timeBase(nSlots int) []float64 {
	n := nSlots * physparams.SamplesPerBit
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / physparams.SampleRate
	}
	return t
}

func sinAt(freq float64, t []float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Sin(2 * math.Pi * freq * ti)
	}
	return out
}

func cosAt(freq float64, t []float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Cos(2 * math.Pi * freq * ti)
	}
	return out
}

// Encode maps codeword bits onto a sample sequence using code. len(bits)
// should be a multiple of code.BitsPerSymbol(): Encode drops a trailing
// partial symbol, as Decode does, so callers pad bits first (sim.Encode
// zero-pads with padToSymbol).
func Encode(bits bitstream.Bits, code Code) []float64 {
	switch code {
	case None:
		panic("carrier: Encode called with code None; use the line codec instead")
	case ASK:
		return encodeASK(bits)
	case FSK:
		return encodeFSK(bits)
	case QPSK:
		return encodeQPSK(bits)
	case QAM16:
		return encodeQAM16(bits)
	default:
		panic("carrier: unknown code")
	}
}

// Decode recovers hard-decision codeword bits from samples produced by
// code.
func Decode(samples []float64, code Code) bitstream.Bits {
	switch code {
	case None:
		panic("carrier: Decode called with code None; use the line codec instead")
	case ASK:
		return decodeASK(samples)
	case FSK:
		return decodeFSK(samples)
	case QPSK:
		return decodeQPSK(samples)
	case QAM16:
		return decodeQAM16(samples)
	default:
		panic("carrier: unknown code")
	}
}

// --- ASK ---

func encodeASK(bits bitstream.Bits) []float64 {
	t := timeBase(1)
	mark := sinAt(physparams.CarrierFreq, t)
	zero := make([]float64, len(t))
	out := make([]float64, 0, len(bits)*len(t))
	for _, b := range bits {
		if b == 1 {
			out = append(out, mark...)
		} else {
			out = append(out, zero...)
		}
	}
	return out
}

func decodeASK(samples []float64) bitstream.Bits {
	t := timeBase(1)
	mark := sinAt(physparams.CarrierFreq, t)
	threshold := floats.Dot(mark, mark) / 2
	n := len(t)
	out := make(bitstream.Bits, 0, len(samples)/n)
	for i := 0; i+n <= len(samples); i += n {
		chunk := samples[i : i+n]
		if floats.Dot(chunk, chunk) > threshold {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// --- FSK ---

func encodeFSK(bits bitstream.Bits) []float64 {
	t := timeBase(1)
	template0 := sinAt(physparams.CarrierFreq+physparams.FreqDeviation, t) // Bit 0.
	template1 := sinAt(physparams.CarrierFreq-physparams.FreqDeviation, t) // Bit 1.
	out := make([]float64, 0, len(bits)*len(t))
	for _, b := range bits {
		if b == 1 {
			out = append(out, template1...)
		} else {
			out = append(out, template0...)
		}
	}
	return out
}

func decodeFSK(samples []float64) bitstream.Bits {
	t := timeBase(1)
	template0 := sinAt(physparams.CarrierFreq+physparams.FreqDeviation, t)
	template1 := sinAt(physparams.CarrierFreq-physparams.FreqDeviation, t)
	n := len(t)
	out := make(bitstream.Bits, 0, len(samples)/n)
	for i := 0; i+n <= len(samples); i += n {
		chunk := samples[i : i+n]
		corr0 := floats.Dot(chunk, template0)
		corr1 := floats.Dot(chunk, template1)
		if corr1 > corr0 {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// --- QPSK ---

// encodeQPSK inverts decodeQPSK's (dominant-axis, sign) quadrant
// selection: |I|>|Q| picks the I-axis pair,
// otherwise the Q-axis pair; the sign of the dominant component then picks
// between the pair's two values.
func encodeQPSK(bits bitstream.Bits) []float64 {
	t := timeBase(2)
	cosW := cosAt(physparams.CarrierFreq, t)
	sinW := sinAt(physparams.CarrierFreq, t)
	out := make([]float64, 0, len(bits)/2*len(t))
	for i := 0; i+2 <= len(bits); i += 2 {
		b0, b1 := bits[i], bits[i+1]
		var symbol []float64
		switch {
		case b0 == 0 && b1 == 1:
			symbol = cosW
		case b0 == 1 && b1 == 0:
			symbol = negate(cosW)
		case b0 == 0 && b1 == 0:
			symbol = sinW
		default: // 1,1
			symbol = negate(sinW)
		}
		out = append(out, symbol...)
	}
	return out
}

func decodeQPSK(samples []float64) bitstream.Bits {
	t := timeBase(2)
	templateI := cosAt(physparams.CarrierFreq, t)
	templateQ := sinAt(physparams.CarrierFreq, t)
	n := len(t)
	out := make(bitstream.Bits, 0, len(samples)/n*2)
	for i := 0; i+n <= len(samples); i += n {
		chunk := samples[i : i+n]
		valI := floats.Dot(chunk, templateI)
		valQ := floats.Dot(chunk, templateQ)
		var b0, b1 byte
		if math.Abs(valI) > math.Abs(valQ) {
			if valI > 0 {
				b0, b1 = 0, 1
			} else {
				b0, b1 = 1, 0
			}
		} else {
			if valQ > 0 {
				b0, b1 = 0, 0
			} else {
				b0, b1 = 1, 1
			}
		}
		out = append(out, b0, b1)
	}
	return out
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
